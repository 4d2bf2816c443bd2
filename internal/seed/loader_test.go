package seed

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/featherwood/featherwood-backend/internal/app/repository"
	"github.com/featherwood/featherwood-backend/internal/app/repository/memory"
	"github.com/featherwood/featherwood-backend/internal/db"
	"github.com/featherwood/featherwood-backend/internal/storage"
	"github.com/featherwood/featherwood-backend/pkg/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const productsJSON = `[
  {
    "id": "f101",
    "title": "Walnut Dining Table",
    "slug": "walnut-dining-table",
    "description": "Six seater table in solid walnut",
    "price": 84900,
    "salePrice": 79900,
    "category": "Dining Room",
    "material": "Walnut",
    "rating": 4.6,
    "inStock": false,
    "isFeatured": true,
    "tags": ["table", "walnut"],
    "imageUrls": ["https://img.example.com/walnut-1.jpg", "https://img.example.com/walnut-2.jpg"]
  },
  {
    "id": 102,
    "name": "Rattan Lounge Chair",
    "price": 23900,
    "category": "Living Room",
    "rating": 48
  },
  {
    "title": "",
    "price": 100,
    "category": "Office"
  }
]`

const projectsJSON = `[
  {
    "id": "p201",
    "title": "Coastal Villa Living Room",
    "slug": "coastal-villa-living-room",
    "style": "Coastal",
    "budget": "18L",
    "location": "Goa",
    "description": "Airy living room with whitewashed oak",
    "category": "Residential",
    "videoUrl": "https://videos.example.com/villa.mp4",
    "isFeatured": true
  }
]`

type storeFactory struct {
	name string
	new  func(t *testing.T) repository.Storage
}

func storeFactories() []storeFactory {
	return []storeFactory{
		{name: "memory", new: func(t *testing.T) repository.Storage { return memory.NewStore() }},
		{name: "gorm", new: func(t *testing.T) repository.Storage {
			testDB, err := db.SetupTestDB()
			require.NoError(t, err)
			t.Cleanup(func() { db.CleanupTestDB(testDB) })
			return repository.NewStorage(testDB)
		}},
	}
}

func testOptions() Options {
	return Options{
		DemoUser: DemoUser{
			Username: "demo",
			Email:    "demo@featherwood.in",
			Password: "featherwood-demo",
			FullName: "Demo Customer",
		},
		PasswordCost: bcrypt.MinCost,
	}
}

func writeDocument(t *testing.T, name, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_FallsBackWithoutDocuments(t *testing.T) {
	for _, f := range storeFactories() {
		t.Run(f.name, func(t *testing.T) {
			store := f.new(t)
			opts := testOptions()
			opts.ProductsLocation = filepath.Join(t.TempDir(), "missing.json")

			result, err := NewLoader(store, storage.NewDocumentStore(nil), opts).Load(context.Background())
			require.NoError(t, err)

			assert.True(t, result.ProductFallback)
			assert.True(t, result.ProjectFallback)
			assert.Equal(t, 5, result.Categories)
			assert.Equal(t, 1, result.Products)
			// the fixed kitchen project shares the default project's slug
			assert.Equal(t, 3, result.Projects)
			assert.Equal(t, 1, result.Skipped)

			product, err := store.FindProductBySlug("emerald-velvet-sofa")
			require.NoError(t, err)
			assert.Equal(t, "f000", product.ID)
			assert.EqualValues(t, 129900, product.Price)
			assert.EqualValues(t, 45, product.Rating)

			project, err := store.FindProjectBySlug("contemporary-urban-kitchen")
			require.NoError(t, err)
			assert.Equal(t, "p000", project.ID)
			assert.Equal(t, "Modular Kitchen", project.Category)
		})
	}
}

func TestLoader_RecentPostsNewestFirst(t *testing.T) {
	store := memory.NewStore()
	_, err := NewLoader(store, nil, testOptions()).Load(context.Background())
	require.NoError(t, err)

	posts, err := store.ListRecentBlogPosts(2)
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.Equal(t, "2023-05-12", posts[0].PublishDate.Format("2006-01-02"))
	assert.Equal(t, "2023-04-28", posts[1].PublishDate.Format("2006-01-02"))
}

func TestLoader_NormalizesTestimonialRatings(t *testing.T) {
	store := memory.NewStore()
	_, err := NewLoader(store, nil, testOptions()).Load(context.Background())
	require.NoError(t, err)

	testimonials, err := store.ListTestimonials()
	require.NoError(t, err)
	require.Len(t, testimonials, 3)
	assert.EqualValues(t, 50, testimonials[0].Rating)
	assert.EqualValues(t, 45, testimonials[1].Rating)
	assert.EqualValues(t, 40, testimonials[2].Rating)
}

func TestLoader_CreatesDemoUser(t *testing.T) {
	store := memory.NewStore()
	_, err := NewLoader(store, nil, testOptions()).Load(context.Background())
	require.NoError(t, err)

	user, err := store.FindUserByID(1)
	require.NoError(t, err)
	assert.Equal(t, "demo", user.Username)
	assert.True(t, util.VerifyPassword(user.PasswordHash, "featherwood-demo"))
}

func TestLoader_SkipsWhenAlreadySeeded(t *testing.T) {
	store := memory.NewStore()
	loader := NewLoader(store, nil, testOptions())

	_, err := loader.Load(context.Background())
	require.NoError(t, err)

	result, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, result.AlreadySeeded)

	count, err := store.CountProducts()
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

// mapCache stands in for Redis, outliving the stores built on top of it.
type mapCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func (c *mapCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	v, ok := c.entries[key]
	return v, ok, nil
}

func (c *mapCache) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}

func (c *mapCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.entries, k)
	}
	return nil
}

func TestLoader_RestartWithWarmCache(t *testing.T) {
	cache := &mapCache{entries: map[string][]byte{}}
	opts := testOptions()
	opts.ProductsLocation = writeDocument(t, "furnitureProducts.json", productsJSON)

	first := repository.NewCachedStorage(memory.NewStore(), cache, time.Minute)
	_, err := NewLoader(first, storage.NewDocumentStore(nil), opts).Load(context.Background())
	require.NoError(t, err)
	_, err = first.ListCategories()
	require.NoError(t, err)
	_, err = first.FindProductBySlug("walnut-dining-table")
	require.NoError(t, err)

	// fresh in-memory store, same cache, no product document this time
	second := repository.NewCachedStorage(memory.NewStore(), cache, time.Minute)
	result, err := NewLoader(second, storage.NewDocumentStore(nil), testOptions()).Load(context.Background())
	require.NoError(t, err)
	assert.False(t, result.AlreadySeeded)
	assert.True(t, result.ProductFallback)

	count, err := second.CountProducts()
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	_, err = second.FindProductBySlug("walnut-dining-table")
	assert.ErrorIs(t, err, repository.ErrNotFound)

	category, err := second.FindCategoryBySlug("living-room")
	require.NoError(t, err)
	products, err := second.ListProductsByCategory(category.ID)
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "f000", products[0].ID)
}

func TestLoader_ReadsDocuments(t *testing.T) {
	for _, f := range storeFactories() {
		t.Run(f.name, func(t *testing.T) {
			store := f.new(t)
			opts := testOptions()
			opts.ProductsLocation = writeDocument(t, "furnitureProducts.json", productsJSON)
			opts.ProjectsLocation = writeDocument(t, "interiorProjects.json", projectsJSON)

			result, err := NewLoader(store, storage.NewDocumentStore(nil), opts).Load(context.Background())
			require.NoError(t, err)
			assert.False(t, result.ProductFallback)
			assert.False(t, result.ProjectFallback)
			assert.Equal(t, 2, result.Products)
			assert.Equal(t, 4, result.Projects)

			table, err := store.FindProductBySlug("walnut-dining-table")
			require.NoError(t, err)
			assert.Equal(t, "f101", table.ID)
			assert.EqualValues(t, 46, table.Rating)
			assert.False(t, table.InStock)
			require.NotNil(t, table.SalePrice)
			assert.EqualValues(t, 79900, *table.SalePrice)
			assert.Equal(t, "https://img.example.com/walnut-1.jpg", table.Image)
			assert.Len(t, table.ImageURLs, 2)

			chair, err := store.FindProductBySlug("rattan-lounge-chair")
			require.NoError(t, err)
			assert.Equal(t, "102", chair.ID)
			assert.EqualValues(t, 48, chair.Rating)
			assert.True(t, chair.InStock)

			_, err = store.FindProductBySlug("emerald-velvet-sofa")
			assert.ErrorIs(t, err, repository.ErrNotFound)

			villa, err := store.FindProjectByID("p201")
			require.NoError(t, err)
			require.NotNil(t, villa.VideoURL)
			assert.Equal(t, "Goa", villa.Location)
		})
	}
}

func TestLoader_InvalidDocumentFallsBack(t *testing.T) {
	store := memory.NewStore()
	opts := testOptions()
	opts.ProductsLocation = writeDocument(t, "broken.json", `{"not": "an array"`)
	opts.ProjectsLocation = writeDocument(t, "empty.json", `[]`)

	result, err := NewLoader(store, storage.NewDocumentStore(nil), opts).Load(context.Background())
	require.NoError(t, err)
	assert.True(t, result.ProductFallback)
	assert.True(t, result.ProjectFallback)

	_, err = store.FindProductBySlug("emerald-velvet-sofa")
	assert.NoError(t, err)
}

func TestDecodeProducts_RejectsMalformedRecordAlone(t *testing.T) {
	doc := `[
	  {"id": "f301", "title": "Teak Console", "price": 1299.99, "category": "Living Room"},
	  {"id": "f302", "title": "Cane Stool", "price": 4900, "category": "Office"},
	  {"id": {"nested": true}, "title": "Odd Id", "price": 100}
	]`

	products, rejected, err := decodeProducts([]byte(doc))
	require.NoError(t, err)
	require.Len(t, products, 1)
	assert.Equal(t, "f302", products[0].ID)

	require.Len(t, rejected, 2)
	assert.Equal(t, 0, rejected[0].Index)
	assert.Equal(t, 2, rejected[1].Index)
}

func TestLoader_KeepsGoodRecordsBesideMalformedOnes(t *testing.T) {
	store := memory.NewStore()
	opts := testOptions()
	opts.ProductsLocation = writeDocument(t, "mixed.json", `[
	  {"title": "Teak Console", "price": "expensive", "category": "Living Room"},
	  {"title": "Cane Stool", "price": 4900, "category": "Office"}
	]`)

	result, err := NewLoader(store, storage.NewDocumentStore(nil), opts).Load(context.Background())
	require.NoError(t, err)
	assert.False(t, result.ProductFallback)
	assert.Equal(t, 1, result.Products)

	stool, err := store.FindProductBySlug("cane-stool")
	require.NoError(t, err)
	assert.EqualValues(t, 4900, stool.Price)

	_, err = store.FindProductBySlug("emerald-velvet-sofa")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "Rattan Lounge Chair", want: "rattan-lounge-chair"},
		{in: "  Oak & Cane -- Chair ", want: "oak-cane-chair"},
		{in: "10 Ways", want: "10-ways"},
		{in: "★★", want: "untitled"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in))
	}
}
