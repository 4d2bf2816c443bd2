// Package repositorytest holds the behavioural suite every
// repository.Storage implementation must pass.
package repositorytest

import (
	"sync"
	"testing"
	"time"

	"github.com/featherwood/featherwood-backend/internal/app/model"
	"github.com/featherwood/featherwood-backend/internal/app/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory returns an empty Storage. It should register its own cleanup.
type Factory func(t *testing.T) repository.Storage

func RunStorageContract(t *testing.T, newStorage Factory) {
	t.Run("Users", func(t *testing.T) { testUsers(t, newStorage(t)) })
	t.Run("Categories", func(t *testing.T) { testCategories(t, newStorage(t)) })
	t.Run("ProductIDs", func(t *testing.T) { testProductIDs(t, newStorage(t)) })
	t.Run("ProductLookups", func(t *testing.T) { testProductLookups(t, newStorage(t)) })
	t.Run("ProductFilter", func(t *testing.T) { testProductFilter(t, newStorage(t)) })
	t.Run("Projects", func(t *testing.T) { testProjects(t, newStorage(t)) })
	t.Run("BlogPosts", func(t *testing.T) { testBlogPosts(t, newStorage(t)) })
	t.Run("Consultations", func(t *testing.T) { testConsultations(t, newStorage(t)) })
	t.Run("CartMerge", func(t *testing.T) { testCartMerge(t, newStorage(t)) })
	t.Run("CartOwners", func(t *testing.T) { testCartOwners(t, newStorage(t)) })
	t.Run("CartUpdateRemove", func(t *testing.T) { testCartUpdateRemove(t, newStorage(t)) })
	t.Run("Wishlist", func(t *testing.T) { testWishlist(t, newStorage(t)) })
	t.Run("WishlistToggle", func(t *testing.T) { testWishlistToggle(t, newStorage(t)) })
	t.Run("Testimonials", func(t *testing.T) { testTestimonials(t, newStorage(t)) })
}

func int64Ptr(v int64) *int64 { return &v }
func strPtr(v string) *string { return &v }
func intPtr(v int) *int       { return &v }

func newProduct(slug, title, category string, price int64) *model.Product {
	return &model.Product{
		Title:       title,
		Slug:        slug,
		Description: title + " for modern homes",
		Price:       price,
		Category:    category,
		Rating:      40,
		InStock:     true,
	}
}

func slugs(products []model.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Slug)
	}
	return out
}

func testUsers(t *testing.T, s repository.Storage) {
	user := &model.User{Username: "meera", Email: "meera@example.com", PasswordHash: "hash", FullName: "Meera Iyer"}
	require.NoError(t, s.CreateUser(user))
	assert.NotZero(t, user.ID)

	found, err := s.FindUserByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "meera", found.Username)

	found, err = s.FindUserByUsername("meera")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	found, err = s.FindUserByEmail("meera@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, found.ID)

	dup := &model.User{Username: "meera", Email: "other@example.com", PasswordHash: "hash", FullName: "Other"}
	assert.ErrorIs(t, s.CreateUser(dup), repository.ErrDuplicate)

	missing, err := s.FindUserByUsername("nobody")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Nil(t, missing)
}

func testCategories(t *testing.T, s repository.Storage) {
	living := &model.ProductCategory{Name: "Living Room", Slug: "living-room"}
	bedroom := &model.ProductCategory{Name: "Bedroom", Slug: "bedroom"}
	require.NoError(t, s.CreateCategory(living))
	require.NoError(t, s.CreateCategory(bedroom))
	assert.NotEqual(t, living.ID, bedroom.ID)

	categories, err := s.ListCategories()
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "living-room", categories[0].Slug)
	assert.Equal(t, "bedroom", categories[1].Slug)

	found, err := s.FindCategoryBySlug("bedroom")
	require.NoError(t, err)
	assert.Equal(t, bedroom.ID, found.ID)

	found, err = s.FindCategoryByID(living.ID)
	require.NoError(t, err)
	assert.Equal(t, "Living Room", found.Name)

	assert.ErrorIs(t, s.CreateCategory(&model.ProductCategory{Name: "Again", Slug: "bedroom"}), repository.ErrDuplicate)

	_, err = s.FindCategoryBySlug("garden")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func testProductIDs(t *testing.T, s repository.Storage) {
	first := newProduct("oak-table", "Oak Table", "Dining Room", 45000)
	require.NoError(t, s.CreateProduct(first))
	assert.Equal(t, "f1", first.ID)

	supplied := newProduct("teak-bench", "Teak Bench", "Living Room", 30000)
	supplied.ID = "f2"
	require.NoError(t, s.CreateProduct(supplied))
	assert.Equal(t, "f2", supplied.ID)

	next := newProduct("cane-chair", "Cane Chair", "Living Room", 12000)
	require.NoError(t, s.CreateProduct(next))
	assert.Equal(t, "f3", next.ID)

	sameSlug := newProduct("oak-table", "Oak Table II", "Dining Room", 1)
	assert.ErrorIs(t, s.CreateProduct(sameSlug), repository.ErrDuplicate)

	sameID := newProduct("walnut-desk", "Walnut Desk", "Office", 1)
	sameID.ID = "f1"
	assert.ErrorIs(t, s.CreateProduct(sameID), repository.ErrDuplicate)

	count, err := s.CountProducts()
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)
}

func testProductLookups(t *testing.T, s repository.Storage) {
	sofa := newProduct("emerald-velvet-sofa", "Emerald Velvet Sofa", "Living Room", 129900)
	sofa.IsFeatured = true
	sofa.Tags = model.StringList{"sofa", "velvet"}
	sofa.SalePrice = int64Ptr(99900)
	require.NoError(t, s.CreateProduct(sofa))
	require.NoError(t, s.CreateProduct(newProduct("pine-shelf", "Pine Shelf", "Office", 8000)))

	found, err := s.FindProductBySlug("emerald-velvet-sofa")
	require.NoError(t, err)
	assert.Equal(t, sofa.ID, found.ID)
	assert.Equal(t, model.StringList{"sofa", "velvet"}, found.Tags)
	require.NotNil(t, found.SalePrice)
	assert.EqualValues(t, 99900, *found.SalePrice)

	found, err = s.FindProductByID(sofa.ID)
	require.NoError(t, err)
	assert.Equal(t, "Emerald Velvet Sofa", found.Title)

	missing, err := s.FindProductBySlug("no-such-product")
	assert.ErrorIs(t, err, repository.ErrNotFound)
	assert.Nil(t, missing)

	featured, err := s.ListFeaturedProducts()
	require.NoError(t, err)
	assert.Equal(t, []string{"emerald-velvet-sofa"}, slugs(featured))

	all, err := s.ListProducts()
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"emerald-velvet-sofa", "pine-shelf"}, slugs(all))

	hits, err := s.SearchProducts("VELVET")
	require.NoError(t, err)
	assert.Equal(t, []string{"emerald-velvet-sofa"}, slugs(hits))

	hits, err = s.SearchProducts("modern homes")
	require.NoError(t, err)
	assert.Len(t, hits, 2)

	hits, err = s.SearchProducts("")
	require.NoError(t, err)
	assert.Len(t, hits, 2)

	hits, err = s.SearchProducts("100%")
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func testProductFilter(t *testing.T, s repository.Storage) {
	living := &model.ProductCategory{Name: "Living Room", Slug: "living-room"}
	office := &model.ProductCategory{Name: "Office", Slug: "office"}
	require.NoError(t, s.CreateCategory(living))
	require.NoError(t, s.CreateCategory(office))

	sofa := newProduct("velvet-sofa", "Velvet Sofa", "Living Room", 50000)
	sofa.Material = "Velvet, Wood"
	table := newProduct("coffee-table", "Coffee Table", "Living Room", 20000)
	table.Material = "Solid Wood"
	rug := newProduct("jute-rug", "Jute Rug", "Living Room", 10000)
	desk := newProduct("standing-desk", "Standing Desk", "Office", 20000)
	desk.Material = "Steel, wood"
	for _, p := range []*model.Product{sofa, table, rug, desk} {
		require.NoError(t, s.CreateProduct(p))
	}

	run := func(filter repository.ProductFilter) []string {
		products, err := s.FilterProducts(filter)
		require.NoError(t, err)
		return slugs(products)
	}

	assert.ElementsMatch(t, []string{"velvet-sofa", "coffee-table", "jute-rug"},
		run(repository.ProductFilter{CategoryID: &living.ID}))

	unknown := uint(9999)
	assert.Empty(t, run(repository.ProductFilter{CategoryID: &unknown}))

	// bounds are inclusive
	assert.ElementsMatch(t, []string{"coffee-table", "standing-desk", "jute-rug"},
		run(repository.ProductFilter{MinPrice: int64Ptr(10000), MaxPrice: int64Ptr(20000)}))

	assert.ElementsMatch(t, []string{"velvet-sofa", "coffee-table", "standing-desk"},
		run(repository.ProductFilter{Material: strPtr("WOOD")}))

	assert.ElementsMatch(t, []string{"coffee-table"},
		run(repository.ProductFilter{CategoryID: &living.ID, MaxPrice: int64Ptr(20000), Material: strPtr("wood")}))

	assert.ElementsMatch(t, []string{"standing-desk"},
		run(repository.ProductFilter{Material: strPtr("wood"), Query: "desk"}))

	assert.Len(t, run(repository.ProductFilter{}), 4)

	byCategory, err := s.ListProductsByCategory(office.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"standing-desk"}, slugs(byCategory))
}

func testProjects(t *testing.T, s repository.Storage) {
	kitchen := &model.InteriorProject{
		Title: "Urban Kitchen", Slug: "urban-kitchen", Description: "Galley kitchen",
		Category: "Modular Kitchen", Budget: "12L", IsFeatured: true,
		ImageURLs: model.StringList{"a.jpg", "b.jpg"},
	}
	loft := &model.InteriorProject{
		ID: "p-loft", Title: "Loft", Slug: "loft", Description: "Open loft", Category: "Residential",
		VideoURL: strPtr("https://videos.example.com/loft.mp4"),
	}
	require.NoError(t, s.CreateProject(kitchen))
	require.NoError(t, s.CreateProject(loft))
	assert.Equal(t, "p1", kitchen.ID)
	assert.Equal(t, "p-loft", loft.ID)

	assert.ErrorIs(t, s.CreateProject(&model.InteriorProject{Title: "x", Slug: "loft", Description: "x"}), repository.ErrDuplicate)

	found, err := s.FindProjectBySlug("urban-kitchen")
	require.NoError(t, err)
	assert.Equal(t, model.StringList{"a.jpg", "b.jpg"}, found.ImageURLs)

	found, err = s.FindProjectByID("p-loft")
	require.NoError(t, err)
	require.NotNil(t, found.VideoURL)

	byCategory, err := s.ListProjectsByCategory("Residential")
	require.NoError(t, err)
	require.Len(t, byCategory, 1)
	assert.Equal(t, "loft", byCategory[0].Slug)

	featured, err := s.ListFeaturedProjects()
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "urban-kitchen", featured[0].Slug)

	all, err := s.ListProjects()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	count, err := s.CountProjects()
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	_, err = s.FindProjectBySlug("missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func testBlogPosts(t *testing.T, s repository.Storage) {
	day := func(d int) time.Time { return time.Date(2023, time.April, d, 0, 0, 0, 0, time.UTC) }
	for _, post := range []*model.BlogPost{
		{Title: "Oldest", Slug: "oldest", Content: "x", Category: "Tips", PublishDate: day(15)},
		{Title: "Newest", Slug: "newest", Content: "x", Category: "Tips", PublishDate: day(28)},
		{Title: "Middle", Slug: "middle", Content: "x", Category: "Trends", PublishDate: day(20)},
	} {
		require.NoError(t, s.CreateBlogPost(post))
	}

	assert.ErrorIs(t, s.CreateBlogPost(&model.BlogPost{Title: "Dup", Slug: "newest", Content: "x", Category: "x", PublishDate: day(1)}),
		repository.ErrDuplicate)

	posts, err := s.ListBlogPosts()
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, []string{"newest", "middle", "oldest"}, []string{posts[0].Slug, posts[1].Slug, posts[2].Slug})

	recent, err := s.ListRecentBlogPosts(2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "newest", recent[0].Slug)
	assert.Equal(t, "middle", recent[1].Slug)

	found, err := s.FindBlogPostBySlug("middle")
	require.NoError(t, err)
	assert.Equal(t, "Trends", found.Category)

	_, err = s.FindBlogPostBySlug("missing")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func testConsultations(t *testing.T, s repository.Storage) {
	older := &model.ConsultationRequest{
		FullName: "Asha", Email: "asha@example.com", PhoneNumber: "9999999999",
		ProjectType: "Kitchen", Description: "New kitchen",
		CreatedAt: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
	}
	newer := &model.ConsultationRequest{
		FullName: "Ravi", Email: "ravi@example.com", PhoneNumber: "8888888888",
		ProjectType: "Bedroom", Description: "Wardrobe", BudgetRange: strPtr("2L-5L"),
		CreatedAt: time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, s.CreateConsultationRequest(older))
	require.NoError(t, s.CreateConsultationRequest(newer))
	assert.NotZero(t, older.ID)
	assert.Equal(t, model.ConsultationPending, older.Status)

	requests, err := s.ListConsultationRequests()
	require.NoError(t, err)
	require.Len(t, requests, 2)
	assert.Equal(t, "Ravi", requests[0].FullName)
	require.NotNil(t, requests[0].BudgetRange)
	assert.Equal(t, "2L-5L", *requests[0].BudgetRange)
	assert.Equal(t, model.ConsultationPending, requests[1].Status)
}

func testCartMerge(t *testing.T, s repository.Storage) {
	owner := model.UserOwner(7)

	first := &model.CartItem{ProductID: "f1", Quantity: 2}
	owner.Apply(first)
	require.NoError(t, s.AddToCart(first))
	assert.NotZero(t, first.ID)
	assert.Equal(t, 2, first.Quantity)

	second := &model.CartItem{ProductID: "f1", Quantity: 3}
	owner.Apply(second)
	require.NoError(t, s.AddToCart(second))
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 5, second.Quantity)

	defaulted := &model.CartItem{ProductID: "f2", Quantity: 0}
	owner.Apply(defaulted)
	require.NoError(t, s.AddToCart(defaulted))
	assert.Equal(t, 1, defaulted.Quantity)

	items, err := s.ListCartItems(owner)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "f1", items[0].ProductID)
	assert.Equal(t, 5, items[0].Quantity)
}

func testCartOwners(t *testing.T, s repository.Storage) {
	assert.ErrorIs(t, s.AddToCart(&model.CartItem{ProductID: "f1", Quantity: 1}), model.ErrOwnerRequired)

	userID := uint(3)
	session := "guest-abc"
	both := &model.CartItem{UserID: &userID, SessionID: &session, ProductID: "f1", Quantity: 1}
	assert.ErrorIs(t, s.AddToCart(both), model.ErrOwnerAmbiguous)

	user := model.UserOwner(3)
	guest := model.SessionOwner("guest-abc")
	for _, owner := range []model.Owner{user, guest} {
		item := &model.CartItem{ProductID: "f1", Quantity: 1}
		owner.Apply(item)
		require.NoError(t, s.AddToCart(item))
	}

	userItems, err := s.ListCartItems(user)
	require.NoError(t, err)
	require.Len(t, userItems, 1)
	assert.Nil(t, userItems[0].SessionID)

	guestItems, err := s.ListCartItems(guest)
	require.NoError(t, err)
	require.Len(t, guestItems, 1)
	assert.NotEqual(t, userItems[0].ID, guestItems[0].ID)

	_, err = s.ListCartItems(model.Owner{})
	assert.ErrorIs(t, err, model.ErrOwnerRequired)

	removed, err := s.ClearCart(guest)
	require.NoError(t, err)
	assert.EqualValues(t, 1, removed)

	guestItems, err = s.ListCartItems(guest)
	require.NoError(t, err)
	assert.Empty(t, guestItems)

	userItems, err = s.ListCartItems(user)
	require.NoError(t, err)
	assert.Len(t, userItems, 1)
}

func testCartUpdateRemove(t *testing.T, s repository.Storage) {
	item := &model.CartItem{ProductID: "f1", Quantity: 2}
	model.SessionOwner("guest-1").Apply(item)
	require.NoError(t, s.AddToCart(item))

	updated, err := s.UpdateCartItemQuantity(item.ID, 4)
	require.NoError(t, err)
	assert.Equal(t, 4, updated.Quantity)

	_, err = s.UpdateCartItemQuantity(item.ID, 0)
	assert.ErrorIs(t, err, repository.ErrInvalidQuantity)

	found, err := s.FindCartItemByID(item.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, found.Quantity)

	_, err = s.UpdateCartItemQuantity(item.ID+100, 2)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	ok, err := s.RemoveCartItem(item.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.RemoveCartItem(item.ID)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = s.FindCartItemByID(item.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func testWishlist(t *testing.T, s repository.Storage) {
	first := &model.WishlistItem{UserID: 1, ProductID: "f1"}
	require.NoError(t, s.AddToWishlist(first))
	assert.NotZero(t, first.ID)

	again := &model.WishlistItem{UserID: 1, ProductID: "f1"}
	require.NoError(t, s.AddToWishlist(again))
	assert.Equal(t, first.ID, again.ID)

	require.NoError(t, s.AddToWishlist(&model.WishlistItem{UserID: 2, ProductID: "f1"}))

	items, err := s.ListWishlistItems(1)
	require.NoError(t, err)
	assert.Len(t, items, 1)

	in, err := s.IsInWishlist(1, "f1")
	require.NoError(t, err)
	assert.True(t, in)

	ok, err := s.RemoveFromWishlist(1, "f1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = s.RemoveFromWishlist(1, "f1")
	require.NoError(t, err)
	assert.False(t, ok)

	in, err = s.IsInWishlist(1, "f1")
	require.NoError(t, err)
	assert.False(t, in)

	in, err = s.IsInWishlist(2, "f1")
	require.NoError(t, err)
	assert.True(t, in)
}

func testWishlistToggle(t *testing.T, s repository.Storage) {
	in, err := s.ToggleWishlist(1, "f1")
	require.NoError(t, err)
	assert.True(t, in)

	in, err = s.IsInWishlist(1, "f1")
	require.NoError(t, err)
	assert.True(t, in)

	in, err = s.ToggleWishlist(1, "f1")
	require.NoError(t, err)
	assert.False(t, in)

	// an even number of concurrent toggles leaves the pair absent, and
	// exactly half of them observe it added
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		present int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			in, err := s.ToggleWishlist(2, "f2")
			assert.NoError(t, err)
			if in {
				mu.Lock()
				present++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, present)
	in, err = s.IsInWishlist(2, "f2")
	require.NoError(t, err)
	assert.False(t, in)

	items, err := s.ListWishlistItems(2)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func testTestimonials(t *testing.T, s repository.Storage) {
	for _, tm := range []*model.Testimonial{
		{Name: "Unordered", ProjectType: "Kitchen", Content: "x", Rating: 50},
		{Name: "Second", ProjectType: "Bedroom", Content: "x", Rating: 45, DisplayOrder: intPtr(2)},
		{Name: "First", ProjectType: "Living", Content: "x", Rating: 40, DisplayOrder: intPtr(1)},
	} {
		require.NoError(t, s.CreateTestimonial(tm))
	}

	all, err := s.ListTestimonials()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"First", "Second", "Unordered"}, []string{all[0].Name, all[1].Name, all[2].Name})

	top, err := s.ListFeaturedTestimonials(2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "First", top[0].Name)
	assert.EqualValues(t, 40, top[0].Rating)
}
