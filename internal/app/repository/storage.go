package repository

import (
	"errors"

	"github.com/featherwood/featherwood-backend/internal/app/model"
)

var (
	// ErrNotFound signals an absent record. Lookups return it with a nil
	// record, never a zero value.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique key (id, slug, username,
	// email) is already taken.
	ErrDuplicate = errors.New("record already exists")
	// ErrInvalidQuantity is returned for cart quantities below 1.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// ProductFilter holds optional predicates. A nil field imposes no
// constraint; every non-nil field must hold for a product to match.
type ProductFilter struct {
	CategoryID *uint
	MinPrice   *int64 // inclusive
	MaxPrice   *int64 // inclusive
	Material   *string
	// Query is a case-insensitive substring of title or description.
	// Empty matches everything.
	Query string
}

func (f ProductFilter) LogFields() map[string]interface{} {
	fields := map[string]interface{}{"query": f.Query}
	if f.CategoryID != nil {
		fields["category_id"] = *f.CategoryID
	}
	if f.MinPrice != nil {
		fields["min_price"] = *f.MinPrice
	}
	if f.MaxPrice != nil {
		fields["max_price"] = *f.MaxPrice
	}
	if f.Material != nil {
		fields["material"] = *f.Material
	}
	return fields
}

type UserRepository interface {
	CreateUser(user *model.User) error
	FindUserByID(id uint) (*model.User, error)
	FindUserByUsername(username string) (*model.User, error)
	FindUserByEmail(email string) (*model.User, error)
}

type CategoryRepository interface {
	CreateCategory(category *model.ProductCategory) error
	ListCategories() ([]model.ProductCategory, error)
	FindCategoryByID(id uint) (*model.ProductCategory, error)
	FindCategoryBySlug(slug string) (*model.ProductCategory, error)
}

type ProductRepository interface {
	// CreateProduct keeps a caller-supplied ID, otherwise assigns "f<n>".
	CreateProduct(product *model.Product) error
	ListProducts() ([]model.Product, error)
	FindProductByID(id string) (*model.Product, error)
	FindProductBySlug(slug string) (*model.Product, error)
	// ListProductsByCategory matches on the category's name. An unknown
	// category id yields an empty list.
	ListProductsByCategory(categoryID uint) ([]model.Product, error)
	ListFeaturedProducts() ([]model.Product, error)
	SearchProducts(query string) ([]model.Product, error)
	FilterProducts(filter ProductFilter) ([]model.Product, error)
	CountProducts() (int64, error)
}

type ProjectRepository interface {
	// CreateProject keeps a caller-supplied ID, otherwise assigns "p<n>".
	CreateProject(project *model.InteriorProject) error
	ListProjects() ([]model.InteriorProject, error)
	FindProjectByID(id string) (*model.InteriorProject, error)
	FindProjectBySlug(slug string) (*model.InteriorProject, error)
	ListProjectsByCategory(category string) ([]model.InteriorProject, error)
	ListFeaturedProjects() ([]model.InteriorProject, error)
	CountProjects() (int64, error)
}

type BlogPostRepository interface {
	CreateBlogPost(post *model.BlogPost) error
	// ListBlogPosts returns posts newest first.
	ListBlogPosts() ([]model.BlogPost, error)
	FindBlogPostBySlug(slug string) (*model.BlogPost, error)
	// ListRecentBlogPosts returns at most limit posts, newest first.
	// limit <= 0 means no limit.
	ListRecentBlogPosts(limit int) ([]model.BlogPost, error)
}

type ConsultationRepository interface {
	CreateConsultationRequest(request *model.ConsultationRequest) error
	// ListConsultationRequests returns requests newest first.
	ListConsultationRequests() ([]model.ConsultationRequest, error)
}

type CartRepository interface {
	// AddToCart merges into the existing (owner, product) row by adding
	// the requested quantity, or inserts a new row. Quantities below 1
	// count as 1. item is overwritten with the stored row.
	AddToCart(item *model.CartItem) error
	FindCartItemByID(id uint) (*model.CartItem, error)
	ListCartItems(owner model.Owner) ([]model.CartItem, error)
	UpdateCartItemQuantity(id uint, quantity int) (*model.CartItem, error)
	// RemoveCartItem reports whether a row was deleted.
	RemoveCartItem(id uint) (bool, error)
	// ClearCart deletes every row of owner and returns how many went.
	ClearCart(owner model.Owner) (int64, error)
}

type WishlistRepository interface {
	// AddToWishlist is idempotent: item is overwritten with the existing
	// row when the (user, product) pair is already present.
	AddToWishlist(item *model.WishlistItem) error
	ListWishlistItems(userID uint) ([]model.WishlistItem, error)
	RemoveFromWishlist(userID uint, productID string) (bool, error)
	IsInWishlist(userID uint, productID string) (bool, error)
	// ToggleWishlist atomically removes the pair if present, otherwise
	// adds it, and reports whether it is present afterwards.
	ToggleWishlist(userID uint, productID string) (bool, error)
}

type TestimonialRepository interface {
	CreateTestimonial(testimonial *model.Testimonial) error
	// ListTestimonials orders by display order ascending; entries without
	// a display order come last, ties break on id.
	ListTestimonials() ([]model.Testimonial, error)
	ListFeaturedTestimonials(limit int) ([]model.Testimonial, error)
}

// Storage is the full data-access contract. The in-memory and relational
// implementations behave identically under it.
type Storage interface {
	UserRepository
	CategoryRepository
	ProductRepository
	ProjectRepository
	BlogPostRepository
	ConsultationRepository
	CartRepository
	WishlistRepository
	TestimonialRepository
}
