package repository

import "gorm.io/gorm"

type gormStorage struct {
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

// NewStorage returns the relational Storage backed by db.
func NewStorage(db *gorm.DB) Storage {
	return &gormStorage{
		UserRepository:         NewUserRepository(db),
		CategoryRepository:     NewCategoryRepository(db),
		ProductRepository:      NewProductRepository(db),
		ProjectRepository:      NewProjectRepository(db),
		BlogPostRepository:     NewBlogPostRepository(db),
		ConsultationRepository: NewConsultationRepository(db),
		CartRepository:         NewCartRepository(db),
		WishlistRepository:     NewWishlistRepository(db),
		TestimonialRepository:  NewTestimonialRepository(db),
	}
}
