package repository

import (
	"github.com/featherwood/featherwood-backend/internal/app/model"
	"github.com/featherwood/featherwood-backend/pkg/logger"
	"gorm.io/gorm"
)

type testimonialRepository struct {
	db *gorm.DB
}

func NewTestimonialRepository(db *gorm.DB) TestimonialRepository {
	return &testimonialRepository{db: db}
}

func (r *testimonialRepository) CreateTestimonial(testimonial *model.Testimonial) error {
	if err := r.db.Create(testimonial).Error; err != nil {
		logger.Error("Failed to create testimonial in database", err, map[string]interface{}{
			"name": testimonial.Name,
		})
		return err
	}
	return nil
}

func (r *testimonialRepository) ListTestimonials() ([]model.Testimonial, error) {
	return r.ListFeaturedTestimonials(0)
}

func (r *testimonialRepository) ListFeaturedTestimonials(limit int) ([]model.Testimonial, error) {
	// NULL display orders sort last on both PostgreSQL and SQLite.
	query := r.db.Order("display_order IS NULL").Order("display_order ASC").Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var testimonials []model.Testimonial
	if err := query.Find(&testimonials).Error; err != nil {
		logger.Error("Failed to list testimonials from database", err)
		return nil, err
	}
	if testimonials == nil {
		testimonials = []model.Testimonial{}
	}
	return testimonials, nil
}
