package service

import (
	"errors"

	"github.com/featherwood/featherwood-backend/internal/app/model"
	"github.com/featherwood/featherwood-backend/internal/app/repository"
	"github.com/featherwood/featherwood-backend/pkg/logger"
)

const DefaultRecentPostsLimit = 3

type BlogService interface {
	ListPosts() ([]model.BlogPost, error)
	// RecentPosts returns the newest posts; limit <= 0 means
	// DefaultRecentPostsLimit.
	RecentPosts(limit int) ([]model.BlogPost, error)
	GetPost(slug string) (*model.BlogPost, error)
}

type blogService struct {
	blogRepo repository.BlogPostRepository
}

func NewBlogService(blogRepo repository.BlogPostRepository) BlogService {
	return &blogService{blogRepo: blogRepo}
}

func (s *blogService) ListPosts() ([]model.BlogPost, error) {
	posts, err := s.blogRepo.ListBlogPosts()
	if err != nil {
		logger.Error("Failed to list blog posts", err)
		return nil, err
	}
	return posts, nil
}

func (s *blogService) RecentPosts(limit int) ([]model.BlogPost, error) {
	if limit <= 0 {
		limit = DefaultRecentPostsLimit
	}
	posts, err := s.blogRepo.ListRecentBlogPosts(limit)
	if err != nil {
		logger.Error("Failed to list recent blog posts", err, map[string]interface{}{
			"limit": limit,
		})
		return nil, err
	}
	return posts, nil
}

func (s *blogService) GetPost(slug string) (*model.BlogPost, error) {
	post, err := s.blogRepo.FindBlogPostBySlug(slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrBlogPostNotFound
		}
		logger.Error("Failed to fetch blog post", err, map[string]interface{}{
			"slug": slug,
		})
		return nil, err
	}
	return post, nil
}

type TestimonialService interface {
	// ListTestimonials returns at most limit entries; limit <= 0 means all.
	ListTestimonials(limit int) ([]model.Testimonial, error)
}

type testimonialService struct {
	testimonialRepo repository.TestimonialRepository
}

func NewTestimonialService(testimonialRepo repository.TestimonialRepository) TestimonialService {
	return &testimonialService{testimonialRepo: testimonialRepo}
}

func (s *testimonialService) ListTestimonials(limit int) ([]model.Testimonial, error) {
	testimonials, err := s.testimonialRepo.ListFeaturedTestimonials(limit)
	if err != nil {
		logger.Error("Failed to list testimonials", err)
		return nil, err
	}
	return testimonials, nil
}
