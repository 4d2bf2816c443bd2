package repository

import (
	"github.com/featherwood/featherwood-backend/internal/app/model"
	"github.com/featherwood/featherwood-backend/pkg/logger"
	"gorm.io/gorm"
)

type blogPostRepository struct {
	db *gorm.DB
}

func NewBlogPostRepository(db *gorm.DB) BlogPostRepository {
	return &blogPostRepository{db: db}
}

func (r *blogPostRepository) CreateBlogPost(post *model.BlogPost) error {
	if err := r.db.Create(post).Error; err != nil {
		err = translate(err)
		logger.Error("Failed to create blog post in database", err, map[string]interface{}{
			"slug": post.Slug,
		})
		return err
	}
	return nil
}

func (r *blogPostRepository) ListBlogPosts() ([]model.BlogPost, error) {
	return r.ListRecentBlogPosts(0)
}

func (r *blogPostRepository) FindBlogPostBySlug(slug string) (*model.BlogPost, error) {
	var post model.BlogPost
	if err := r.db.Where("slug = ?", slug).First(&post).Error; err != nil {
		return nil, translate(err)
	}
	return &post, nil
}

func (r *blogPostRepository) ListRecentBlogPosts(limit int) ([]model.BlogPost, error) {
	query := r.db.Order("publish_date DESC").Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var posts []model.BlogPost
	if err := query.Find(&posts).Error; err != nil {
		logger.Error("Failed to list blog posts from database", err, map[string]interface{}{
			"limit": limit,
		})
		return nil, err
	}
	if posts == nil {
		posts = []model.BlogPost{}
	}
	return posts, nil
}
