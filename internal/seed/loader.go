// Package seed populates a fresh Storage with the catalog fixtures and the
// external product and project documents.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/featherwood/featherwood-backend/internal/app/model"
	"github.com/featherwood/featherwood-backend/internal/app/repository"
	"github.com/featherwood/featherwood-backend/pkg/logger"
	"github.com/featherwood/featherwood-backend/pkg/util"
)

// DocumentReader fetches a whole document by location (path or s3 URI).
type DocumentReader interface {
	Read(ctx context.Context, location string) ([]byte, error)
}

type DemoUser struct {
	Username string
	Email    string
	Password string
	FullName string
}

type Options struct {
	ProductsLocation string
	ProjectsLocation string
	DemoUser         DemoUser
	// PasswordCost is the bcrypt cost for the demo user; 0 uses the default.
	PasswordCost int
}

// Result summarises one Load call.
type Result struct {
	AlreadySeeded   bool
	Categories      int
	Products        int
	Projects        int
	BlogPosts       int
	Testimonials    int
	Skipped         int
	ProductFallback bool
	ProjectFallback bool
}

type Loader struct {
	store repository.Storage
	cache *repository.CachedStorage
	docs  DocumentReader
	opts  Options
}

// NewLoader returns a loader writing into store. A catalog cache around
// store is bypassed while seeding and invalidated afterwards. docs may be
// nil, in which case both documents count as missing.
func NewLoader(store repository.Storage, docs DocumentReader, opts Options) *Loader {
	cache, _ := store.(*repository.CachedStorage)
	return &Loader{store: repository.Uncached(store), cache: cache, docs: docs, opts: opts}
}

// Load seeds the store once. Document problems are logged and replaced by
// the default records; only storage failures are returned.
func (l *Loader) Load(ctx context.Context) (*Result, error) {
	result := &Result{}

	existing, err := l.store.ListCategories()
	if err != nil {
		return nil, fmt.Errorf("check existing categories: %w", err)
	}
	if len(existing) > 0 {
		logger.Info("Catalog already seeded, skipping...", map[string]interface{}{
			"existing_categories": len(existing),
		})
		result.AlreadySeeded = true
		return result, nil
	}

	logger.Info("Seeding catalog data...")

	if err := l.seedCategories(result); err != nil {
		return nil, err
	}
	if err := l.seedDemoUser(); err != nil {
		return nil, err
	}
	if err := l.seedProducts(ctx, result); err != nil {
		return nil, err
	}
	if err := l.seedProjects(ctx, result); err != nil {
		return nil, err
	}
	if err := l.seedBlogPosts(result); err != nil {
		return nil, err
	}
	if err := l.seedTestimonials(result); err != nil {
		return nil, err
	}

	if l.cache != nil {
		if err := l.cache.InvalidateCatalog(); err != nil {
			logger.Warn("Failed to invalidate catalog cache after seeding", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	logger.Info("Catalog data seeded successfully", map[string]interface{}{
		"categories":       result.Categories,
		"products":         result.Products,
		"projects":         result.Projects,
		"blog_posts":       result.BlogPosts,
		"testimonials":     result.Testimonials,
		"skipped":          result.Skipped,
		"product_fallback": result.ProductFallback,
		"project_fallback": result.ProjectFallback,
	})
	return result, nil
}

// created reports whether err is nil; a duplicate is logged and counted
// as skipped, any other error is returned.
func (r *Result) created(err error, kind, slug string) (bool, error) {
	if err == nil {
		return true, nil
	}
	if errors.Is(err, repository.ErrDuplicate) {
		r.Skipped++
		logger.Warn("Skipping seed record with duplicate key", map[string]interface{}{
			"kind": kind,
			"slug": slug,
		})
		return false, nil
	}
	return false, fmt.Errorf("seed %s %q: %w", kind, slug, err)
}

func (l *Loader) seedCategories(result *Result) error {
	for _, category := range categoryFixtures() {
		ok, err := result.created(l.store.CreateCategory(&category), "category", category.Slug)
		if err != nil {
			return err
		}
		if ok {
			result.Categories++
		}
	}
	return nil
}

func (l *Loader) seedDemoUser() error {
	demo := l.opts.DemoUser
	if demo.Username == "" {
		return nil
	}

	_, err := l.store.FindUserByUsername(demo.Username)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return fmt.Errorf("look up demo user: %w", err)
	}

	hash, err := util.HashPasswordWithCost(demo.Password, l.opts.PasswordCost)
	if err != nil {
		return fmt.Errorf("hash demo user password: %w", err)
	}

	user := &model.User{
		Username:     demo.Username,
		Email:        demo.Email,
		PasswordHash: hash,
		FullName:     demo.FullName,
	}
	if err := l.store.CreateUser(user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			logger.Warn("Demo user collides with an existing account", map[string]interface{}{
				"username": demo.Username,
			})
			return nil
		}
		return fmt.Errorf("create demo user: %w", err)
	}

	logger.Info("Demo user created", map[string]interface{}{
		"user_id":  user.ID,
		"username": user.Username,
	})
	return nil
}

func (l *Loader) readDocument(ctx context.Context, location string) ([]byte, error) {
	if l.docs == nil || location == "" {
		return nil, errors.New("no document source configured")
	}
	return l.docs.Read(ctx, location)
}

func logRejected(kind, location string, rejected []recordError) {
	for _, r := range rejected {
		logger.Warn("Ignoring invalid seed record", map[string]interface{}{
			"kind":     kind,
			"location": location,
			"index":    r.Index,
			"reason":   r.Err.Error(),
		})
	}
}

func (l *Loader) seedProducts(ctx context.Context, result *Result) error {
	location := l.opts.ProductsLocation

	var products []model.Product
	data, err := l.readDocument(ctx, location)
	if err == nil {
		var rejected []recordError
		products, rejected, err = decodeProducts(data)
		logRejected("product", location, rejected)
	}
	if err != nil {
		logger.Warn("Product document unusable, inserting default product", map[string]interface{}{
			"location": location,
			"reason":   err.Error(),
		})
		products = []model.Product{defaultProduct()}
		result.ProductFallback = true
	}

	for i := range products {
		ok, err := result.created(l.store.CreateProduct(&products[i]), "product", products[i].Slug)
		if err != nil {
			return err
		}
		if ok {
			result.Products++
		}
	}
	return nil
}

func (l *Loader) seedProjects(ctx context.Context, result *Result) error {
	location := l.opts.ProjectsLocation

	var projects []model.InteriorProject
	data, err := l.readDocument(ctx, location)
	if err == nil {
		var rejected []recordError
		projects, rejected, err = decodeProjects(data)
		logRejected("project", location, rejected)
	}
	if err != nil {
		logger.Warn("Project document unusable, inserting default project", map[string]interface{}{
			"location": location,
			"reason":   err.Error(),
		})
		projects = []model.InteriorProject{defaultProject()}
		result.ProjectFallback = true
	}

	// fixed showcase projects follow the document; slug clashes are skipped
	projects = append(projects, projectFixtures()...)
	for i := range projects {
		ok, err := result.created(l.store.CreateProject(&projects[i]), "project", projects[i].Slug)
		if err != nil {
			return err
		}
		if ok {
			result.Projects++
		}
	}
	return nil
}

func (l *Loader) seedBlogPosts(result *Result) error {
	for _, post := range blogPostFixtures() {
		ok, err := result.created(l.store.CreateBlogPost(&post), "blog_post", post.Slug)
		if err != nil {
			return err
		}
		if ok {
			result.BlogPosts++
		}
	}
	return nil
}

func (l *Loader) seedTestimonials(result *Result) error {
	for _, fixture := range testimonialFixtures() {
		testimonial := fixture.Testimonial
		testimonial.Rating = model.NormalizeRating(fixture.rawRating)
		if err := l.store.CreateTestimonial(&testimonial); err != nil {
			return fmt.Errorf("seed testimonial %q: %w", testimonial.Name, err)
		}
		result.Testimonials++
	}
	return nil
}
