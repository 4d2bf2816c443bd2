package memory

import (
	"fmt"
	"strings"

	"github.com/featherwood/featherwood-backend/internal/app/model"
	"github.com/featherwood/featherwood-backend/internal/app/repository"
)

func (s *Store) CreateCategory(category *model.ProductCategory) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.categorySlugs[category.Slug]; ok {
		return repository.ErrDuplicate
	}
	if err := assignID(&s.categorySeq, &category.ID, s.categories.has); err != nil {
		return err
	}

	s.categories.insert(*category)
	s.categorySlugs[category.Slug] = category.ID
	return nil
}

func (s *Store) ListCategories() ([]model.ProductCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return append([]model.ProductCategory{}, s.categories.rows...), nil
}

func (s *Store) FindCategoryByID(id uint) (*model.ProductCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.categories.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := *c
	return &out, nil
}

func (s *Store) FindCategoryBySlug(slug string) (*model.ProductCategory, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.categorySlugs[slug]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c, _ := s.categories.get(id)
	out := *c
	return &out, nil
}

func (s *Store) CreateProduct(product *model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.productSlugs[product.Slug]; ok {
		return repository.ErrDuplicate
	}
	if product.ID != "" && s.products.has(product.ID) {
		return repository.ErrDuplicate
	}
	if product.ID == "" {
		product.ID = nextFreeID(&s.productSeq, model.ProductIDPrefix, s.products.has)
	}

	s.products.insert(cloneProduct(*product))
	s.productSlugs[product.Slug] = product.ID
	return nil
}

// nextFreeID advances seq past ids a caller already supplied.
func nextFreeID(seq *uint, prefix string, taken func(string) bool) string {
	for {
		*seq++
		id := fmt.Sprintf("%s%d", prefix, *seq)
		if !taken(id) {
			return id
		}
	}
}

func (s *Store) ListProducts() ([]model.Product, error) {
	return s.FilterProducts(repository.ProductFilter{})
}

func (s *Store) FindProductByID(id string) (*model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.productByID(id)
}

func (s *Store) FindProductBySlug(slug string) (*model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.productSlugs[slug]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return s.productByID(id)
}

// productByID expects s.mu to be held.
func (s *Store) productByID(id string) (*model.Product, error) {
	p, ok := s.products.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := cloneProduct(*p)
	return &out, nil
}

func (s *Store) ListProductsByCategory(categoryID uint) ([]model.Product, error) {
	return s.FilterProducts(repository.ProductFilter{CategoryID: &categoryID})
}

func (s *Store) ListFeaturedProducts() ([]model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []model.Product{}
	for _, p := range s.products.rows {
		if p.IsFeatured {
			out = append(out, cloneProduct(p))
		}
	}
	return out, nil
}

func (s *Store) SearchProducts(query string) ([]model.Product, error) {
	return s.FilterProducts(repository.ProductFilter{Query: query})
}

func (s *Store) FilterProducts(filter repository.ProductFilter) ([]model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	categoryName := ""
	if filter.CategoryID != nil {
		c, ok := s.categories.get(*filter.CategoryID)
		if !ok {
			return []model.Product{}, nil
		}
		categoryName = c.Name
	}

	out := []model.Product{}
	for _, p := range s.products.rows {
		if filter.CategoryID != nil && p.Category != categoryName {
			continue
		}
		if filter.MinPrice != nil && p.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
			continue
		}
		if filter.Material != nil && (p.Material == "" || !containsFold(p.Material, *filter.Material)) {
			continue
		}
		if filter.Query != "" && !containsFold(p.Title, filter.Query) && !containsFold(p.Description, filter.Query) {
			continue
		}
		out = append(out, cloneProduct(p))
	}
	return out, nil
}

func (s *Store) CountProducts() (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(s.products.len()), nil
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func (s *Store) CreateProject(project *model.InteriorProject) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.projectSlugs[project.Slug]; ok {
		return repository.ErrDuplicate
	}
	if project.ID != "" && s.projects.has(project.ID) {
		return repository.ErrDuplicate
	}
	if project.ID == "" {
		project.ID = nextFreeID(&s.projectSeq, model.ProjectIDPrefix, s.projects.has)
	}

	s.projects.insert(cloneProject(*project))
	s.projectSlugs[project.Slug] = project.ID
	return nil
}

func (s *Store) ListProjects() ([]model.InteriorProject, error) {
	return s.selectProjects(func(model.InteriorProject) bool { return true }), nil
}

func (s *Store) FindProjectByID(id string) (*model.InteriorProject, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.projectByID(id)
}

func (s *Store) FindProjectBySlug(slug string) (*model.InteriorProject, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.projectSlugs[slug]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return s.projectByID(id)
}

func (s *Store) ListProjectsByCategory(category string) ([]model.InteriorProject, error) {
	return s.selectProjects(func(p model.InteriorProject) bool { return p.Category == category }), nil
}

func (s *Store) ListFeaturedProjects() ([]model.InteriorProject, error) {
	return s.selectProjects(func(p model.InteriorProject) bool { return p.IsFeatured }), nil
}

func (s *Store) CountProjects() (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return int64(s.projects.len()), nil
}

// projectByID expects s.mu to be held.
func (s *Store) projectByID(id string) (*model.InteriorProject, error) {
	p, ok := s.projects.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := cloneProject(*p)
	return &out, nil
}

func (s *Store) selectProjects(match func(model.InteriorProject) bool) []model.InteriorProject {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var selected []model.InteriorProject
	for _, p := range s.projects.rows {
		if match(p) {
			selected = append(selected, p)
		}
	}
	return cloneProjects(selected)
}
