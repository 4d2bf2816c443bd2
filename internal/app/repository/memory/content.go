package memory

import (
	"sort"
	"time"

	"github.com/featherwood/featherwood-backend/internal/app/model"
	"github.com/featherwood/featherwood-backend/internal/app/repository"
)

func (s *Store) CreateBlogPost(post *model.BlogPost) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.blogPostSlugs[post.Slug]; ok {
		return repository.ErrDuplicate
	}
	if err := assignID(&s.blogPostSeq, &post.ID, s.blogPosts.has); err != nil {
		return err
	}

	s.blogPosts.insert(cloneBlogPost(*post))
	s.blogPostSlugs[post.Slug] = post.ID
	return nil
}

func (s *Store) ListBlogPosts() ([]model.BlogPost, error) {
	return s.ListRecentBlogPosts(0)
}

func (s *Store) FindBlogPostBySlug(slug string) (*model.BlogPost, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.blogPostSlugs[slug]
	if !ok {
		return nil, repository.ErrNotFound
	}
	p, _ := s.blogPosts.get(id)
	out := cloneBlogPost(*p)
	return &out, nil
}

func (s *Store) ListRecentBlogPosts(limit int) ([]model.BlogPost, error) {
	s.mu.RLock()
	posts := make([]model.BlogPost, 0, s.blogPosts.len())
	for _, p := range s.blogPosts.rows {
		posts = append(posts, cloneBlogPost(p))
	}
	s.mu.RUnlock()

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].PublishDate.After(posts[j].PublishDate)
	})
	if limit > 0 && len(posts) > limit {
		posts = posts[:limit]
	}
	return posts, nil
}

func (s *Store) CreateConsultationRequest(request *model.ConsultationRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if request.Status == "" {
		request.Status = model.ConsultationPending
	}
	if request.CreatedAt.IsZero() {
		request.CreatedAt = time.Now()
	}
	if err := assignID(&s.consultationSeq, &request.ID, s.consultations.has); err != nil {
		return err
	}

	s.consultations.insert(cloneConsultation(*request))
	return nil
}

func (s *Store) ListConsultationRequests() ([]model.ConsultationRequest, error) {
	s.mu.RLock()
	rows := s.consultations.rows
	requests := make([]model.ConsultationRequest, 0, len(rows))
	for i := len(rows) - 1; i >= 0; i-- {
		requests = append(requests, cloneConsultation(rows[i]))
	}
	s.mu.RUnlock()

	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})
	return requests, nil
}

func (s *Store) CreateTestimonial(testimonial *model.Testimonial) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := assignID(&s.testimonialSeq, &testimonial.ID, s.testimonials.has); err != nil {
		return err
	}

	s.testimonials.insert(cloneTestimonial(*testimonial))
	return nil
}

func (s *Store) ListTestimonials() ([]model.Testimonial, error) {
	return s.ListFeaturedTestimonials(0)
}

func (s *Store) ListFeaturedTestimonials(limit int) ([]model.Testimonial, error) {
	s.mu.RLock()
	testimonials := make([]model.Testimonial, 0, s.testimonials.len())
	for _, t := range s.testimonials.rows {
		testimonials = append(testimonials, cloneTestimonial(t))
	}
	s.mu.RUnlock()

	sort.SliceStable(testimonials, func(i, j int) bool {
		a, b := testimonials[i], testimonials[j]
		switch {
		case a.DisplayOrder == nil && b.DisplayOrder == nil:
			return a.ID < b.ID
		case a.DisplayOrder == nil:
			return false
		case b.DisplayOrder == nil:
			return true
		case *a.DisplayOrder != *b.DisplayOrder:
			return *a.DisplayOrder < *b.DisplayOrder
		}
		return a.ID < b.ID
	})
	if limit > 0 && len(testimonials) > limit {
		testimonials = testimonials[:limit]
	}
	return testimonials, nil
}
