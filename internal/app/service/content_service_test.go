package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/featherwood/featherwood-backend/internal/app/model"
	"github.com/featherwood/featherwood-backend/internal/app/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlogService_RecentPostsDefaultLimit(t *testing.T) {
	store := memory.NewStore()
	for i := 1; i <= 4; i++ {
		require.NoError(t, store.CreateBlogPost(&model.BlogPost{
			Title:       fmt.Sprintf("Post %d", i),
			Slug:        fmt.Sprintf("post-%d", i),
			Content:     "body",
			Category:    "Tips",
			PublishDate: time.Date(2023, time.March, i, 0, 0, 0, 0, time.UTC),
		}))
	}
	blogService := NewBlogService(store)

	recent, err := blogService.RecentPosts(0)
	require.NoError(t, err)
	require.Len(t, recent, DefaultRecentPostsLimit)
	assert.Equal(t, "post-4", recent[0].Slug)

	recent, err = blogService.RecentPosts(1)
	require.NoError(t, err)
	assert.Len(t, recent, 1)

	all, err := blogService.ListPosts()
	require.NoError(t, err)
	assert.Len(t, all, 4)

	_, err = blogService.GetPost("missing")
	assert.ErrorIs(t, err, ErrBlogPostNotFound)
}

func TestProjectService(t *testing.T) {
	store := memory.NewStore()
	require.NoError(t, store.CreateProject(&model.InteriorProject{Title: "Kitchen", Slug: "kitchen", Category: "Modular Kitchen", IsFeatured: true}))
	require.NoError(t, store.CreateProject(&model.InteriorProject{Title: "Loft", Slug: "loft", Category: "Residential"}))
	projectService := NewProjectService(store)

	all, err := projectService.ListProjects("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	residential, err := projectService.ListProjects("Residential")
	require.NoError(t, err)
	require.Len(t, residential, 1)
	assert.Equal(t, "loft", residential[0].Slug)

	featured, err := projectService.ListFeaturedProjects()
	require.NoError(t, err)
	require.Len(t, featured, 1)

	_, err = projectService.GetProject("villa")
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestTestimonialService_Limit(t *testing.T) {
	store := memory.NewStore()
	for i := 0; i < 3; i++ {
		order := i + 1
		require.NoError(t, store.CreateTestimonial(&model.Testimonial{
			Name: fmt.Sprintf("Client %d", order), ProjectType: "Home", Content: "Great", Rating: 50, DisplayOrder: &order,
		}))
	}
	testimonialService := NewTestimonialService(store)

	all, err := testimonialService.ListTestimonials(0)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	top, err := testimonialService.ListTestimonials(2)
	require.NoError(t, err)
	require.Len(t, top, 2)
	assert.Equal(t, "Client 1", top[0].Name)
}
