package controller

import (
	"net/http"

	"github.com/featherwood/featherwood-backend/internal/app/service"
	apperrors "github.com/featherwood/featherwood-backend/internal/errors"
	"github.com/gin-gonic/gin"
)

// ContentController serves the blog and testimonials.
type ContentController struct {
	blogService        service.BlogService
	testimonialService service.TestimonialService
}

func NewContentController(blogService service.BlogService, testimonialService service.TestimonialService) *ContentController {
	return &ContentController{
		blogService:        blogService,
		testimonialService: testimonialService,
	}
}

// ListPosts returns posts newest first
// GET /api/v1/blog
func (ctrl *ContentController) ListPosts(c *gin.Context) {
	posts, err := ctrl.blogService.ListPosts()
	if err != nil {
		respondError(c, err, "blog posts")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts": posts,
		"count": len(posts),
	})
}

// RecentPosts
// GET /api/v1/blog/recent?limit=
func (ctrl *ContentController) RecentPosts(c *gin.Context) {
	limit, err := parseLimitQuery(c, "limit")
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidLimit, err.Error())
		return
	}

	posts, err := ctrl.blogService.RecentPosts(limit)
	if err != nil {
		respondError(c, err, "recent blog posts")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"posts": posts,
		"count": len(posts),
	})
}

// GET /api/v1/blog/:slug
func (ctrl *ContentController) GetPost(c *gin.Context) {
	post, err := ctrl.blogService.GetPost(c.Param("slug"))
	if err != nil {
		respondError(c, err, "blog post")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"post": post,
	})
}

// ListTestimonials; limit 0 or absent returns all
// GET /api/v1/testimonials?limit=
func (ctrl *ContentController) ListTestimonials(c *gin.Context) {
	limit, err := parseLimitQuery(c, "limit")
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidLimit, err.Error())
		return
	}

	testimonials, err := ctrl.testimonialService.ListTestimonials(limit)
	if err != nil {
		respondError(c, err, "testimonials")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"testimonials": testimonials,
		"count":        len(testimonials),
	})
}
