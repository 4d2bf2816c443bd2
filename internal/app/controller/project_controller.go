package controller

import (
	"net/http"
	"strings"

	"github.com/featherwood/featherwood-backend/internal/app/service"
	"github.com/gin-gonic/gin"
)

type ProjectController struct {
	projectService service.ProjectService
}

func NewProjectController(projectService service.ProjectService) *ProjectController {
	return &ProjectController{
		projectService: projectService,
	}
}

// ListProjects
// GET /api/v1/projects?category=
func (ctrl *ProjectController) ListProjects(c *gin.Context) {
	projects, err := ctrl.projectService.ListProjects(strings.TrimSpace(c.Query("category")))
	if err != nil {
		respondError(c, err, "projects")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"projects": projects,
		"count":    len(projects),
	})
}

// GET /api/v1/projects/featured
func (ctrl *ProjectController) ListFeaturedProjects(c *gin.Context) {
	projects, err := ctrl.projectService.ListFeaturedProjects()
	if err != nil {
		respondError(c, err, "featured projects")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"projects": projects,
		"count":    len(projects),
	})
}

// GET /api/v1/projects/:slug
func (ctrl *ProjectController) GetProject(c *gin.Context) {
	project, err := ctrl.projectService.GetProject(c.Param("slug"))
	if err != nil {
		respondError(c, err, "project")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"project": project,
	})
}
