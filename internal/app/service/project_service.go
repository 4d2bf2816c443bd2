package service

import (
	"errors"

	"github.com/featherwood/featherwood-backend/internal/app/model"
	"github.com/featherwood/featherwood-backend/internal/app/repository"
	"github.com/featherwood/featherwood-backend/pkg/logger"
)

type ProjectService interface {
	// ListProjects returns every project, or only those whose category
	// equals category when it is non-empty.
	ListProjects(category string) ([]model.InteriorProject, error)
	ListFeaturedProjects() ([]model.InteriorProject, error)
	GetProject(slug string) (*model.InteriorProject, error)
}

type projectService struct {
	projectRepo repository.ProjectRepository
}

func NewProjectService(projectRepo repository.ProjectRepository) ProjectService {
	return &projectService{projectRepo: projectRepo}
}

func (s *projectService) ListProjects(category string) ([]model.InteriorProject, error) {
	var (
		projects []model.InteriorProject
		err      error
	)
	if category != "" {
		projects, err = s.projectRepo.ListProjectsByCategory(category)
	} else {
		projects, err = s.projectRepo.ListProjects()
	}
	if err != nil {
		logger.Error("Failed to list projects", err, map[string]interface{}{
			"category": category,
		})
		return nil, err
	}
	return projects, nil
}

func (s *projectService) ListFeaturedProjects() ([]model.InteriorProject, error) {
	projects, err := s.projectRepo.ListFeaturedProjects()
	if err != nil {
		logger.Error("Failed to list featured projects", err)
		return nil, err
	}
	return projects, nil
}

func (s *projectService) GetProject(slug string) (*model.InteriorProject, error) {
	project, err := s.projectRepo.FindProjectBySlug(slug)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProjectNotFound
		}
		logger.Error("Failed to fetch project", err, map[string]interface{}{
			"slug": slug,
		})
		return nil, err
	}
	return project, nil
}
