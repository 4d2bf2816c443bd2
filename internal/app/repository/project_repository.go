package repository

import (
	"github.com/featherwood/featherwood-backend/internal/app/model"
	"github.com/featherwood/featherwood-backend/pkg/logger"
	"gorm.io/gorm"
)

const projectSequence = "interior_projects"

type projectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) CreateProject(project *model.InteriorProject) error {
	logger.Debug("Creating project in database", map[string]interface{}{
		"project_id": project.ID,
		"slug":       project.Slug,
	})

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if project.ID == "" {
			id, err := nextFreeID(tx, &model.InteriorProject{}, projectSequence, model.ProjectIDPrefix)
			if err != nil {
				return err
			}
			project.ID = id
		}
		return tx.Create(project).Error
	})
	if err != nil {
		err = translate(err)
		logger.Error("Failed to create project in database", err, map[string]interface{}{
			"project_id": project.ID,
			"slug":       project.Slug,
		})
		return err
	}
	return nil
}

func (r *projectRepository) ListProjects() ([]model.InteriorProject, error) {
	return r.find(r.db)
}

func (r *projectRepository) FindProjectByID(id string) (*model.InteriorProject, error) {
	var project model.InteriorProject
	if err := r.db.Where("id = ?", id).First(&project).Error; err != nil {
		return nil, translate(err)
	}
	return &project, nil
}

func (r *projectRepository) FindProjectBySlug(slug string) (*model.InteriorProject, error) {
	var project model.InteriorProject
	if err := r.db.Where("slug = ?", slug).First(&project).Error; err != nil {
		return nil, translate(err)
	}
	return &project, nil
}

func (r *projectRepository) ListProjectsByCategory(category string) ([]model.InteriorProject, error) {
	return r.find(r.db.Where("category = ?", category))
}

func (r *projectRepository) ListFeaturedProjects() ([]model.InteriorProject, error) {
	return r.find(r.db.Where("is_featured = ?", true))
}

func (r *projectRepository) CountProjects() (int64, error) {
	var count int64
	if err := r.db.Model(&model.InteriorProject{}).Count(&count).Error; err != nil {
		logger.Error("Failed to count projects in database", err)
		return 0, err
	}
	return count, nil
}

func (r *projectRepository) find(query *gorm.DB) ([]model.InteriorProject, error) {
	var projects []model.InteriorProject
	if err := query.Find(&projects).Error; err != nil {
		logger.Error("Failed to list projects from database", err)
		return nil, err
	}
	if projects == nil {
		projects = []model.InteriorProject{}
	}
	return projects, nil
}
