package repository

import (
	"github.com/featherwood/featherwood-backend/internal/app/model"
	"github.com/featherwood/featherwood-backend/pkg/logger"
	"gorm.io/gorm"
)

type consultationRepository struct {
	db *gorm.DB
}

func NewConsultationRepository(db *gorm.DB) ConsultationRepository {
	return &consultationRepository{db: db}
}

func (r *consultationRepository) CreateConsultationRequest(request *model.ConsultationRequest) error {
	if request.Status == "" {
		request.Status = model.ConsultationPending
	}

	logger.Debug("Creating consultation request in database", map[string]interface{}{
		"email":        request.Email,
		"project_type": request.ProjectType,
	})

	if err := r.db.Create(request).Error; err != nil {
		logger.Error("Failed to create consultation request in database", err, map[string]interface{}{
			"email": request.Email,
		})
		return err
	}

	logger.Debug("Consultation request created in database", map[string]interface{}{
		"consultation_id": request.ID,
	})
	return nil
}

func (r *consultationRepository) ListConsultationRequests() ([]model.ConsultationRequest, error) {
	var requests []model.ConsultationRequest
	if err := r.db.Order("created_at DESC").Order("id DESC").Find(&requests).Error; err != nil {
		logger.Error("Failed to list consultation requests from database", err)
		return nil, err
	}
	if requests == nil {
		requests = []model.ConsultationRequest{}
	}
	return requests, nil
}
