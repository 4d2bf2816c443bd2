package service

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"time"

	"github.com/featherwood/featherwood-backend/internal/app/model"
	"github.com/featherwood/featherwood-backend/internal/app/repository"
	"github.com/featherwood/featherwood-backend/pkg/logger"
	"github.com/go-playground/validator/v10"
)

// ConsultationInput is the public lead form.
type ConsultationInput struct {
	FullName    string  `json:"full_name" validate:"required,max=120"`
	Email       string  `json:"email" validate:"required,email,max=255"`
	PhoneNumber string  `json:"phone_number" validate:"required,min=7,max=20"`
	ProjectType string  `json:"project_type" validate:"required,max=120"`
	Description string  `json:"description" validate:"required,max=5000"`
	BudgetRange *string `json:"budget_range" validate:"omitempty,max=64"`
}

// ValidationError lists per-field problems keyed by JSON field name.
// It matches ErrInvalidConsultation under errors.Is.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return fmt.Sprintf("%s (%s)", ErrInvalidConsultation, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidConsultation
}

type ConsultationService interface {
	CreateRequest(input ConsultationInput) (*model.ConsultationRequest, error)
	ListRequests() ([]model.ConsultationRequest, error)
}

type consultationService struct {
	consultationRepo repository.ConsultationRepository
	validate         *validator.Validate
	now              func() time.Time
}

func NewConsultationService(consultationRepo repository.ConsultationRepository) ConsultationService {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})

	return &consultationService{
		consultationRepo: consultationRepo,
		validate:         validate,
		now:              time.Now,
	}
}

func (s *consultationService) CreateRequest(input ConsultationInput) (*model.ConsultationRequest, error) {
	input.FullName = strings.TrimSpace(input.FullName)
	input.Email = strings.TrimSpace(input.Email)
	input.PhoneNumber = strings.TrimSpace(input.PhoneNumber)
	input.ProjectType = strings.TrimSpace(input.ProjectType)
	input.Description = strings.TrimSpace(input.Description)

	if err := s.validate.Struct(input); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) {
			return nil, err
		}
		verr := &ValidationError{Fields: formatValidationErrors(validationErrors)}
		logger.Warn("Rejected consultation request", map[string]interface{}{
			"fields": verr.Fields,
		})
		return nil, verr
	}

	request := &model.ConsultationRequest{
		FullName:    input.FullName,
		Email:       input.Email,
		PhoneNumber: input.PhoneNumber,
		ProjectType: input.ProjectType,
		Description: input.Description,
		BudgetRange: input.BudgetRange,
		Status:      model.ConsultationPending,
		CreatedAt:   s.now(),
	}
	if err := s.consultationRepo.CreateConsultationRequest(request); err != nil {
		logger.Error("Failed to store consultation request", err, map[string]interface{}{
			"email": request.Email,
		})
		return nil, err
	}

	logger.Info("Consultation request received", map[string]interface{}{
		"consultation_id": request.ID,
		"project_type":    request.ProjectType,
	})
	return request, nil
}

func (s *consultationService) ListRequests() ([]model.ConsultationRequest, error) {
	requests, err := s.consultationRepo.ListConsultationRequests()
	if err != nil {
		logger.Error("Failed to list consultation requests", err)
		return nil, err
	}
	return requests, nil
}

func formatValidationErrors(errs validator.ValidationErrors) map[string]string {
	messages := make(map[string]string, len(errs))
	for _, err := range errs {
		field := err.Field()
		switch err.Tag() {
		case "required":
			messages[field] = "is required"
		case "email":
			messages[field] = "must be a valid email address"
		case "min":
			messages[field] = fmt.Sprintf("must be at least %s characters", err.Param())
		case "max":
			messages[field] = fmt.Sprintf("must be at most %s characters", err.Param())
		default:
			messages[field] = fmt.Sprintf("failed %s validation", err.Tag())
		}
	}
	return messages
}
