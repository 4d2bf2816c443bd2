package controller

import (
	"net/http"

	"github.com/featherwood/featherwood-backend/internal/app/service"
	apperrors "github.com/featherwood/featherwood-backend/internal/errors"
	"github.com/featherwood/featherwood-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type ConsultationController struct {
	consultationService service.ConsultationService
}

func NewConsultationController(consultationService service.ConsultationService) *ConsultationController {
	return &ConsultationController{
		consultationService: consultationService,
	}
}

// CreateRequest records a consultation lead
// POST /api/v1/consultation-requests
func (ctrl *ConsultationController) CreateRequest(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var input service.ConsultationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		log.Warn("Invalid consultation request body", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "Request body must be a JSON object")
		return
	}

	request, err := ctrl.consultationService.CreateRequest(input)
	if err != nil {
		respondError(c, err, "consultation request")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"consultation_request": request,
	})
}
