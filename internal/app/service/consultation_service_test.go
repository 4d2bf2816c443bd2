package service

import (
	"errors"
	"testing"

	"github.com/featherwood/featherwood-backend/internal/app/model"
	"github.com/featherwood/featherwood-backend/internal/app/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConsultationInput() ConsultationInput {
	budget := "5L-10L"
	return ConsultationInput{
		FullName:    "Asha Menon",
		Email:       "asha@example.com",
		PhoneNumber: "+91 98450 12345",
		ProjectType: "Modular Kitchen",
		Description: "Looking to redo a 10x12 kitchen with an island.",
		BudgetRange: &budget,
	}
}

func TestConsultationService_CreateRequest(t *testing.T) {
	consultationService := NewConsultationService(memory.NewStore())

	request, err := consultationService.CreateRequest(validConsultationInput())
	require.NoError(t, err)
	assert.NotZero(t, request.ID)
	assert.Equal(t, model.ConsultationPending, request.Status)
	assert.False(t, request.CreatedAt.IsZero())

	requests, err := consultationService.ListRequests()
	require.NoError(t, err)
	assert.Len(t, requests, 1)
}

func TestConsultationService_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ConsultationInput)
		field  string
	}{
		{name: "bad email", mutate: func(in *ConsultationInput) { in.Email = "not-an-email" }, field: "email"},
		{name: "blank name", mutate: func(in *ConsultationInput) { in.FullName = "   " }, field: "full_name"},
		{name: "short phone", mutate: func(in *ConsultationInput) { in.PhoneNumber = "123" }, field: "phone_number"},
		{name: "missing description", mutate: func(in *ConsultationInput) { in.Description = "" }, field: "description"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := memory.NewStore()
			consultationService := NewConsultationService(store)

			input := validConsultationInput()
			tt.mutate(&input)

			_, err := consultationService.CreateRequest(input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidConsultation)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Contains(t, verr.Fields, tt.field)

			requests, err := store.ListConsultationRequests()
			require.NoError(t, err)
			assert.Empty(t, requests)
		})
	}
}
