package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/featherwood/featherwood-backend/internal/app/model"
	"github.com/featherwood/featherwood-backend/internal/app/repository"
	"github.com/featherwood/featherwood-backend/internal/app/service"
	"github.com/stretchr/testify/assert"
)

func TestParseError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{name: "wrapped product not found", err: fmt.Errorf("lookup: %w", service.ErrProductNotFound), status: http.StatusNotFound, code: ProductNotFound},
		{name: "invalid quantity", err: service.ErrInvalidQuantity, status: http.StatusBadRequest, code: ValidationQuantity},
		{name: "consultation fields", err: &service.ValidationError{Fields: map[string]string{"email": "bad"}}, status: http.StatusBadRequest, code: ValidationInvalidInput},
		{name: "owner missing", err: model.ErrOwnerRequired, status: http.StatusBadRequest, code: ValidationOwnerRequired},
		{name: "duplicate", err: repository.ErrDuplicate, status: http.StatusConflict, code: ResourceAlreadyExists},
		{name: "raw unique violation", err: fmt.Errorf("UNIQUE constraint failed: products.slug"), status: http.StatusConflict, code: ResourceAlreadyExists},
		{name: "unknown", err: fmt.Errorf("boom"), status: http.StatusInternalServerError, code: InternalServerError},
		{name: "nil", err: nil, status: http.StatusInternalServerError, code: InternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := ParseError(tt.err, "cart")
			assert.Equal(t, tt.status, info.Status)
			assert.Equal(t, tt.code, info.Code)
			assert.NotContains(t, info.Message, "products.slug")
		})
	}
}
