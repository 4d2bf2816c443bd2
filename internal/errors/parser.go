package errors

import (
	"errors"
	"strings"

	"github.com/featherwood/featherwood-backend/internal/app/model"
	"github.com/featherwood/featherwood-backend/internal/app/repository"
	"github.com/featherwood/featherwood-backend/internal/app/service"
	"gorm.io/gorm"
)

// ErrorInfo is an HTTP-ready description of an error.
type ErrorInfo struct {
	Status  int
	Code    string
	Message string
}

var sentinels = []struct {
	err  error
	info ErrorInfo
}{
	{service.ErrCategoryNotFound, ErrorInfo{404, CategoryNotFound, "Category not found"}},
	{service.ErrProductNotFound, ErrorInfo{404, ProductNotFound, "Product not found"}},
	{service.ErrProjectNotFound, ErrorInfo{404, ProjectNotFound, "Project not found"}},
	{service.ErrBlogPostNotFound, ErrorInfo{404, BlogPostNotFound, "Blog post not found"}},
	{service.ErrUserNotFound, ErrorInfo{404, UserNotFound, "User not found"}},
	{service.ErrCartItemNotFound, ErrorInfo{404, CartItemNotFound, "Cart item not found"}},
	{service.ErrWishlistItemNotFound, ErrorInfo{404, WishlistItemNotFound, "Product is not in the wishlist"}},
	{service.ErrInvalidQuantity, ErrorInfo{400, ValidationQuantity, "Quantity must be at least 1"}},
	{service.ErrInvalidConsultation, ErrorInfo{400, ValidationInvalidInput, "Consultation request is invalid"}},
	{model.ErrOwnerRequired, ErrorInfo{400, ValidationOwnerRequired, "Either user_id or session_id is required"}},
	{model.ErrOwnerAmbiguous, ErrorInfo{400, ValidationOwnerRequired, "Only one of user_id or session_id may be set"}},
	{repository.ErrInvalidQuantity, ErrorInfo{400, ValidationQuantity, "Quantity must be at least 1"}},
	{repository.ErrDuplicate, ErrorInfo{409, ResourceAlreadyExists, "Resource already exists"}},
	{repository.ErrNotFound, ErrorInfo{404, ResourceNotFound, "Resource not found"}},
	{gorm.ErrRecordNotFound, ErrorInfo{404, ResourceNotFound, "Resource not found"}},
}

// ParseError converts err into a status, code and message. context names
// the operation ("cart", "product") and only shapes the fallback message.
// Driver details never reach the client.
func ParseError(err error, context string) ErrorInfo {
	if err == nil {
		return ErrorInfo{Status: 500, Code: InternalServerError, Message: getDefaultErrorMessage(context)}
	}

	for _, s := range sentinels {
		if errors.Is(err, s.err) {
			return s.info
		}
	}

	errLower := strings.ToLower(err.Error())
	if strings.Contains(errLower, "duplicate key") || strings.Contains(errLower, "unique constraint") {
		return ErrorInfo{Status: 409, Code: ResourceAlreadyExists, Message: "Resource already exists"}
	}
	if strings.Contains(errLower, "check constraint") {
		return ErrorInfo{Status: 400, Code: ValidationInvalidInput, Message: "Input violates a constraint"}
	}
	if strings.Contains(errLower, "connection refused") || strings.Contains(errLower, "sql: database is closed") {
		return ErrorInfo{Status: 500, Code: InternalDatabaseError, Message: "Storage is unavailable. Please try again later"}
	}

	return ErrorInfo{Status: 500, Code: InternalServerError, Message: getDefaultErrorMessage(context)}
}

func getDefaultErrorMessage(context string) string {
	if context == "" {
		return "Something went wrong. Please try again later"
	}
	return "Failed to process " + context + ". Please try again later"
}
