package errors

// Error codes returned in the "error" field of every error body.
// Format: CATEGORY_DETAIL. Clients map these to their own copy.

const (
	// ==================== Validation (VALIDATION_) ====================
	ValidationInvalidInput  = "VALIDATION_INVALID_INPUT"
	ValidationInvalidID     = "VALIDATION_INVALID_ID"
	ValidationInvalidPrice  = "VALIDATION_INVALID_PRICE"
	ValidationInvalidLimit  = "VALIDATION_INVALID_LIMIT"
	ValidationQuantity      = "VALIDATION_INVALID_QUANTITY"
	ValidationOwnerRequired = "VALIDATION_OWNER_REQUIRED"

	// ==================== Resources (RESOURCE_) ====================
	ResourceNotFound      = "RESOURCE_NOT_FOUND"
	ResourceAlreadyExists = "RESOURCE_ALREADY_EXISTS"

	// ==================== Catalog (CATALOG_) ====================
	CategoryNotFound = "CATEGORY_NOT_FOUND"
	ProductNotFound  = "PRODUCT_NOT_FOUND"
	ProjectNotFound  = "PROJECT_NOT_FOUND"
	BlogPostNotFound = "BLOG_POST_NOT_FOUND"

	// ==================== Shopping (CART_, WISHLIST_) ====================
	UserNotFound         = "USER_NOT_FOUND"
	CartItemNotFound     = "CART_ITEM_NOT_FOUND"
	WishlistItemNotFound = "WISHLIST_ITEM_NOT_FOUND"

	// ==================== Internal (INTERNAL_) ====================
	InternalServerError   = "INTERNAL_SERVER_ERROR"
	InternalDatabaseError = "INTERNAL_DATABASE_ERROR"
)
