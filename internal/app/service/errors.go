package service

import "errors"

var (
	ErrCategoryNotFound     = errors.New("category not found")
	ErrProductNotFound      = errors.New("product not found")
	ErrProjectNotFound      = errors.New("project not found")
	ErrBlogPostNotFound     = errors.New("blog post not found")
	ErrUserNotFound         = errors.New("user not found")
	ErrCartItemNotFound     = errors.New("cart item not found")
	ErrWishlistItemNotFound = errors.New("wishlist item not found")
	ErrInvalidQuantity      = errors.New("quantity must be at least 1")
	ErrInvalidConsultation  = errors.New("invalid consultation request")
)
