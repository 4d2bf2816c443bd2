package model

import "time"

type WishlistItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_wishlist_items_user_product" json:"user_id"`
	ProductID string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_wishlist_items_user_product;index" json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
}

func (WishlistItem) TableName() string {
	return "wishlist_items"
}

// WishlistLine is a wishlist item joined with its product, nil if dangling.
type WishlistLine struct {
	WishlistItem
	Product *Product `json:"product"`
}
