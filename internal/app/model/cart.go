package model

import (
	"errors"
	"time"
)

var (
	ErrOwnerRequired  = errors.New("either user_id or session_id is required")
	ErrOwnerAmbiguous = errors.New("only one of user_id or session_id may be set")
)

// CartItem belongs to exactly one owner: a user or a guest session.
// At most one row exists per (owner, product).
type CartItem struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	UserID    *uint     `gorm:"uniqueIndex:idx_cart_items_user_product" json:"user_id"`
	SessionID *string   `gorm:"type:varchar(128);uniqueIndex:idx_cart_items_session_product" json:"session_id"`
	ProductID string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_cart_items_user_product;uniqueIndex:idx_cart_items_session_product;index" json:"product_id"`
	Quantity  int       `gorm:"not null;check:chk_cart_items_quantity,quantity >= 1" json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (CartItem) TableName() string {
	return "cart_items"
}

// Owner identifies whose cart a row belongs to.
type Owner struct {
	UserID    *uint
	SessionID *string
}

func UserOwner(userID uint) Owner {
	return Owner{UserID: &userID}
}

func SessionOwner(sessionID string) Owner {
	return Owner{SessionID: &sessionID}
}

func (o Owner) hasUser() bool {
	return o.UserID != nil && *o.UserID != 0
}

func (o Owner) hasSession() bool {
	return o.SessionID != nil && *o.SessionID != ""
}

// Validate requires exactly one meaningful key.
func (o Owner) Validate() error {
	switch {
	case o.hasUser() && o.hasSession():
		return ErrOwnerAmbiguous
	case !o.hasUser() && !o.hasSession():
		return ErrOwnerRequired
	}
	return nil
}

// Owns reports whether item belongs to o.
func (o Owner) Owns(item CartItem) bool {
	if o.hasUser() {
		return item.UserID != nil && *item.UserID == *o.UserID
	}
	if o.hasSession() {
		return item.SessionID != nil && *item.SessionID == *o.SessionID
	}
	return false
}

// Apply stamps the owner key onto item, clearing the other key.
func (o Owner) Apply(item *CartItem) {
	item.UserID, item.SessionID = nil, nil
	if o.hasUser() {
		id := *o.UserID
		item.UserID = &id
	} else if o.hasSession() {
		sid := *o.SessionID
		item.SessionID = &sid
	}
}

// OwnerOf returns the owner key recorded on item.
func OwnerOf(item CartItem) Owner {
	return Owner{UserID: item.UserID, SessionID: item.SessionID}
}

func (o Owner) LogFields() map[string]interface{} {
	fields := map[string]interface{}{}
	if o.hasUser() {
		fields["user_id"] = *o.UserID
	}
	if o.hasSession() {
		fields["session_id"] = *o.SessionID
	}
	return fields
}

// CartLine is a cart item joined with the current product record.
// Product is nil when the referenced product no longer exists.
type CartLine struct {
	CartItem
	Product *Product `json:"product"`
}

// CartSummary is recomputed from live product data on every read.
type CartSummary struct {
	Items []CartLine `json:"items"`
	Total int64      `json:"total"`
	Count int        `json:"count"`
}

// NewCartSummary totals lines at current prices; dangling lines add
// their quantity to Count but nothing to Total.
func NewCartSummary(lines []CartLine) CartSummary {
	summary := CartSummary{Items: lines}
	if summary.Items == nil {
		summary.Items = []CartLine{}
	}
	for _, line := range lines {
		summary.Count += line.Quantity
		if line.Product != nil {
			summary.Total += line.Product.Price * int64(line.Quantity)
		}
	}
	return summary
}
