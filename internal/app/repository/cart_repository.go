package repository

import (
	"time"

	"github.com/featherwood/featherwood-backend/internal/app/model"
	"github.com/featherwood/featherwood-backend/pkg/logger"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type cartRepository struct {
	db *gorm.DB
}

func NewCartRepository(db *gorm.DB) CartRepository {
	return &cartRepository{db: db}
}

// ownerScope restricts query to rows of owner. owner must be valid.
func ownerScope(query *gorm.DB, owner model.Owner) *gorm.DB {
	if owner.UserID != nil && *owner.UserID != 0 {
		return query.Where("user_id = ?", *owner.UserID)
	}
	return query.Where("session_id = ?", *owner.SessionID)
}

func (r *cartRepository) AddToCart(item *model.CartItem) error {
	owner := model.OwnerOf(*item)
	if err := owner.Validate(); err != nil {
		return err
	}
	owner.Apply(item)
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	fields := owner.LogFields()
	fields["product_id"] = item.ProductID
	fields["quantity"] = item.Quantity
	logger.Debug("Adding item to cart in database", fields)

	conflict := []clause.Column{{Name: "user_id"}, {Name: "product_id"}}
	if item.UserID == nil {
		conflict = []clause.Column{{Name: "session_id"}, {Name: "product_id"}}
	}

	requested := item.Quantity
	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.OnConflict{
			Columns: conflict,
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity":   gorm.Expr("cart_items.quantity + ?", requested),
				"updated_at": time.Now(),
			}),
		}).Create(item).Error
		if err != nil {
			return err
		}

		var stored model.CartItem
		if err := ownerScope(tx, owner).Where("product_id = ?", item.ProductID).First(&stored).Error; err != nil {
			return err
		}
		*item = stored
		return nil
	})
	if err != nil {
		logger.Error("Failed to add item to cart in database", err, fields)
		return err
	}

	logger.Debug("Cart item stored in database", map[string]interface{}{
		"cart_item_id": item.ID,
		"quantity":     item.Quantity,
	})
	return nil
}

func (r *cartRepository) FindCartItemByID(id uint) (*model.CartItem, error) {
	var item model.CartItem
	if err := r.db.First(&item, id).Error; err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

func (r *cartRepository) ListCartItems(owner model.Owner) ([]model.CartItem, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}

	var items []model.CartItem
	if err := ownerScope(r.db, owner).Order("id ASC").Find(&items).Error; err != nil {
		logger.Error("Failed to list cart items from database", err, owner.LogFields())
		return nil, err
	}
	if items == nil {
		items = []model.CartItem{}
	}
	return items, nil
}

func (r *cartRepository) UpdateCartItemQuantity(id uint, quantity int) (*model.CartItem, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	logger.Debug("Updating cart item quantity in database", map[string]interface{}{
		"cart_item_id": id,
		"quantity":     quantity,
	})

	result := r.db.Model(&model.CartItem{}).Where("id = ?", id).Updates(map[string]interface{}{
		"quantity":   quantity,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		logger.Error("Failed to update cart item in database", result.Error, map[string]interface{}{
			"cart_item_id": id,
		})
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return r.FindCartItemByID(id)
}

func (r *cartRepository) RemoveCartItem(id uint) (bool, error) {
	result := r.db.Delete(&model.CartItem{}, id)
	if result.Error != nil {
		logger.Error("Failed to delete cart item from database", result.Error, map[string]interface{}{
			"cart_item_id": id,
		})
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *cartRepository) ClearCart(owner model.Owner) (int64, error) {
	if err := owner.Validate(); err != nil {
		return 0, err
	}

	result := ownerScope(r.db, owner).Delete(&model.CartItem{})
	if result.Error != nil {
		logger.Error("Failed to clear cart in database", result.Error, owner.LogFields())
		return 0, result.Error
	}

	fields := owner.LogFields()
	fields["removed"] = result.RowsAffected
	logger.Debug("Cart cleared in database", fields)
	return result.RowsAffected, nil
}
