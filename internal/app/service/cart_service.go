package service

import (
	"errors"

	"github.com/featherwood/featherwood-backend/internal/app/model"
	"github.com/featherwood/featherwood-backend/internal/app/repository"
	"github.com/featherwood/featherwood-backend/pkg/logger"
)

type CartService interface {
	// GetCart joins the owner's rows with current product data and totals
	// them. Lines whose product has gone carry a nil Product.
	GetCart(owner model.Owner) (*model.CartSummary, error)
	// AddToCart merges into an existing line for the same product.
	// quantity < 1 is treated as 1.
	AddToCart(owner model.Owner, productID string, quantity int) (*model.CartLine, error)
	UpdateQuantity(cartItemID uint, quantity int) (*model.CartLine, error)
	RemoveItem(cartItemID uint) error
	ClearCart(owner model.Owner) (int64, error)
}

type cartService struct {
	cartRepo    repository.CartRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
}

func NewCartService(
	cartRepo repository.CartRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
) CartService {
	return &cartService{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

// lookupProduct returns nil without error for a dangling product id.
func lookupProduct(productRepo repository.ProductRepository, productID string) (*model.Product, error) {
	product, err := productRepo.FindProductByID(productID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return product, err
}

func requireUser(userRepo repository.UserRepository, userID uint) error {
	_, err := userRepo.FindUserByID(userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrUserNotFound
	}
	return err
}

func (s *cartService) GetCart(owner model.Owner) (*model.CartSummary, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}

	items, err := s.cartRepo.ListCartItems(owner)
	if err != nil {
		logger.Error("Failed to fetch cart", err, owner.LogFields())
		return nil, err
	}

	lines := make([]model.CartLine, 0, len(items))
	for _, item := range items {
		product, err := lookupProduct(s.productRepo, item.ProductID)
		if err != nil {
			logger.Error("Failed to fetch cart product", err, map[string]interface{}{
				"cart_item_id": item.ID,
				"product_id":   item.ProductID,
			})
			return nil, err
		}
		if product == nil {
			logger.Warn("Cart item references a missing product", map[string]interface{}{
				"cart_item_id": item.ID,
				"product_id":   item.ProductID,
			})
		}
		lines = append(lines, model.CartLine{CartItem: item, Product: product})
	}

	summary := model.NewCartSummary(lines)

	fields := owner.LogFields()
	fields["lines"] = len(lines)
	fields["count"] = summary.Count
	fields["total"] = summary.Total
	logger.Debug("Cart fetched", fields)
	return &summary, nil
}

func (s *cartService) AddToCart(owner model.Owner, productID string, quantity int) (*model.CartLine, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}
	if quantity < 1 {
		quantity = 1
	}

	fields := owner.LogFields()
	fields["product_id"] = productID
	fields["quantity"] = quantity
	logger.Info("Adding item to cart", fields)

	if owner.UserID != nil && *owner.UserID != 0 {
		if err := requireUser(s.userRepo, *owner.UserID); err != nil {
			if !errors.Is(err, ErrUserNotFound) {
				logger.Error("Failed to fetch cart owner", err, fields)
			}
			return nil, err
		}
	}

	product, err := lookupProduct(s.productRepo, productID)
	if err != nil {
		logger.Error("Failed to fetch product", err, fields)
		return nil, err
	}
	if product == nil {
		logger.Warn("Cannot add to cart: product not found", fields)
		return nil, ErrProductNotFound
	}

	item := &model.CartItem{ProductID: productID, Quantity: quantity}
	owner.Apply(item)
	if err := s.cartRepo.AddToCart(item); err != nil {
		logger.Error("Failed to add item to cart", err, fields)
		return nil, err
	}

	logger.Info("Item added to cart", map[string]interface{}{
		"cart_item_id": item.ID,
		"quantity":     item.Quantity,
	})
	return &model.CartLine{CartItem: *item, Product: product}, nil
}

func (s *cartService) UpdateQuantity(cartItemID uint, quantity int) (*model.CartLine, error) {
	if quantity < 1 {
		return nil, ErrInvalidQuantity
	}

	item, err := s.cartRepo.UpdateCartItemQuantity(cartItemID, quantity)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrCartItemNotFound
		}
		logger.Error("Failed to update cart item", err, map[string]interface{}{
			"cart_item_id": cartItemID,
		})
		return nil, err
	}

	product, err := lookupProduct(s.productRepo, item.ProductID)
	if err != nil {
		return nil, err
	}

	logger.Info("Cart item updated", map[string]interface{}{
		"cart_item_id": cartItemID,
		"quantity":     quantity,
	})
	return &model.CartLine{CartItem: *item, Product: product}, nil
}

func (s *cartService) RemoveItem(cartItemID uint) error {
	removed, err := s.cartRepo.RemoveCartItem(cartItemID)
	if err != nil {
		logger.Error("Failed to remove cart item", err, map[string]interface{}{
			"cart_item_id": cartItemID,
		})
		return err
	}
	if !removed {
		return ErrCartItemNotFound
	}

	logger.Info("Cart item removed", map[string]interface{}{
		"cart_item_id": cartItemID,
	})
	return nil
}

func (s *cartService) ClearCart(owner model.Owner) (int64, error) {
	removed, err := s.cartRepo.ClearCart(owner)
	if err != nil {
		if !errors.Is(err, model.ErrOwnerRequired) && !errors.Is(err, model.ErrOwnerAmbiguous) {
			logger.Error("Failed to clear cart", err, owner.LogFields())
		}
		return 0, err
	}

	fields := owner.LogFields()
	fields["removed"] = removed
	logger.Info("Cart cleared", fields)
	return removed, nil
}
