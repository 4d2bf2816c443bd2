package service

import (
	"github.com/featherwood/featherwood-backend/internal/app/model"
	"github.com/featherwood/featherwood-backend/internal/app/repository"
	"github.com/featherwood/featherwood-backend/pkg/logger"
)

type WishlistService interface {
	GetWishlist(userID uint) ([]model.WishlistLine, error)
	// AddToWishlist is idempotent and returns the existing line on repeat.
	AddToWishlist(userID uint, productID string) (*model.WishlistLine, error)
	RemoveFromWishlist(userID uint, productID string) error
	// Toggle flips membership and reports whether the product is now in
	// the wishlist.
	Toggle(userID uint, productID string) (bool, error)
	IsInWishlist(userID uint, productID string) (bool, error)
}

type wishlistService struct {
	wishlistRepo repository.WishlistRepository
	productRepo  repository.ProductRepository
	userRepo     repository.UserRepository
}

func NewWishlistService(
	wishlistRepo repository.WishlistRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
) WishlistService {
	return &wishlistService{
		wishlistRepo: wishlistRepo,
		productRepo:  productRepo,
		userRepo:     userRepo,
	}
}

func (s *wishlistService) GetWishlist(userID uint) ([]model.WishlistLine, error) {
	items, err := s.wishlistRepo.ListWishlistItems(userID)
	if err != nil {
		logger.Error("Failed to fetch wishlist", err, map[string]interface{}{
			"user_id": userID,
		})
		return nil, err
	}

	lines := make([]model.WishlistLine, 0, len(items))
	for _, item := range items {
		product, err := lookupProduct(s.productRepo, item.ProductID)
		if err != nil {
			return nil, err
		}
		lines = append(lines, model.WishlistLine{WishlistItem: item, Product: product})
	}
	return lines, nil
}

func (s *wishlistService) AddToWishlist(userID uint, productID string) (*model.WishlistLine, error) {
	fields := map[string]interface{}{
		"user_id":    userID,
		"product_id": productID,
	}
	logger.Info("Adding product to wishlist", fields)

	if err := requireUser(s.userRepo, userID); err != nil {
		return nil, err
	}
	product, err := lookupProduct(s.productRepo, productID)
	if err != nil {
		logger.Error("Failed to fetch product", err, fields)
		return nil, err
	}
	if product == nil {
		logger.Warn("Cannot add to wishlist: product not found", fields)
		return nil, ErrProductNotFound
	}

	item := &model.WishlistItem{UserID: userID, ProductID: productID}
	if err := s.wishlistRepo.AddToWishlist(item); err != nil {
		logger.Error("Failed to add product to wishlist", err, fields)
		return nil, err
	}
	return &model.WishlistLine{WishlistItem: *item, Product: product}, nil
}

func (s *wishlistService) RemoveFromWishlist(userID uint, productID string) error {
	removed, err := s.wishlistRepo.RemoveFromWishlist(userID, productID)
	if err != nil {
		logger.Error("Failed to remove product from wishlist", err, map[string]interface{}{
			"user_id":    userID,
			"product_id": productID,
		})
		return err
	}
	if !removed {
		return ErrWishlistItemNotFound
	}

	logger.Info("Product removed from wishlist", map[string]interface{}{
		"user_id":    userID,
		"product_id": productID,
	})
	return nil
}

func (s *wishlistService) Toggle(userID uint, productID string) (bool, error) {
	fields := map[string]interface{}{
		"user_id":    userID,
		"product_id": productID,
	}

	if err := requireUser(s.userRepo, userID); err != nil {
		return false, err
	}
	product, err := lookupProduct(s.productRepo, productID)
	if err != nil {
		logger.Error("Failed to fetch product", err, fields)
		return false, err
	}
	if product == nil {
		// a dangling entry can still be toggled off, never on
		removed, err := s.wishlistRepo.RemoveFromWishlist(userID, productID)
		if err != nil {
			logger.Error("Failed to remove product from wishlist", err, fields)
			return false, err
		}
		if !removed {
			return false, ErrProductNotFound
		}
		return false, nil
	}

	in, err := s.wishlistRepo.ToggleWishlist(userID, productID)
	if err != nil {
		logger.Error("Failed to toggle wishlist", err, fields)
		return false, err
	}

	fields["in_wishlist"] = in
	logger.Info("Wishlist toggled", fields)
	return in, nil
}

func (s *wishlistService) IsInWishlist(userID uint, productID string) (bool, error) {
	in, err := s.wishlistRepo.IsInWishlist(userID, productID)
	if err != nil {
		logger.Error("Failed to check wishlist", err, map[string]interface{}{
			"user_id":    userID,
			"product_id": productID,
		})
		return false, err
	}
	return in, nil
}
