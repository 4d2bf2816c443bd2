package memory

import (
	"time"

	"github.com/featherwood/featherwood-backend/internal/app/model"
	"github.com/featherwood/featherwood-backend/internal/app/repository"
)

func (s *Store) AddToCart(item *model.CartItem) error {
	owner := model.OwnerOf(*item)
	if err := owner.Validate(); err != nil {
		return err
	}
	owner.Apply(item)
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	line := cartLineKeyOf(*item)
	if id, ok := s.cartLines[line]; ok {
		existing, _ := s.cartItems.get(id)
		existing.Quantity += item.Quantity
		existing.UpdatedAt = now
		*item = cloneCartItem(*existing)
		return nil
	}

	s.cartItemSeq++
	item.ID = s.cartItemSeq
	item.CreatedAt = now
	item.UpdatedAt = now
	s.cartItems.insert(cloneCartItem(*item))
	s.cartLines[line] = item.ID
	return nil
}

func (s *Store) FindCartItemByID(id uint) (*model.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, ok := s.cartItems.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	out := cloneCartItem(*item)
	return &out, nil
}

func (s *Store) ListCartItems(owner model.Owner) ([]model.CartItem, error) {
	if err := owner.Validate(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	items := []model.CartItem{}
	for _, item := range s.cartItems.rows {
		if owner.Owns(item) {
			items = append(items, cloneCartItem(item))
		}
	}
	return items, nil
}

func (s *Store) UpdateCartItemQuantity(id uint, quantity int) (*model.CartItem, error) {
	if quantity < 1 {
		return nil, repository.ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.cartItems.get(id)
	if !ok {
		return nil, repository.ErrNotFound
	}
	item.Quantity = quantity
	item.UpdatedAt = time.Now()
	out := cloneCartItem(*item)
	return &out, nil
}

func (s *Store) RemoveCartItem(id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed, ok := s.cartItems.remove(id)
	if !ok {
		return false, nil
	}
	delete(s.cartLines, cartLineKeyOf(removed))
	return true, nil
}

func (s *Store) ClearCart(owner model.Owner) (int64, error) {
	if err := owner.Validate(); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := s.cartItems.removeWhere(owner.Owns)
	for _, item := range removed {
		delete(s.cartLines, cartLineKeyOf(item))
	}
	return int64(len(removed)), nil
}

func (s *Store) AddToWishlist(item *model.WishlistItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.wishlistItems.get(wishlistKeyOf(*item)); ok {
		*item = *existing
		return nil
	}

	s.wishlistItemSeq++
	item.ID = s.wishlistItemSeq
	item.CreatedAt = time.Now()
	s.wishlistItems.insert(*item)
	return nil
}

func (s *Store) ListWishlistItems(userID uint) ([]model.WishlistItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := []model.WishlistItem{}
	for _, item := range s.wishlistItems.rows {
		if item.UserID == userID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (s *Store) RemoveFromWishlist(userID uint, productID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.wishlistItems.remove(wishlistKey{userID: userID, productID: productID})
	return ok, nil
}

func (s *Store) ToggleWishlist(userID uint, productID string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := wishlistKey{userID: userID, productID: productID}
	if _, ok := s.wishlistItems.remove(key); ok {
		return false, nil
	}

	s.wishlistItemSeq++
	s.wishlistItems.insert(model.WishlistItem{
		ID:        s.wishlistItemSeq,
		UserID:    userID,
		ProductID: productID,
		CreatedAt: time.Now(),
	})
	return true, nil
}

func (s *Store) IsInWishlist(userID uint, productID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.wishlistItems.has(wishlistKey{userID: userID, productID: productID}), nil
}
