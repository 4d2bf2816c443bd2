package controller

import (
	"net/http"
	"strings"

	"github.com/featherwood/featherwood-backend/internal/app/service"
	apperrors "github.com/featherwood/featherwood-backend/internal/errors"
	"github.com/featherwood/featherwood-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

type WishlistController struct {
	wishlistService service.WishlistService
}

func NewWishlistController(wishlistService service.WishlistService) *WishlistController {
	return &WishlistController{
		wishlistService: wishlistService,
	}
}

type WishlistRequest struct {
	UserID    uint   `json:"user_id" binding:"required"`
	ProductID string `json:"product_id" binding:"required"`
}

func (ctrl *WishlistController) bindWishlistRequest(c *gin.Context) (*WishlistRequest, bool) {
	var req WishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.GetLoggerFromContext(c).Warn("Invalid wishlist request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "user_id and product_id are required")
		return nil, false
	}
	req.ProductID = strings.TrimSpace(req.ProductID)
	return &req, true
}

// pairFromQuery reads user_id and product_id from the query string.
func pairFromQuery(c *gin.Context) (uint, string, bool) {
	userID, err := parseUserIDQuery(c)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, err.Error())
		return 0, "", false
	}
	productID := strings.TrimSpace(c.Query("product_id"))
	if productID == "" {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, "product_id is required")
		return 0, "", false
	}
	return userID, productID, true
}

// GetWishlist returns the user's wishlist joined with products
// GET /api/v1/wishlist?user_id=
func (ctrl *WishlistController) GetWishlist(c *gin.Context) {
	userID, err := parseUserIDQuery(c)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, err.Error())
		return
	}

	items, err := ctrl.wishlistService.GetWishlist(userID)
	if err != nil {
		respondError(c, err, "wishlist")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"items": items,
		"count": len(items),
	})
}

// AddToWishlist is idempotent
// POST /api/v1/wishlist
func (ctrl *WishlistController) AddToWishlist(c *gin.Context) {
	req, ok := ctrl.bindWishlistRequest(c)
	if !ok {
		return
	}

	item, err := ctrl.wishlistService.AddToWishlist(req.UserID, req.ProductID)
	if err != nil {
		respondError(c, err, "wishlist")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"wishlist_item": item,
	})
}

// ToggleWishlist flips membership and reports the new state
// POST /api/v1/wishlist/toggle
func (ctrl *WishlistController) ToggleWishlist(c *gin.Context) {
	req, ok := ctrl.bindWishlistRequest(c)
	if !ok {
		return
	}

	inWishlist, err := ctrl.wishlistService.Toggle(req.UserID, req.ProductID)
	if err != nil {
		respondError(c, err, "wishlist")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"in_wishlist": inWishlist,
	})
}

// RemoveFromWishlist
// DELETE /api/v1/wishlist?user_id=&product_id=
func (ctrl *WishlistController) RemoveFromWishlist(c *gin.Context) {
	userID, productID, ok := pairFromQuery(c)
	if !ok {
		return
	}

	if err := ctrl.wishlistService.RemoveFromWishlist(userID, productID); err != nil {
		respondError(c, err, "wishlist")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Product removed from wishlist",
	})
}

// CheckWishlist
// GET /api/v1/wishlist/check?user_id=&product_id=
func (ctrl *WishlistController) CheckWishlist(c *gin.Context) {
	userID, productID, ok := pairFromQuery(c)
	if !ok {
		return
	}

	inWishlist, err := ctrl.wishlistService.IsInWishlist(userID, productID)
	if err != nil {
		respondError(c, err, "wishlist")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"in_wishlist": inWishlist,
	})
}
