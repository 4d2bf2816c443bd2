package controller

import (
	"net/http"
	"strings"

	"github.com/featherwood/featherwood-backend/internal/app/service"
	apperrors "github.com/featherwood/featherwood-backend/internal/errors"
	"github.com/featherwood/featherwood-backend/internal/middleware"
	"github.com/featherwood/featherwood-backend/pkg/util"
	"github.com/gin-gonic/gin"
)

type CartController struct {
	cartService service.CartService
}

func NewCartController(cartService service.CartService) *CartController {
	return &CartController{
		cartService: cartService,
	}
}

type AddToCartRequest struct {
	OwnerRequest
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type UpdateCartRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// GetCart returns the owner's cart with live totals
// GET /api/v1/cart?user_id=|session_id=
func (ctrl *CartController) GetCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	owner, err := ownerFromQuery(c)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, err.Error())
		return
	}

	summary, err := ctrl.cartService.GetCart(owner)
	if err != nil {
		respondError(c, err, "cart")
		return
	}

	log.Debug("Cart fetched", map[string]interface{}{
		"lines": len(summary.Items),
		"total": summary.Total,
	})

	c.JSON(http.StatusOK, gin.H{
		"items":           summary.Items,
		"count":           summary.Count,
		"total":           summary.Total,
		"total_formatted": util.FormatMinorUnits(summary.Total),
	})
}

// AddToCart adds a product or increases an existing line
// POST /api/v1/cart
func (ctrl *CartController) AddToCart(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid add to cart request", map[string]interface{}{
			"error": err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationInvalidInput, "product_id is required")
		return
	}

	line, err := ctrl.cartService.AddToCart(req.Owner(), strings.TrimSpace(req.ProductID), req.Quantity)
	if err != nil {
		respondError(c, err, "cart")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"cart_item": line,
	})
}

// UpdateCartItem sets a line's quantity
// PATCH /api/v1/cart/:id
func (ctrl *CartController) UpdateCartItem(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, err := parseUintParam(c, "id")
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, err.Error())
		return
	}

	var req UpdateCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Invalid update cart request", map[string]interface{}{
			"cart_item_id": id,
			"error":        err.Error(),
		})
		apperrors.BadRequest(c, apperrors.ValidationQuantity, "quantity is required")
		return
	}

	line, err := ctrl.cartService.UpdateQuantity(id, *req.Quantity)
	if err != nil {
		respondError(c, err, "cart item")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"cart_item": line,
	})
}

// RemoveCartItem
// DELETE /api/v1/cart/:id
func (ctrl *CartController) RemoveCartItem(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, err.Error())
		return
	}

	if err := ctrl.cartService.RemoveItem(id); err != nil {
		respondError(c, err, "cart item")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Item removed from cart",
	})
}

// ClearCart removes every line for the owner
// DELETE /api/v1/cart?user_id=|session_id=
func (ctrl *CartController) ClearCart(c *gin.Context) {
	owner, err := ownerFromQuery(c)
	if err != nil {
		apperrors.BadRequest(c, apperrors.ValidationInvalidID, err.Error())
		return
	}

	removed, err := ctrl.cartService.ClearCart(owner)
	if err != nil {
		respondError(c, err, "cart")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cart cleared",
		"removed": removed,
	})
}

