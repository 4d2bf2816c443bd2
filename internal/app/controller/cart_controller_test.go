package controller

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartController_AddMergesLines(t *testing.T) {
	api := setupTestAPI(t)

	code, response := api.do(t, http.MethodPost, "/api/v1/cart", map[string]interface{}{
		"user_id":    api.user.ID,
		"product_id": "f1",
		"quantity":   2,
	})
	require.Equal(t, http.StatusCreated, code)
	first := objectField(t, response, "cart_item")
	assert.EqualValues(t, 2, first["quantity"])
	assert.Equal(t, "Velvet Sofa", objectField(t, first, "product")["title"])

	code, response = api.do(t, http.MethodPost, "/api/v1/cart", map[string]interface{}{
		"user_id":    api.user.ID,
		"product_id": "f1",
		"quantity":   1,
	})
	require.Equal(t, http.StatusCreated, code)
	merged := objectField(t, response, "cart_item")
	assert.Equal(t, first["id"], merged["id"])
	assert.EqualValues(t, 3, merged["quantity"])

	code, response = api.do(t, http.MethodPost, "/api/v1/cart", map[string]interface{}{
		"user_id":    api.user.ID,
		"product_id": "f2",
	})
	require.Equal(t, http.StatusCreated, code)
	assert.EqualValues(t, 1, objectField(t, response, "cart_item")["quantity"])

	code, response = api.do(t, http.MethodGet, fmt.Sprintf("/api/v1/cart?user_id=%d", api.user.ID), nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, listField(t, response, "items"), 2)
	assert.EqualValues(t, 3*129900+64900, response["total"])
	assert.Equal(t, "4546.00", response["total_formatted"])
	assert.EqualValues(t, 4, response["count"])
}

func TestCartController_GuestCartIsSeparate(t *testing.T) {
	api := setupTestAPI(t)

	code, _ := api.do(t, http.MethodPost, "/api/v1/cart", map[string]interface{}{
		"session_id": "guest-42",
		"product_id": "f3",
		"quantity":   4,
	})
	require.Equal(t, http.StatusCreated, code)

	code, response := api.do(t, http.MethodGet, "/api/v1/cart?session_id=guest-42", nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 4*4900, response["total"])

	code, response = api.do(t, http.MethodGet, fmt.Sprintf("/api/v1/cart?user_id=%d", api.user.ID), nil)
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, listField(t, response, "items"))
	assert.Equal(t, "0.00", response["total_formatted"])

	code, response = api.do(t, http.MethodDelete, "/api/v1/cart?session_id=guest-42", nil)
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 1, response["removed"])
}

func TestCartController_OwnerValidation(t *testing.T) {
	api := setupTestAPI(t)

	code, response := api.do(t, http.MethodGet, "/api/v1/cart", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION_OWNER_REQUIRED", response["error"])

	code, response = api.do(t, http.MethodGet, "/api/v1/cart?user_id=1&session_id=abc", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION_OWNER_REQUIRED", response["error"])

	code, response = api.do(t, http.MethodGet, "/api/v1/cart?user_id=abc", nil)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION_INVALID_ID", response["error"])

	code, response = api.do(t, http.MethodPost, "/api/v1/cart", map[string]interface{}{
		"product_id": "f1",
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION_OWNER_REQUIRED", response["error"])
}

func TestCartController_AddErrors(t *testing.T) {
	api := setupTestAPI(t)

	code, response := api.do(t, http.MethodPost, "/api/v1/cart", map[string]interface{}{
		"user_id":    api.user.ID,
		"product_id": "f404",
	})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "PRODUCT_NOT_FOUND", response["error"])

	code, response = api.do(t, http.MethodPost, "/api/v1/cart", map[string]interface{}{
		"user_id":    999,
		"product_id": "f1",
	})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "USER_NOT_FOUND", response["error"])

	code, response = api.do(t, http.MethodPost, "/api/v1/cart", map[string]interface{}{
		"user_id": api.user.ID,
	})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION_INVALID_INPUT", response["error"])
}

func TestCartController_UpdateAndRemove(t *testing.T) {
	api := setupTestAPI(t)

	code, response := api.do(t, http.MethodPost, "/api/v1/cart", map[string]interface{}{
		"user_id":    api.user.ID,
		"product_id": "f2",
	})
	require.Equal(t, http.StatusCreated, code)
	itemPath := fmt.Sprintf("/api/v1/cart/%v", objectField(t, response, "cart_item")["id"])

	code, response = api.do(t, http.MethodPatch, itemPath, map[string]interface{}{"quantity": 5})
	require.Equal(t, http.StatusOK, code)
	assert.EqualValues(t, 5, objectField(t, response, "cart_item")["quantity"])

	code, response = api.do(t, http.MethodPatch, itemPath, map[string]interface{}{"quantity": 0})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION_INVALID_QUANTITY", response["error"])

	code, response = api.do(t, http.MethodPatch, itemPath, map[string]interface{}{})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION_INVALID_QUANTITY", response["error"])

	code, response = api.do(t, http.MethodPatch, "/api/v1/cart/9999", map[string]interface{}{"quantity": 2})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "CART_ITEM_NOT_FOUND", response["error"])

	code, response = api.do(t, http.MethodPatch, "/api/v1/cart/abc", map[string]interface{}{"quantity": 2})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "VALIDATION_INVALID_ID", response["error"])

	code, _ = api.do(t, http.MethodDelete, itemPath, nil)
	assert.Equal(t, http.StatusOK, code)

	code, response = api.do(t, http.MethodDelete, itemPath, nil)
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "CART_ITEM_NOT_FOUND", response["error"])
}
