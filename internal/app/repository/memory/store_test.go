package memory_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/featherwood/featherwood-backend/internal/app/model"
	"github.com/featherwood/featherwood-backend/internal/app/repository"
	"github.com/featherwood/featherwood-backend/internal/app/repository/memory"
	"github.com/featherwood/featherwood-backend/internal/app/repository/repositorytest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_Contract(t *testing.T) {
	repositorytest.RunStorageContract(t, func(t *testing.T) repository.Storage {
		return memory.NewStore()
	})
}

func TestStore_ReturnsCopies(t *testing.T) {
	store := memory.NewStore()
	product := &model.Product{Title: "Sofa", Slug: "sofa", Category: "Living Room", Tags: model.StringList{"a"}}
	require.NoError(t, store.CreateProduct(product))

	product.Tags[0] = "mutated"
	found, err := store.FindProductBySlug("sofa")
	require.NoError(t, err)
	assert.Equal(t, "a", found.Tags[0])

	found.Title = "Changed"
	found.Tags[0] = "changed"
	again, err := store.FindProductBySlug("sofa")
	require.NoError(t, err)
	assert.Equal(t, "Sofa", again.Title)
	assert.Equal(t, "a", again.Tags[0])
}

func TestStore_IDsNotReusedAfterDelete(t *testing.T) {
	store := memory.NewStore()
	owner := model.SessionOwner("guest")

	first := &model.CartItem{ProductID: "f1", Quantity: 1}
	owner.Apply(first)
	require.NoError(t, store.AddToCart(first))

	removed, err := store.RemoveCartItem(first.ID)
	require.NoError(t, err)
	require.True(t, removed)

	second := &model.CartItem{ProductID: "f1", Quantity: 1}
	owner.Apply(second)
	require.NoError(t, store.AddToCart(second))
	assert.Greater(t, second.ID, first.ID)
}

func TestStore_ConcurrentCartAdds(t *testing.T) {
	store := memory.NewStore()
	owner := model.UserOwner(1)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			item := &model.CartItem{ProductID: fmt.Sprintf("f%d", i%5), Quantity: 1}
			owner.Apply(item)
			assert.NoError(t, store.AddToCart(item))
		}(i)
	}
	wg.Wait()

	items, err := store.ListCartItems(owner)
	require.NoError(t, err)
	require.Len(t, items, 5)
	for _, item := range items {
		assert.Equal(t, 10, item.Quantity)
	}
}

func TestStore_CartLookupsAfterRemovals(t *testing.T) {
	store := memory.NewStore()
	owner := model.SessionOwner("guest")

	var ids []uint
	for i := 0; i < 5; i++ {
		item := &model.CartItem{ProductID: fmt.Sprintf("f%d", i), Quantity: 1}
		owner.Apply(item)
		require.NoError(t, store.AddToCart(item))
		ids = append(ids, item.ID)
	}

	removed, err := store.RemoveCartItem(ids[1])
	require.NoError(t, err)
	require.True(t, removed)

	last, err := store.FindCartItemByID(ids[4])
	require.NoError(t, err)
	assert.Equal(t, "f4", last.ProductID)

	updated, err := store.UpdateCartItemQuantity(ids[3], 7)
	require.NoError(t, err)
	assert.Equal(t, "f3", updated.ProductID)

	// a removed line starts over instead of merging into a stale row
	again := &model.CartItem{ProductID: "f1", Quantity: 2}
	owner.Apply(again)
	require.NoError(t, store.AddToCart(again))
	assert.Equal(t, 2, again.Quantity)
	assert.NotEqual(t, ids[1], again.ID)

	cleared, err := store.ClearCart(owner)
	require.NoError(t, err)
	assert.EqualValues(t, 5, cleared)

	_, err = store.FindCartItemByID(ids[0])
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
