package seed

import (
	"testing"

	"github.com/featherwood/featherwood-backend/internal/app/model"
	"github.com/featherwood/featherwood-backend/internal/app/repository/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportProducts(t *testing.T) {
	store := memory.NewStore()
	require.NoError(t, store.CreateProduct(&model.Product{Title: "Cane Chair", Slug: "cane-chair", Category: "Living Room", Price: 799900}))

	result, err := ImportProducts(store, []model.Product{
		{Title: "Teak Console Table", Category: "Living Room", Price: 1849950},
		{Title: "Cane Chair", Category: "Living Room", Price: 699900},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Skipped)

	console, err := store.FindProductBySlug("teak-console-table")
	require.NoError(t, err)
	assert.Equal(t, "f2", console.ID)

	chair, err := store.FindProductBySlug("cane-chair")
	require.NoError(t, err)
	assert.Equal(t, int64(799900), chair.Price)
}
