package spreadsheet

import (
	"bytes"
	"testing"
	"time"

	"github.com/featherwood/featherwood-backend/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteLeads(t *testing.T) {
	budget := "5L-10L"
	requests := []model.ConsultationRequest{
		{ID: 2, FullName: "Asha Menon", Email: "asha@example.com", PhoneNumber: "98450 12345", ProjectType: "Kitchen", Description: "Island kitchen", BudgetRange: &budget, Status: model.ConsultationPending, CreatedAt: time.Date(2024, 1, 2, 9, 30, 0, 0, time.UTC)},
		{ID: 1, FullName: "Kabir Shah", Email: "kabir@example.com", PhoneNumber: "99000 11223", ProjectType: "Office", Description: "Small office", Status: model.ConsultationContacted, CreatedAt: time.Date(2024, 1, 1, 18, 0, 0, 0, time.UTC)},
	}

	data, err := WriteLeads(requests)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(LeadsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Full name", rows[0][2])
	assert.Equal(t, []string{"2", "2024-01-02 09:30", "Asha Menon", "asha@example.com", "98450 12345", "Kitchen", "5L-10L", "pending", "Island kitchen"}, rows[1])
	assert.Equal(t, "", rows[2][6])
	assert.Equal(t, "contacted", rows[2][7])
}

func TestWriteLeads_Empty(t *testing.T) {
	data, err := WriteLeads(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(LeadsSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func buildProductWorkbook(t *testing.T, rows [][]interface{}) []byte {
	f := excelize.NewFile()
	defer f.Close()

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &rows[i]))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestReadProducts(t *testing.T) {
	data := buildProductWorkbook(t, [][]interface{}{
		{"Title", "Slug", "Description", "Price", "Category", "Material", "Dimensions", "Color", "In stock", "Featured"},
		{"Teak Console", "", "Hall console", "18499.50", "Living Room", "Teak Wood", "120x40x80", "Walnut", "no", "yes"},
		{"Cane Chair", "cane-chair", "Accent chair", "7,999", "Living Room", "Cane"},
		{"Broken Price", "", "", "cheap", "Office"},
		{"No Category", "", "", "100"},
	})

	products, rejected, err := ReadProducts(data)
	require.NoError(t, err)
	require.Len(t, products, 2)

	assert.Equal(t, "Teak Console", products[0].Title)
	assert.Equal(t, int64(1849950), products[0].Price)
	assert.False(t, products[0].InStock)
	assert.True(t, products[0].IsFeatured)
	assert.Empty(t, products[0].Slug)

	assert.Equal(t, "cane-chair", products[1].Slug)
	assert.Equal(t, int64(799900), products[1].Price)
	assert.True(t, products[1].InStock)
	assert.False(t, products[1].IsFeatured)

	require.Len(t, rejected, 2)
	assert.Equal(t, 4, rejected[0].Row)
	assert.Equal(t, 5, rejected[1].Row)
}

func TestReadProducts_NotAWorkbook(t *testing.T) {
	_, _, err := ReadProducts([]byte("title,price\n"))
	assert.Error(t, err)
}
