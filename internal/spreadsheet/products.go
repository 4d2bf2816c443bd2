package spreadsheet

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/featherwood/featherwood-backend/internal/app/model"
	"github.com/featherwood/featherwood-backend/pkg/util"
	"github.com/xuri/excelize/v2"
)

// Product sheet columns. The first row is a header and is skipped.
const (
	colTitle = iota
	colSlug
	colDescription
	colPrice
	colCategory
	colMaterial
	colDimensions
	colColor
	colInStock
	colFeatured
	productColumns
)

// RowError reports a product row that could not be imported.
type RowError struct {
	Row    int
	Reason string
}

func (e RowError) Error() string {
	return fmt.Sprintf("row %d: %s", e.Row, e.Reason)
}

// ReadProducts parses the first sheet of an XLSX workbook into products.
// Prices are in major units ("1299.00"). Rows missing a title, category
// or valid price are returned as RowErrors; slugs are left empty when
// the cell is blank.
func ReadProducts(data []byte) ([]model.Product, []RowError, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, nil, fmt.Errorf("no sheets found in XLSX file")
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) < 2 {
		return nil, nil, fmt.Errorf("no data found in XLSX file")
	}

	var (
		products []model.Product
		rejected []RowError
	)
	for i, row := range rows[1:] {
		rowNumber := i + 2
		if len(row) < productColumns {
			row = append(row, make([]string, productColumns-len(row))...)
		}
		cell := func(col int) string { return strings.TrimSpace(row[col]) }

		if cell(colTitle) == "" && cell(colPrice) == "" {
			continue
		}
		if cell(colTitle) == "" {
			rejected = append(rejected, RowError{Row: rowNumber, Reason: "title is required"})
			continue
		}
		if cell(colCategory) == "" {
			rejected = append(rejected, RowError{Row: rowNumber, Reason: "category is required"})
			continue
		}
		price, err := util.ParseMajorUnits(cell(colPrice))
		if err != nil || price < 0 {
			rejected = append(rejected, RowError{Row: rowNumber, Reason: "price must be a non-negative amount"})
			continue
		}

		products = append(products, model.Product{
			Title:       cell(colTitle),
			Slug:        cell(colSlug),
			Description: cell(colDescription),
			Price:       price,
			Category:    cell(colCategory),
			Material:    cell(colMaterial),
			Dimensions:  cell(colDimensions),
			Color:       cell(colColor),
			InStock:     parseFlag(cell(colInStock), true),
			IsFeatured:  parseFlag(cell(colFeatured), false),
		})
	}
	return products, rejected, nil
}

// parseFlag accepts the usual spreadsheet spellings of a boolean.
func parseFlag(raw string, fallback bool) bool {
	switch strings.ToLower(raw) {
	case "yes", "y":
		return true
	case "no", "n":
		return false
	}
	if v, err := strconv.ParseBool(raw); err == nil {
		return v
	}
	return fallback
}
