// Package spreadsheet moves catalog and lead data in and out of XLSX
// workbooks for the operations team.
package spreadsheet

import (
	"bytes"
	"context"
	"fmt"

	"github.com/featherwood/featherwood-backend/internal/app/model"
	"github.com/xuri/excelize/v2"
)

const (
	LeadsSheet      = "Leads"
	ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var leadHeaders = []interface{}{
	"ID", "Received", "Full name", "Email", "Phone", "Project type", "Budget", "Status", "Description",
}

// WriteLeads renders consultation requests into a single-sheet workbook,
// one row per request in the given order.
func WriteLeads(requests []model.ConsultationRequest) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), LeadsSheet); err != nil {
		return nil, fmt.Errorf("failed to name sheet: %w", err)
	}
	if err := f.SetSheetRow(LeadsSheet, "A1", &leadHeaders); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, r := range requests {
		budget := ""
		if r.BudgetRange != nil {
			budget = *r.BudgetRange
		}
		row := []interface{}{
			r.ID,
			r.CreatedAt.UTC().Format("2006-01-02 15:04"),
			r.FullName,
			r.Email,
			r.PhoneNumber,
			r.ProjectType,
			budget,
			string(r.Status),
			r.Description,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(LeadsSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	if err := f.SetPanes(LeadsSheet, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"}); err != nil {
		return nil, fmt.Errorf("failed to freeze header: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to encode workbook: %w", err)
	}
	return buf.Bytes(), nil
}

type LeadSource interface {
	ListRequests() ([]model.ConsultationRequest, error)
}

// DocumentWriter stores a finished workbook at a path or s3:// location.
type DocumentWriter interface {
	Write(ctx context.Context, location, contentType string, data []byte) error
}

// ExportLeads writes every consultation request to location and returns
// how many rows were exported.
func ExportLeads(ctx context.Context, source LeadSource, dest DocumentWriter, location string) (int, error) {
	requests, err := source.ListRequests()
	if err != nil {
		return 0, fmt.Errorf("failed to list consultation requests: %w", err)
	}
	data, err := WriteLeads(requests)
	if err != nil {
		return 0, err
	}
	if err := dest.Write(ctx, location, ContentTypeXLSX, data); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", location, err)
	}
	return len(requests), nil
}
