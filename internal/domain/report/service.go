package report

import (
	"bytes"
	"context"
)

type Service interface {
	GetReport(ctx context.Context) (*ReportResponse, error)
	// ExportEmployees renders the current employee collection as an Excel
	// workbook. Returns the file content and a suggested filename.
	ExportEmployees(ctx context.Context) (*bytes.Buffer, string, error)
}
