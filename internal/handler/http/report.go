package http

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/staffly/ems-backend-go/internal/domain/report"
	"github.com/staffly/ems-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	GetReport(w http.ResponseWriter, r *http.Request)
	ExportEmployees(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.Service
}

func NewReportHandler(reportService report.Service) ReportHandler {
	return &reportHandlerImpl{reportService: reportService}
}

// GetReport implements ReportHandler.
func (h *reportHandlerImpl) GetReport(w http.ResponseWriter, r *http.Request) {
	result, err := h.reportService.GetReport(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportEmployees implements ReportHandler: streams the workbook built by the
// report service.
func (h *reportHandlerImpl) ExportEmployees(w http.ResponseWriter, r *http.Request) {
	buf, filename, err := h.reportService.ExportEmployees(r.Context())
	if err != nil {
		slog.Error("ExportEmployees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("ExportEmployees write error", "error", err)
	}
}
