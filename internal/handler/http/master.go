package http

import (
	"net/http"

	"github.com/staffly/ems-backend-go/internal/domain/employee"
	"github.com/staffly/ems-backend-go/internal/handler/http/response"
)

// MasterHandler serves the static catalogs: departments and experience
// levels. Both are read-only.
type MasterHandler interface {
	ListDepartments(w http.ResponseWriter, r *http.Request)
	ListExperienceLevels(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	workforceService employee.Service
}

func NewMasterHandler(workforceService employee.Service) MasterHandler {
	return &masterHandlerImpl{workforceService: workforceService}
}

// ListDepartments implements MasterHandler.
func (h *masterHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	response.Success(w, h.workforceService.Departments())
}

// ListExperienceLevels implements MasterHandler.
func (h *masterHandlerImpl) ListExperienceLevels(w http.ResponseWriter, r *http.Request) {
	response.Success(w, employee.Levels)
}
