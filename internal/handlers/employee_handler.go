package handlers

import (
	"net/http"

	"clinic-backend/internal/models"
	"clinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ListEmployeeTitles: GET /employee-titles?business_area_id=
func (h *Handler) ListEmployeeTitles(c *gin.Context) {
	businessAreaID, err := utils.ParseOptionalID("business_area_id", c.Query("business_area_id"))
	if err != nil {
		utils.APIError(c, err)
		return
	}

	titles, err := h.svc.Employees.ListTitles(c.Request.Context(), businessAreaID)
	if err != nil {
		utils.APIError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Daftar jabatan", titles)
}

// ListEmployees: GET /employees?q=
func (h *Handler) ListEmployees(c *gin.Context) {
	employees, err := h.svc.Employees.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		utils.APIError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Daftar pegawai", employees)
}

// GetEmployee: GET /employees/:nip
func (h *Handler) GetEmployee(c *gin.Context) {
	employee, err := h.svc.Employees.Get(c.Request.Context(), c.Param("nip"))
	if err != nil {
		utils.APIError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Detail pegawai", employee)
}

// CreateEmployee: POST /employees
func (h *Handler) CreateEmployee(c *gin.Context) {
	var input models.CreateEmployeeInput
	if !bindJSON(c, &input) {
		return
	}

	employee, err := h.svc.Employees.Create(c.Request.Context(), input)
	if err != nil {
		utils.APIError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusCreated, true, "Pegawai berhasil ditambahkan", employee)
}
