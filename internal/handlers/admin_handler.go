package handlers

import (
	"net/http"

	"clinic-backend/internal/models"
	"clinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// GetDashboardStats: GET /dashboard?business_area_id=
func (h *Handler) GetDashboardStats(c *gin.Context) {
	businessAreaID, err := utils.ParseOptionalID("business_area_id", c.Query("business_area_id"))
	if err != nil {
		utils.APIError(c, err)
		return
	}

	stats, err := h.svc.Dashboard.Stats(c.Request.Context(), businessAreaID)
	if err != nil {
		utils.APIError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Statistik dashboard", stats)
}

// ListBusinessAreas: GET /business-areas
func (h *Handler) ListBusinessAreas(c *gin.Context) {
	areas, err := h.svc.Catalog.ListBusinessAreas(c.Request.Context())
	if err != nil {
		utils.APIError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Daftar klinik", areas)
}

// CreateBusinessArea: POST /business-areas (khusus admin)
func (h *Handler) CreateBusinessArea(c *gin.Context) {
	var input models.CreateBusinessAreaInput
	if !bindJSON(c, &input) {
		return
	}

	area, err := h.svc.Catalog.CreateBusinessArea(c.Request.Context(), input)
	if err != nil {
		utils.APIError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusCreated, true, "Klinik berhasil ditambahkan", area)
}
