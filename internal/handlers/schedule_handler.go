package handlers

import (
	"net/http"

	"clinic-backend/internal/models"
	"clinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// GetSchedule: GET /schedules/:id
func (h *Handler) GetSchedule(c *gin.Context) {
	id, err := utils.ParseID("id", c.Param("id"))
	if err != nil {
		utils.APIError(c, err)
		return
	}

	schedule, err := h.svc.Schedules.Get(c.Request.Context(), id)
	if err != nil {
		utils.APIError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Detail jadwal", schedule)
}

// ListSchedules: GET /schedules?business_area_id=&date=YYYY-MM-DD&tz=
func (h *Handler) ListSchedules(c *gin.Context) {
	businessAreaID, err := utils.ParseOptionalID("business_area_id", c.Query("business_area_id"))
	if err != nil {
		utils.APIError(c, err)
		return
	}

	schedules, err := h.svc.Schedules.List(c.Request.Context(), businessAreaID, c.Query("date"), c.Query("tz"))
	if err != nil {
		utils.APIError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Daftar jadwal", schedules)
}

// CreateSchedule: POST /schedules
func (h *Handler) CreateSchedule(c *gin.Context) {
	var input models.CreateScheduleInput
	if !bindJSON(c, &input) {
		return
	}

	schedule, err := h.svc.Schedules.Create(c.Request.Context(), input)
	if err != nil {
		utils.APIError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusCreated, true, "Jadwal berhasil dibuat", schedule)
}

// SubtractQuota: PATCH /schedules/:id
func (h *Handler) SubtractQuota(c *gin.Context) {
	id, err := utils.ParseID("id", c.Param("id"))
	if err != nil {
		utils.APIError(c, err)
		return
	}

	var input models.SubtractQuotaInput
	if !bindJSON(c, &input) {
		return
	}

	schedule, err := h.svc.Schedules.SubtractQuota(c.Request.Context(), id, *input.QuantityToSubtract)
	if err != nil {
		utils.APIError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Kuota berhasil dikurangi", schedule)
}

// ChangeService: PATCH /schedules/:id/change-service
func (h *Handler) ChangeService(c *gin.Context) {
	id, err := utils.ParseID("id", c.Param("id"))
	if err != nil {
		utils.APIError(c, err)
		return
	}

	var input models.ChangeServiceInput
	if !bindJSON(c, &input) {
		return
	}

	scheduleID, err := h.svc.Schedules.ChangeService(c.Request.Context(), id, input.NewServiceID)
	if err != nil {
		utils.APIError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Layanan jadwal berhasil diganti", gin.H{"id": scheduleID})
}
