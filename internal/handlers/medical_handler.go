package handlers

import (
	"net/http"

	"clinic-backend/internal/models"
	"clinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ListMedicalRecords: GET /medical-records?schedule_id= (wajib)
func (h *Handler) ListMedicalRecords(c *gin.Context) {
	scheduleID, err := utils.ParseID("schedule_id", c.Query("schedule_id"))
	if err != nil {
		utils.APIError(c, err)
		return
	}

	records, err := h.svc.Records.ListBySchedule(c.Request.Context(), scheduleID)
	if err != nil {
		utils.APIError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Daftar rekam medis", records)
}

// GetMedicalRecord: GET /medical-records/:id
func (h *Handler) GetMedicalRecord(c *gin.Context) {
	id, err := utils.ParseID("id", c.Param("id"))
	if err != nil {
		utils.APIError(c, err)
		return
	}

	record, err := h.svc.Records.Get(c.Request.Context(), id)
	if err != nil {
		utils.APIError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Detail rekam medis", record)
}

// UpdateVitals: PATCH /medical-records/:id, tanda vital sebelum/sesudah tindakan
func (h *Handler) UpdateVitals(c *gin.Context) {
	id, err := utils.ParseID("id", c.Param("id"))
	if err != nil {
		utils.APIError(c, err)
		return
	}

	var input models.UpdateVitalsInput
	if !bindJSON(c, &input) {
		return
	}

	record, err := h.svc.Records.UpdateVitals(c.Request.Context(), id, input)
	if err != nil {
		utils.APIError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Rekam medis berhasil diperbarui", record)
}
