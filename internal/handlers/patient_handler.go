package handlers

import (
	"net/http"

	"clinic-backend/internal/models"
	"clinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AddPatient: POST /patients
func (h *Handler) AddPatient(c *gin.Context) {
	var input models.CreatePatientInput
	if !bindJSON(c, &input) {
		return
	}

	patient, err := h.svc.Catalog.CreatePatient(c.Request.Context(), input)
	if err != nil {
		utils.APIError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusCreated, true, "Pasien berhasil ditambahkan", patient)
}

// ListPatients: GET /patients?q=
func (h *Handler) ListPatients(c *gin.Context) {
	patients, err := h.svc.Catalog.ListPatients(c.Request.Context(), c.Query("q"))
	if err != nil {
		utils.APIError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Daftar pasien", patients)
}
