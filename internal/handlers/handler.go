package handlers

import (
	"net/http"

	"clinic-backend/internal/services"
	"clinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Handler menerjemahkan request HTTP ke pemanggilan service
type Handler struct {
	svc *services.Services
}

func New(svc *services.Services) *Handler {
	return &Handler{svc: svc}
}

// bindJSON: kalau body tidak valid, response 400 langsung dikirim
func bindJSON(c *gin.Context, dst interface{}) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		utils.APIResponse(c, http.StatusBadRequest, false, "Input tidak valid", err.Error())
		return false
	}
	return true
}
