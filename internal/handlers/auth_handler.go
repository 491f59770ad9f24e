package handlers

import (
	"net/http"

	"clinic-backend/internal/models"
	"clinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Login: POST /auth/login
func (h *Handler) Login(c *gin.Context) {
	var input models.LoginInput
	if !bindJSON(c, &input) {
		return
	}

	res, err := h.svc.Auth.Login(c.Request.Context(), input)
	if err != nil {
		utils.APIError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Login berhasil", res)
}
