package handlers

import (
	"net/http"

	"clinic-backend/internal/apperror"
	"clinic-backend/internal/middleware"
	"clinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// Me: GET /auth/me, profil user dari token
func (h *Handler) Me(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == 0 {
		utils.APIError(c, apperror.Unauthorized("Token tidak ditemukan"))
		return
	}

	user, err := h.svc.Auth.Me(c.Request.Context(), userID)
	if err != nil {
		utils.APIError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Profil user", user)
}
