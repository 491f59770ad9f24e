package middleware

import (
	"net/http"
	"strings"

	"clinic-backend/internal/models"
	"clinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserID = "userID"
	CtxRole   = "role"
)

// AuthMiddleware memvalidasi Bearer JWT lalu menyimpan userID dan role di context
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Ambil Header Authorization
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Token tidak ditemukan", nil)
			c.Abort()
			return
		}

		// 2. Format harus "Bearer <token>"
		scheme, tokenString, ok := strings.Cut(authHeader, " ")
		if !ok || scheme != "Bearer" || tokenString == "" {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Format token salah", nil)
			c.Abort()
			return
		}

		// 3. Validasi Token
		claims, err := utils.ValidateToken(secret, tokenString)
		if err != nil {
			utils.APIResponse(c, http.StatusUnauthorized, false, "Token tidak valid", nil)
			c.Abort()
			return
		}

		c.Set(CtxUserID, claims.UserID)
		c.Set(CtxRole, claims.Role)
		c.Next()
	}
}

// AdminOnly: hanya role ADMIN
func AdminOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxRole) != models.RoleAdmin {
			utils.APIResponse(c, http.StatusForbidden, false, "Akses Ditolak: Khusus Admin", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// UserID dari token, 0 kalau request tidak lewat AuthMiddleware
func UserID(c *gin.Context) uint64 {
	if v, ok := c.Get(CtxUserID); ok {
		if id, ok := v.(uint64); ok {
			return id
		}
	}
	return 0
}
