package utils

import (
	"errors"

	"clinic-backend/internal/apperror"

	"github.com/gin-gonic/gin"
)

// Format response standar biar frontend enak bacanya
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"` // omitempty: kalau null, ga usah dimunculin
}

func APIResponse(c *gin.Context, code int, success bool, message string, data interface{}) {
	c.JSON(code, Response{
		Success: success,
		Message: message,
		Data:    data,
	})
}

// APIError menerjemahkan error domain ke status code + pesan.
// Detail error hanya dikirim untuk kind yang punya Details (misal daftar ID pasien yang hilang).
func APIError(c *gin.Context, err error) {
	var data interface{}
	var appErr *apperror.Error
	if errors.As(err, &appErr) && appErr.Details != nil {
		data = appErr.Details
	}
	_ = c.Error(err) // dicatat oleh middleware logger
	APIResponse(c, apperror.HTTPStatus(err), false, apperror.Message(err), data)
}
