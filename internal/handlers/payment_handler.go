package handlers

import (
	"net/http"

	"clinic-backend/internal/models"
	"clinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CreatePayment: POST /orders/:orderId/payments, membuat Snap untuk sisa tagihan
func (h *Handler) CreatePayment(c *gin.Context) {
	res, err := h.svc.Payments.CreatePayment(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		utils.APIError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusCreated, true, "Transaksi pembayaran dibuat", res)
}

// HandleMidtransNotification: POST /payments/notification (webhook Midtrans, tanpa JWT)
func (h *Handler) HandleMidtransNotification(c *gin.Context) {
	var notification models.PaymentNotification
	if !bindJSON(c, &notification) {
		return
	}

	out, err := h.svc.Payments.HandleNotification(c.Request.Context(), notification)
	if err != nil {
		utils.APIError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Notifikasi diproses", out)
}
