package handlers

import (
	"net/http"

	"clinic-backend/internal/apperror"
	"clinic-backend/internal/models"
	"clinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CreateOrder: POST /orders/create-order
func (h *Handler) CreateOrder(c *gin.Context) {
	var input models.CreateOrderInput
	if !bindJSON(c, &input) {
		return
	}

	order, err := h.svc.Orders.CreateOrder(c.Request.Context(), input)
	if err != nil {
		utils.APIError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusCreated, true, "Order berhasil dibuat", gin.H{"id": order.ID})
}

// AddItem: POST /orders/:orderId/add-item
func (h *Handler) AddItem(c *gin.Context) {
	var input models.AddItemInput
	if !bindJSON(c, &input) {
		return
	}

	item, err := h.svc.Orders.AddItem(c.Request.Context(), c.Param("orderId"), input)
	if err != nil {
		utils.APIError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusCreated, true, "Item berhasil ditambahkan", gin.H{"id": item.ID})
}

// GetOrderDetail: GET /orders/:orderId
func (h *Handler) GetOrderDetail(c *gin.Context) {
	order, err := h.svc.Orders.Get(c.Request.Context(), c.Param("orderId"))
	if err != nil {
		utils.APIError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Detail order", order)
}

// ListOrders: GET /orders?business_area_id=&status=&date=&tz=
func (h *Handler) ListOrders(c *gin.Context) {
	businessAreaID, err := utils.ParseOptionalID("business_area_id", c.Query("business_area_id"))
	if err != nil {
		utils.APIError(c, err)
		return
	}

	filter := models.OrderFilter{BusinessAreaID: businessAreaID, Status: c.Query("status")}
	if date := c.Query("date"); date != "" {
		from, to, err := utils.DayBoundaries(date, c.DefaultQuery("tz", h.svc.DefaultTimezone))
		if err != nil {
			utils.APIError(c, apperror.Validation("Tanggal atau zona waktu tidak valid"))
			return
		}
		filter.From, filter.To = &from, &to
	}

	orders, err := h.svc.Orders.List(c.Request.Context(), filter)
	if err != nil {
		utils.APIError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Daftar order", orders)
}

// RecordDownPayment: PATCH /orders/:orderId/down-payment
func (h *Handler) RecordDownPayment(c *gin.Context) {
	var input models.DownPaymentInput
	if !bindJSON(c, &input) {
		return
	}

	order, err := h.svc.Orders.RecordDownPayment(c.Request.Context(), c.Param("orderId"), *input.DP)
	if err != nil {
		utils.APIError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "DP berhasil disimpan", order)
}

// AssignPatients: PATCH /orders/:orderId/items/:orderItemId/assign-patients
func (h *Handler) AssignPatients(c *gin.Context) {
	itemID, err := utils.ParseID("orderItemId", c.Param("orderItemId"))
	if err != nil {
		utils.APIError(c, err)
		return
	}

	// body kosong diperlakukan sama dengan patient_ids kosong
	var input models.AssignPatientsInput
	if c.Request.ContentLength != 0 && !bindJSON(c, &input) {
		return
	}

	res, err := h.svc.Assignment.AssignPatients(c.Request.Context(), c.Param("orderId"), itemID, input.PatientIDs)
	if err != nil {
		utils.APIError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Pasien berhasil di-assign", res)
}
