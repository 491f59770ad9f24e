package handlers

import (
	"net/http"

	"clinic-backend/internal/models"
	"clinic-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CreatePurchase: POST /purchases
func (h *Handler) CreatePurchase(c *gin.Context) {
	var input models.CreatePurchaseInput
	if !bindJSON(c, &input) {
		return
	}

	stock, err := h.svc.Purchases.Create(c.Request.Context(), input)
	if err != nil {
		utils.APIError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusCreated, true, "Pembelian berhasil dicatat", stock)
}

// ListPurchases: GET /purchases?business_area_id=
func (h *Handler) ListPurchases(c *gin.Context) {
	businessAreaID, err := utils.ParseOptionalID("business_area_id", c.Query("business_area_id"))
	if err != nil {
		utils.APIError(c, err)
		return
	}

	purchases, err := h.svc.Purchases.List(c.Request.Context(), businessAreaID)
	if err != nil {
		utils.APIError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Daftar pembelian", purchases)
}

// ListProducts: GET /products?business_area_id= (wajib), beserta stok
func (h *Handler) ListProducts(c *gin.Context) {
	businessAreaID, err := utils.ParseID("business_area_id", c.Query("business_area_id"))
	if err != nil {
		utils.APIError(c, err)
		return
	}

	products, err := h.svc.Catalog.ListProducts(c.Request.Context(), businessAreaID)
	if err != nil {
		utils.APIError(c, err)
		return
	}
	utils.APIResponse(c, http.StatusOK, true, "Daftar produk", products)
}
