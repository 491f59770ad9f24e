package services

import (
	"context"
	"errors"
	"fmt"

	"clinic-backend/internal/apperror"
	"clinic-backend/internal/models"
	"clinic-backend/internal/notify"
	"clinic-backend/internal/repository"
	"clinic-backend/pkg/metrics"
)

// BaseQuantity mengubah jumlah pesanan ke satuan kecil (satuan stok).
// LARGE dikalikan unit_conversion produk, SMALL dipakai apa adanya.
func BaseQuantity(unit string, quantity, unitConversion int) (int, error) {
	if quantity <= 0 {
		return 0, apperror.Validation("Quantity harus lebih dari 0")
	}
	switch unit {
	case models.UnitLarge:
		if unitConversion <= 0 {
			return 0, apperror.Validation("Konversi satuan produk tidak valid")
		}
		return quantity * unitConversion, nil
	case models.UnitSmall:
		return quantity, nil
	default:
		return 0, apperror.Validation(fmt.Sprintf("Satuan %q tidak dikenal, gunakan LARGE atau SMALL", unit))
	}
}

// Ledger mencatat perubahan stok. Apply selalu dipanggil di dalam transaksi
// yang sama dengan baris order/purchase yang melatarbelakanginya.
type Ledger struct {
	lowStockThreshold int
}

func NewLedger(lowStockThreshold int) *Ledger {
	return &Ledger{lowStockThreshold: lowStockThreshold}
}

func (l *Ledger) Apply(ctx context.Context, tx repository.Store, productID, businessAreaID uint64, delta int) (*models.Stock, error) {
	stock, err := tx.ApplyStockDelta(ctx, productID, businessAreaID, delta)
	switch {
	case err == nil:
	case errors.Is(err, repository.ErrInsufficientStock):
		return nil, apperror.InsufficientStock("Stok tidak mencukupi").WithDetails(map[string]interface{}{
			"product_id":       productID,
			"business_area_id": businessAreaID,
			"requested":        -delta,
		})
	case repository.IsNotFound(err):
		return nil, apperror.NotFoundAsBadRequest("Stok produk tidak ditemukan")
	default:
		return nil, apperror.Internal("Gagal mengubah stok", err)
	}

	direction := "in"
	if delta < 0 {
		direction = "out"
	}
	metrics.StockAdjustments.WithLabelValues(direction).Inc()
	return stock, nil
}

// IsLow true kalau stok sudah di bawah/sama dengan ambang batas
func (l *Ledger) IsLow(stock *models.Stock) bool {
	return stock != nil && stock.Quantity <= l.lowStockThreshold
}

// lowStockMessages notifikasi untuk stok yang menipis, dikirim setelah commit
func (l *Ledger) lowStockMessages(stocks []*models.Stock) []notify.Message {
	var msgs []notify.Message
	for _, s := range stocks {
		if !l.IsLow(s) {
			continue
		}
		msgs = append(msgs, notify.Message{
			Topic: notify.BusinessAreaTopic(s.BusinessAreaID),
			Title: "Stok menipis",
			Body:  fmt.Sprintf("Stok produk #%d tinggal %d", s.ProductID, s.Quantity),
			Data: map[string]string{
				"type":       "low_stock",
				"product_id": fmt.Sprintf("%d", s.ProductID),
				"quantity":   fmt.Sprintf("%d", s.Quantity),
			},
		})
	}
	return msgs
}
