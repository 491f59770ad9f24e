package services

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"clinic-backend/internal/apperror"
	"clinic-backend/internal/models"
	"clinic-backend/internal/notify"
	"clinic-backend/internal/payment"
	"clinic-backend/internal/repository"
	"clinic-backend/pkg/logger"

	"go.uber.org/zap"
)

type PaymentService struct {
	store    repository.Store
	gateway  payment.Gateway
	notifier notify.Notifier
}

// NewPaymentService: gateway boleh nil kalau Midtrans tidak dikonfigurasi,
// endpoint pembayaran lalu menjawab 502.
func NewPaymentService(store repository.Store, gateway payment.Gateway, notifier notify.Notifier) *PaymentService {
	return &PaymentService{store: store, gateway: gateway, notifier: notifier}
}

var errGatewayMissing = apperror.New(apperror.KindExternal, "Payment gateway belum dikonfigurasi")

// CreatePayment membuat transaksi Snap untuk sisa tagihan order
func (s *PaymentService) CreatePayment(ctx context.Context, orderID string) (*payment.SnapResult, error) {
	if s.gateway == nil {
		return nil, errGatewayMissing
	}

	order, err := s.store.FindOrder(ctx, orderID)
	if err != nil {
		return nil, notFoundOr(err, apperror.NotFound("Order tidak ditemukan"), "Gagal mengambil order")
	}

	outstanding := int64(math.Round(order.Outstanding()))
	if order.Status == models.OrderStatusPaid || outstanding <= 0 {
		return nil, apperror.Validation("Order sudah lunas")
	}

	res, err := s.gateway.CreateSnap(ctx, payment.SnapRequest{
		OrderID:  order.ID,
		Amount:   outstanding,
		ItemName: fmt.Sprintf("Pelunasan %s", order.ID),
	})
	if err != nil {
		return nil, apperror.External("Gagal membuat transaksi pembayaran", err)
	}

	logger.FromContext(ctx).Info("snap transaction created",
		zap.String("order_id", order.ID),
		zap.String("reference", res.Reference),
		zap.Int64("amount", outstanding))
	return res, nil
}

// HandleNotification memproses webhook Midtrans. Pembayaran sukses
// menambah gross_amount ke dp; order baru LUNAS kalau dp sudah menutup
// total_price. Satu reference hanya dicatat sekali.
func (s *PaymentService) HandleNotification(ctx context.Context, n models.PaymentNotification) (*models.PaymentOutcome, error) {
	if s.gateway == nil {
		return nil, errGatewayMissing
	}
	if !s.gateway.VerifySignature(n.OrderID, n.StatusCode, n.GrossAmount, n.SignatureKey) {
		return nil, apperror.Unauthorized("Signature tidak valid")
	}

	orderID := payment.OrderIDFromReference(n.OrderID)
	log := logger.FromContext(ctx).With(
		zap.String("order_id", orderID),
		zap.String("reference", n.OrderID),
		zap.String("transaction_status", n.TransactionStatus))

	if !isSettled(n) {
		if _, err := s.store.FindOrder(ctx, orderID); err != nil {
			return nil, notFoundOr(err, apperror.NotFound("Order tidak ditemukan"), "Gagal mengambil order")
		}
		switch n.TransactionStatus {
		case "deny", "cancel", "expire", "failure":
			log.Warn("payment not completed")
		default:
			log.Info("payment pending")
		}
		return &models.PaymentOutcome{OrderID: orderID, Status: n.TransactionStatus}, nil
	}

	amount, err := strconv.ParseFloat(n.GrossAmount, 64)
	if err != nil || amount <= 0 {
		return nil, apperror.Validation("gross_amount tidak valid")
	}

	var (
		order   *models.Order
		changed bool
	)
	err = s.store.Transaction(ctx, func(tx repository.Store) error {
		var err error
		order, err = tx.LockOrder(ctx, orderID)
		if err != nil {
			return notFoundOr(err, apperror.NotFound("Order tidak ditemukan"), "Gagal mengambil order")
		}

		recorded, err := tx.PaymentRecorded(ctx, n.OrderID)
		if err != nil {
			return storageError("Gagal memeriksa pembayaran", err)
		}
		if recorded {
			return nil
		}

		err = tx.CreatePaymentTransaction(ctx, &models.PaymentTransaction{
			OrderID:           orderID,
			Reference:         n.OrderID,
			GrossAmount:       amount,
			TransactionStatus: n.TransactionStatus,
			PaymentType:       n.PaymentType,
		})
		if err != nil {
			return storageError("Gagal menyimpan pembayaran", err)
		}

		order.DP = math.Min(order.DP+amount, order.TotalPrice)
		order.Status = models.OrderStatusUnpaid
		if order.DP >= order.TotalPrice {
			order.Status = models.OrderStatusPaid
		}
		changed = true
		return storageError("Gagal menyimpan pembayaran", tx.UpdateOrderPayment(ctx, orderID, order.DP, order.Status))
	})
	if err != nil {
		return nil, err
	}

	if changed {
		log.Info("payment recorded", zap.Float64("amount", amount), zap.String("status", order.Status))
		title, body, kind := "Pembayaran diterima", fmt.Sprintf("Pembayaran %.0f untuk order %s sudah diterima", amount, orderID), "payment_received"
		if order.Status == models.OrderStatusPaid {
			title, body, kind = "Order lunas", fmt.Sprintf("Pembayaran order %s sudah diterima", orderID), "order_paid"
		}
		notify.Send(ctx, s.notifier, notify.Message{
			Topic: notify.BusinessAreaTopic(order.BusinessAreaID),
			Title: title,
			Body:  body,
			Data: map[string]string{
				"type":     kind,
				"order_id": orderID,
			},
		})
	}
	return &models.PaymentOutcome{OrderID: orderID, Status: order.Status, Changed: changed}, nil
}

func isSettled(n models.PaymentNotification) bool {
	switch n.TransactionStatus {
	case "settlement":
		return true
	case "capture":
		return n.FraudStatus == "accept"
	}
	return false
}
