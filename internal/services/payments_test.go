package services

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"clinic-backend/internal/apperror"
	"clinic-backend/internal/models"
	"clinic-backend/internal/payment"
	"clinic-backend/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	validSignature bool
	err            error
	requests       []payment.SnapRequest
}

func (g *fakeGateway) CreateSnap(_ context.Context, req payment.SnapRequest) (*payment.SnapResult, error) {
	g.requests = append(g.requests, req)
	if g.err != nil {
		return nil, g.err
	}
	return &payment.SnapResult{Reference: req.OrderID + "~abc", Token: "tok", RedirectURL: "https://pay"}, nil
}

func (g *fakeGateway) VerifySignature(_, _, _, _ string) bool { return g.validSignature }

func TestCreatePayment(t *testing.T) {
	ctx := context.Background()

	t.Run("sisa tagihan", func(t *testing.T) {
		store := new(mocks.Store)
		gw := &fakeGateway{}
		store.On("FindOrder", mock.Anything, "ORD-1").
			Return(&models.Order{ID: "ORD-1", TotalPrice: 150000.4, DP: 50000, Status: models.OrderStatusUnpaid}, nil)

		res, err := NewPaymentService(store, gw, nil).CreatePayment(ctx, "ORD-1")

		require.NoError(t, err)
		assert.Equal(t, "tok", res.Token)
		require.Len(t, gw.requests, 1)
		assert.Equal(t, int64(100000), gw.requests[0].Amount)
	})

	t.Run("sudah lunas", func(t *testing.T) {
		store := new(mocks.Store)
		store.On("FindOrder", mock.Anything, "ORD-1").
			Return(&models.Order{ID: "ORD-1", TotalPrice: 1000, DP: 1000, Status: models.OrderStatusPaid}, nil)

		_, err := NewPaymentService(store, &fakeGateway{}, nil).CreatePayment(ctx, "ORD-1")

		assertKind(t, err, apperror.KindValidation, http.StatusBadRequest)
		assert.Equal(t, "Order sudah lunas", apperror.Message(err))
	})

	t.Run("gateway gagal", func(t *testing.T) {
		store := new(mocks.Store)
		store.On("FindOrder", mock.Anything, "ORD-1").
			Return(&models.Order{ID: "ORD-1", TotalPrice: 1000}, nil)

		_, err := NewPaymentService(store, &fakeGateway{err: errors.New("timeout")}, nil).CreatePayment(ctx, "ORD-1")

		assertKind(t, err, apperror.KindExternal, http.StatusBadGateway)
	})

	t.Run("gateway tidak dikonfigurasi", func(t *testing.T) {
		_, err := NewPaymentService(new(mocks.Store), nil, nil).CreatePayment(ctx, "ORD-1")
		assertKind(t, err, apperror.KindExternal, http.StatusBadGateway)
	})
}

func TestHandleNotification(t *testing.T) {
	ctx := context.Background()

	t.Run("settlement melunasi order", func(t *testing.T) {
		store := new(mocks.Store)
		notifier := &recordingNotifier{}
		store.On("LockOrder", mock.Anything, "ORD-1").
			Return(&models.Order{ID: "ORD-1", BusinessAreaID: 10, TotalPrice: 200000, DP: 50000, Status: models.OrderStatusUnpaid}, nil)
		store.On("PaymentRecorded", mock.Anything, "ORD-1~s44we8").Return(false, nil)
		store.On("CreatePaymentTransaction", mock.Anything, mock.MatchedBy(func(txn *models.PaymentTransaction) bool {
			return txn.OrderID == "ORD-1" && txn.Reference == "ORD-1~s44we8" && txn.GrossAmount == 150000
		})).Return(nil)
		store.On("UpdateOrderPayment", mock.Anything, "ORD-1", float64(200000), models.OrderStatusPaid).Return(nil)

		out, err := NewPaymentService(store, &fakeGateway{validSignature: true}, notifier).HandleNotification(ctx, models.PaymentNotification{
			OrderID:           "ORD-1~s44we8",
			TransactionStatus: "settlement",
			GrossAmount:       "150000.00",
		})

		require.NoError(t, err)
		assert.True(t, out.Changed)
		assert.Equal(t, "ORD-1", out.OrderID)
		assert.Equal(t, models.OrderStatusPaid, out.Status)
		store.AssertExpectations(t)
		require.Len(t, notifier.messages(), 1)
		assert.Equal(t, "order_paid", notifier.messages()[0].Data["type"])
	})

	t.Run("settlement sebagian tetap belum lunas", func(t *testing.T) {
		store := new(mocks.Store)
		notifier := &recordingNotifier{}
		store.On("LockOrder", mock.Anything, "ORD-2").
			Return(&models.Order{ID: "ORD-2", TotalPrice: 300000, Status: models.OrderStatusUnpaid}, nil)
		store.On("PaymentRecorded", mock.Anything, "ORD-2~s44we8").Return(false, nil)
		store.On("CreatePaymentTransaction", mock.Anything, mock.Anything).Return(nil)
		store.On("UpdateOrderPayment", mock.Anything, "ORD-2", float64(100000), models.OrderStatusUnpaid).Return(nil)

		out, err := NewPaymentService(store, &fakeGateway{validSignature: true}, notifier).HandleNotification(ctx, models.PaymentNotification{
			OrderID:           "ORD-2~s44we8",
			TransactionStatus: "settlement",
			GrossAmount:       "100000.00",
		})

		require.NoError(t, err)
		assert.True(t, out.Changed)
		assert.Equal(t, models.OrderStatusUnpaid, out.Status)
		store.AssertExpectations(t)
		store.AssertNotCalled(t, "UpdateOrderPayment", mock.Anything, "ORD-2", float64(300000), models.OrderStatusPaid)
		require.Len(t, notifier.messages(), 1)
		assert.Equal(t, "payment_received", notifier.messages()[0].Data["type"])
	})

	t.Run("reference yang sama tidak dicatat ulang", func(t *testing.T) {
		store := new(mocks.Store)
		store.On("LockOrder", mock.Anything, "ORD-1").
			Return(&models.Order{ID: "ORD-1", TotalPrice: 200000, DP: 100000, Status: models.OrderStatusUnpaid}, nil)
		store.On("PaymentRecorded", mock.Anything, "ORD-1~s44we8").Return(true, nil)

		out, err := NewPaymentService(store, &fakeGateway{validSignature: true}, nil).HandleNotification(ctx, models.PaymentNotification{
			OrderID:           "ORD-1~s44we8",
			TransactionStatus: "capture",
			FraudStatus:       "accept",
			GrossAmount:       "100000.00",
		})

		require.NoError(t, err)
		assert.False(t, out.Changed)
		assert.Equal(t, models.OrderStatusUnpaid, out.Status)
		store.AssertNotCalled(t, "CreatePaymentTransaction", mock.Anything, mock.Anything)
		store.AssertNotCalled(t, "UpdateOrderPayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("capture tanpa fraud accept tidak melunasi", func(t *testing.T) {
		for _, fraud := range []string{"", "challenge", "deny"} {
			store := new(mocks.Store)
			store.On("FindOrder", mock.Anything, "ORD-1").Return(&models.Order{ID: "ORD-1"}, nil)

			out, err := NewPaymentService(store, &fakeGateway{validSignature: true}, nil).HandleNotification(ctx, models.PaymentNotification{
				OrderID:           "ORD-1~s44we8",
				TransactionStatus: "capture",
				FraudStatus:       fraud,
				GrossAmount:       "100000.00",
			})

			require.NoError(t, err, fraud)
			assert.False(t, out.Changed, fraud)
			assert.Zero(t, store.Transactions, fraud)
		}
	})

	t.Run("gross_amount tidak valid", func(t *testing.T) {
		store := new(mocks.Store)

		_, err := NewPaymentService(store, &fakeGateway{validSignature: true}, nil).HandleNotification(ctx, models.PaymentNotification{
			OrderID:           "ORD-1~s44we8",
			TransactionStatus: "settlement",
			GrossAmount:       "abc",
		})

		assertKind(t, err, apperror.KindValidation, http.StatusBadRequest)
		assert.Zero(t, store.Transactions)
	})

	t.Run("expire tidak mengubah order", func(t *testing.T) {
		store := new(mocks.Store)
		store.On("FindOrder", mock.Anything, "ORD-1").Return(&models.Order{ID: "ORD-1"}, nil)

		out, err := NewPaymentService(store, &fakeGateway{validSignature: true}, nil).HandleNotification(ctx, models.PaymentNotification{
			OrderID:           "ORD-1~s44we8",
			TransactionStatus: "expire",
		})

		require.NoError(t, err)
		assert.Equal(t, "expire", out.Status)
		assert.Zero(t, store.Transactions)
	})

	t.Run("signature salah", func(t *testing.T) {
		_, err := NewPaymentService(new(mocks.Store), &fakeGateway{}, nil).HandleNotification(ctx, models.PaymentNotification{
			OrderID:           "ORD-1~s44we8",
			TransactionStatus: "settlement",
		})
		assertKind(t, err, apperror.KindUnauthorized, http.StatusUnauthorized)
	})
}
