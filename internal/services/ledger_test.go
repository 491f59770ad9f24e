package services

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"clinic-backend/internal/apperror"
	"clinic-backend/internal/models"
	"clinic-backend/internal/repository"
	"clinic-backend/internal/repository/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestBaseQuantity(t *testing.T) {
	tests := []struct {
		name       string
		unit       string
		quantity   int
		conversion int
		want       int
		wantErr    bool
	}{
		{name: "large dikali konversi", unit: models.UnitLarge, quantity: 2, conversion: 12, want: 24},
		{name: "small apa adanya", unit: models.UnitSmall, quantity: 5, conversion: 12, want: 5},
		{name: "konversi nol", unit: models.UnitLarge, quantity: 1, conversion: 0, wantErr: true},
		{name: "satuan tidak dikenal", unit: "BOX", quantity: 1, conversion: 10, wantErr: true},
		{name: "quantity nol", unit: models.UnitSmall, quantity: 0, conversion: 1, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := BaseQuantity(tt.unit, tt.quantity, tt.conversion)
			if tt.wantErr {
				assertKind(t, err, apperror.KindValidation, http.StatusBadRequest)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLedgerApply(t *testing.T) {
	ctx := context.Background()

	t.Run("stok kurang", func(t *testing.T) {
		store := new(mocks.Store)
		store.On("ApplyStockDelta", mock.Anything, uint64(1), uint64(10), -30).
			Return(nil, fmt.Errorf("stock 1/10: %w", repository.ErrInsufficientStock))

		_, err := NewLedger(5).Apply(ctx, store, 1, 10, -30)

		assertKind(t, err, apperror.KindInsufficientStock, http.StatusBadRequest)
		assert.Equal(t, "Stok tidak mencukupi", apperror.Message(err))
	})

	t.Run("baris stok tidak ada", func(t *testing.T) {
		store := new(mocks.Store)
		store.On("ApplyStockDelta", mock.Anything, uint64(1), uint64(10), -1).
			Return(nil, fmt.Errorf("stock 1/10: %w", gorm.ErrRecordNotFound))

		_, err := NewLedger(5).Apply(ctx, store, 1, 10, -1)

		assertKind(t, err, apperror.KindNotFound, http.StatusBadRequest)
	})

	t.Run("berhasil", func(t *testing.T) {
		store := new(mocks.Store)
		store.On("ApplyStockDelta", mock.Anything, uint64(1), uint64(10), 24).
			Return(&models.Stock{ProductID: 1, BusinessAreaID: 10, Quantity: 124}, nil)

		stock, err := NewLedger(5).Apply(ctx, store, 1, 10, 24)

		require.NoError(t, err)
		assert.Equal(t, 124, stock.Quantity)
		store.AssertExpectations(t)
	})
}

func TestLowStockMessages(t *testing.T) {
	l := NewLedger(5)
	msgs := l.lowStockMessages([]*models.Stock{
		{ProductID: 1, BusinessAreaID: 10, Quantity: 100},
		{ProductID: 2, BusinessAreaID: 10, Quantity: 5},
		nil,
	})

	require.Len(t, msgs, 1)
	assert.Equal(t, "business-area-10", msgs[0].Topic)
	assert.Equal(t, "2", msgs[0].Data["product_id"])
}
