package services

import (
	"context"
	"fmt"
	"net/http"
	"strings"
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

func newOrderService(store *mocks.Store, notifier *recordingNotifier) *OrderService {
	svc := NewOrderService(store, NewLedger(5), notifier)
	svc.newID = func() string { return "ORD-test" }
	return svc
}

func TestNewOrderID(t *testing.T) {
	a, b := NewOrderID(), NewOrderID()
	assert.True(t, strings.HasPrefix(a, "ORD-"))
	assert.NotEqual(t, a, b)
	assert.Len(t, a, len("ORD-")+36)
}

func TestCreateOrder(t *testing.T) {
	ctx := context.Background()
	store := new(mocks.Store)
	notifier := &recordingNotifier{}

	store.On("CreateOrder", mock.Anything, mock.MatchedBy(func(o *models.Order) bool {
		return o.ID == "ORD-test" && o.TotalPrice == 169000 && o.DP == 0 &&
			o.Status == models.OrderStatusUnpaid && o.AttendanceStatus == models.AttendancePending
	})).Return(nil)
	store.On("FindProduct", mock.Anything, uint64(1), uint64(10)).
		Return(&models.Product{ID: 1, BusinessAreaID: 10, UnitConversion: 12}, nil)
	store.On("FindProduct", mock.Anything, uint64(2), uint64(10)).
		Return(&models.Product{ID: 2, BusinessAreaID: 10, UnitConversion: 10}, nil)
	store.On("ApplyStockDelta", mock.Anything, uint64(1), uint64(10), -24).
		Return(&models.Stock{ProductID: 1, BusinessAreaID: 10, Quantity: 76}, nil)
	store.On("ApplyStockDelta", mock.Anything, uint64(2), uint64(10), -3).
		Return(&models.Stock{ProductID: 2, BusinessAreaID: 10, Quantity: 4}, nil)
	store.On("CreateOrderItems", mock.Anything, mock.MatchedBy(func(items []models.OrderItem) bool {
		return len(items) == 2 && items[0].ScheduleID == nil && !items[0].IsAssigned &&
			items[0].UnitUsed == models.UnitLarge && items[1].UnitUsed == models.UnitSmall
	})).Return(nil)

	order, err := newOrderService(store, notifier).CreateOrder(ctx, models.CreateOrderInput{
		BusinessAreaID: 10,
		Products: []models.OrderLineInput{
			{ProductID: 1, BusinessAreaID: 10, OrderQuantity: 2, OrderUnitType: models.UnitLarge, Price: 50000, UnitConversion: 99},
			{ProductID: 2, OrderQuantity: 3, OrderUnitType: models.UnitSmall, Price: 23000},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, "ORD-test", order.ID)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, 1, store.Transactions)
	store.AssertExpectations(t)

	// stok produk 2 tinggal 4, di bawah ambang 5
	msgs := notifier.messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, "low_stock", msgs[0].Data["type"])
}

func TestCreateOrderInsufficientStock(t *testing.T) {
	ctx := context.Background()
	store := new(mocks.Store)

	store.On("CreateOrder", mock.Anything, mock.Anything).Return(nil)
	store.On("FindProduct", mock.Anything, uint64(1), uint64(10)).
		Return(&models.Product{ID: 1, BusinessAreaID: 10, UnitConversion: 12}, nil)
	store.On("ApplyStockDelta", mock.Anything, uint64(1), uint64(10), -120).
		Return(nil, fmt.Errorf("stock: %w", repository.ErrInsufficientStock))

	_, err := newOrderService(store, &recordingNotifier{}).CreateOrder(ctx, models.CreateOrderInput{
		BusinessAreaID: 10,
		Products: []models.OrderLineInput{
			{ProductID: 1, OrderQuantity: 10, OrderUnitType: models.UnitLarge, Price: 1000},
		},
	})

	assertKind(t, err, apperror.KindInsufficientStock, http.StatusBadRequest)
	store.AssertNotCalled(t, "CreateOrderItems", mock.Anything, mock.Anything)
}

func TestCreateOrderValidation(t *testing.T) {
	tests := []struct {
		name  string
		input models.CreateOrderInput
	}{
		{name: "tanpa produk", input: models.CreateOrderInput{BusinessAreaID: 10}},
		{name: "quantity nol", input: models.CreateOrderInput{BusinessAreaID: 10, Products: []models.OrderLineInput{
			{ProductID: 1, OrderQuantity: 0, OrderUnitType: models.UnitSmall},
		}}},
		{name: "harga negatif", input: models.CreateOrderInput{BusinessAreaID: 10, Products: []models.OrderLineInput{
			{ProductID: 1, OrderQuantity: 1, OrderUnitType: models.UnitSmall, Price: -1},
		}}},
		{name: "satuan salah", input: models.CreateOrderInput{BusinessAreaID: 10, Products: []models.OrderLineInput{
			{ProductID: 1, OrderQuantity: 1, OrderUnitType: "PACK"},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(mocks.Store)
			_, err := newOrderService(store, &recordingNotifier{}).CreateOrder(context.Background(), tt.input)

			assertKind(t, err, apperror.KindValidation, http.StatusBadRequest)
			assert.Zero(t, store.Transactions)
		})
	}
}

func TestCreateOrderUnknownProduct(t *testing.T) {
	store := new(mocks.Store)
	store.On("CreateOrder", mock.Anything, mock.Anything).Return(nil)
	store.On("FindProduct", mock.Anything, uint64(9), uint64(10)).
		Return(nil, fmt.Errorf("find product: %w", gorm.ErrRecordNotFound))

	_, err := newOrderService(store, &recordingNotifier{}).CreateOrder(context.Background(), models.CreateOrderInput{
		BusinessAreaID: 10,
		Products:       []models.OrderLineInput{{ProductID: 9, OrderQuantity: 1, OrderUnitType: models.UnitSmall}},
	})

	assertKind(t, err, apperror.KindNotFound, http.StatusBadRequest)
}

func TestAddItem(t *testing.T) {
	ctx := context.Background()
	store := new(mocks.Store)

	store.On("LockOrder", mock.Anything, "ORD-1").Return(&models.Order{ID: "ORD-1", TotalPrice: 100000}, nil)
	store.On("FindProduct", mock.Anything, uint64(3), uint64(10)).
		Return(&models.Product{ID: 3, BusinessAreaID: 10, Tariff: 120000, SmallUnitTariff: 15000, UnitConversion: 10}, nil)
	store.On("ApplyStockDelta", mock.Anything, uint64(3), uint64(10), -2).
		Return(&models.Stock{ProductID: 3, BusinessAreaID: 10, Quantity: 50}, nil)
	store.On("AddToOrderTotal", mock.Anything, "ORD-1", float64(30000)).Return(nil)
	store.On("CreateOrderItems", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			items := args.Get(1).([]models.OrderItem)
			items[0].ID = 77
		}).
		Return(nil)

	item, err := newOrderService(store, &recordingNotifier{}).AddItem(ctx, "ORD-1", models.AddItemInput{
		ProductID:      3,
		BusinessAreaID: 10,
		OrderUnitType:  models.UnitSmall,
		OrderQuantity:  2,
		ScheduleID:     u64(4),
	})

	require.NoError(t, err)
	assert.Equal(t, uint64(77), item.ID)
	assert.Equal(t, float64(15000), item.Price)
	assert.Equal(t, uint64(4), *item.ScheduleID)
	store.AssertExpectations(t)
}

func TestAddItemOrderNotFound(t *testing.T) {
	store := new(mocks.Store)
	store.On("LockOrder", mock.Anything, "ORD-x").Return(nil, fmt.Errorf("lock: %w", gorm.ErrRecordNotFound))

	_, err := newOrderService(store, &recordingNotifier{}).AddItem(context.Background(), "ORD-x", models.AddItemInput{
		ProductID: 3, BusinessAreaID: 10, OrderUnitType: models.UnitLarge, OrderQuantity: 1,
	})

	assertKind(t, err, apperror.KindNotFound, http.StatusNotFound)
	assert.Equal(t, "Order tidak ditemukan", apperror.Message(err))
}

func TestRecordDownPayment(t *testing.T) {
	tests := []struct {
		name       string
		dp         float64
		wantDP     float64
		wantStatus string
	}{
		{name: "sebagian", dp: 50000, wantDP: 50000, wantStatus: models.OrderStatusUnpaid},
		{name: "pas", dp: 200000, wantDP: 200000, wantStatus: models.OrderStatusPaid},
		{name: "lebih dibatasi total", dp: 250000, wantDP: 200000, wantStatus: models.OrderStatusPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := new(mocks.Store)
			store.On("LockOrder", mock.Anything, "ORD-1").
				Return(&models.Order{ID: "ORD-1", TotalPrice: 200000, Status: models.OrderStatusUnpaid}, nil)
			store.On("UpdateOrderPayment", mock.Anything, "ORD-1", tt.wantDP, tt.wantStatus).Return(nil)

			order, err := newOrderService(store, &recordingNotifier{}).RecordDownPayment(context.Background(), "ORD-1", tt.dp)

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, order.Status)
			store.AssertExpectations(t)
		})
	}

	t.Run("negatif", func(t *testing.T) {
		_, err := newOrderService(new(mocks.Store), &recordingNotifier{}).RecordDownPayment(context.Background(), "ORD-1", -1)
		assertKind(t, err, apperror.KindValidation, http.StatusBadRequest)
	})
}
