package services

import (
	"context"
	"fmt"
	"strconv"

	"clinic-backend/internal/apperror"
	"clinic-backend/internal/models"
	"clinic-backend/internal/notify"
	"clinic-backend/internal/repository"
	"clinic-backend/pkg/metrics"

	"github.com/google/uuid"
)

// NewOrderID membuat ID order "ORD-<uuidv7>". UUIDv7 urut waktu dan unik
// tanpa bergantung pada timestamp + angka acak.
func NewOrderID() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return "ORD-" + id.String()
}

type OrderService struct {
	store    repository.Store
	ledger   *Ledger
	notifier notify.Notifier
	newID    func() string
}

func NewOrderService(store repository.Store, ledger *Ledger, notifier notify.Notifier) *OrderService {
	return &OrderService{store: store, ledger: ledger, notifier: notifier, newID: NewOrderID}
}

func validateLine(i int, line models.OrderLineInput) error {
	switch {
	case line.ProductID == 0:
		return apperror.Validation(fmt.Sprintf("products[%d].productId wajib diisi", i))
	case line.OrderQuantity <= 0:
		return apperror.Validation(fmt.Sprintf("products[%d].orderQuantity harus lebih dari 0", i))
	case line.Price < 0:
		return apperror.Validation(fmt.Sprintf("products[%d].price tidak boleh negatif", i))
	case line.OrderUnitType != models.UnitLarge && line.OrderUnitType != models.UnitSmall:
		return apperror.Validation(fmt.Sprintf("products[%d].orderUnitType harus LARGE atau SMALL", i))
	}
	return nil
}

// CreateOrder membuat order + item + pengurangan stok dalam satu transaksi.
// Harga per baris berasal dari client; konversi satuan diambil dari produk.
func (s *OrderService) CreateOrder(ctx context.Context, in models.CreateOrderInput) (*models.Order, error) {
	if in.BusinessAreaID == 0 {
		return nil, apperror.Validation("business_area_id wajib diisi")
	}
	if len(in.Products) == 0 {
		return nil, apperror.Validation("Produk wajib diisi")
	}

	var total float64
	for i, line := range in.Products {
		if err := validateLine(i, line); err != nil {
			return nil, err
		}
		total += line.Price * float64(line.OrderQuantity)
	}

	order := &models.Order{
		ID:               s.newID(),
		BusinessAreaID:   in.BusinessAreaID,
		TotalPrice:       total,
		DP:               0,
		Status:           models.OrderStatusUnpaid,
		AttendanceStatus: models.AttendancePending,
	}

	var touched []*models.Stock
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		if err := tx.CreateOrder(ctx, order); err != nil {
			return storageError("Gagal menyimpan order", err)
		}

		items := make([]models.OrderItem, 0, len(in.Products))
		for _, line := range in.Products {
			businessAreaID := line.BusinessAreaID
			if businessAreaID == 0 {
				businessAreaID = in.BusinessAreaID
			}

			product, err := tx.FindProduct(ctx, line.ProductID, businessAreaID)
			if err != nil {
				return notFoundOr(err, apperror.NotFoundAsBadRequest(
					fmt.Sprintf("Produk %d tidak ditemukan", line.ProductID)), "Gagal mengambil produk")
			}

			base, err := BaseQuantity(line.OrderUnitType, line.OrderQuantity, product.UnitConversion)
			if err != nil {
				return err
			}

			stock, err := s.ledger.Apply(ctx, tx, product.ID, businessAreaID, -base)
			if err != nil {
				return err
			}
			touched = append(touched, stock)

			items = append(items, models.OrderItem{
				OrderID:        order.ID,
				ProductID:      product.ID,
				BusinessAreaID: businessAreaID,
				ScheduleID:     nil,
				Quantity:       line.OrderQuantity,
				UnitUsed:       line.OrderUnitType,
				Price:          line.Price,
				IsAssigned:     false,
			})
		}

		if err := tx.CreateOrderItems(ctx, items); err != nil {
			return storageError("Gagal menyimpan item order", err)
		}
		order.Items = items
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.OrdersCreated.WithLabelValues(strconv.FormatUint(order.BusinessAreaID, 10)).Inc()
	for _, msg := range s.ledger.lowStockMessages(touched) {
		notify.Send(ctx, s.notifier, msg)
	}
	return order, nil
}

// AddItem menambah satu item ke order yang sudah ada. Harga diambil dari
// tarif produk sesuai satuan, total order bertambah, status kembali BELUM_LUNAS.
func (s *OrderService) AddItem(ctx context.Context, orderID string, in models.AddItemInput) (*models.OrderItem, error) {
	if in.OrderQuantity <= 0 {
		return nil, apperror.Validation("orderQuantity harus lebih dari 0")
	}
	if in.OrderUnitType != models.UnitLarge && in.OrderUnitType != models.UnitSmall {
		return nil, apperror.Validation("orderUnitType harus LARGE atau SMALL")
	}

	var (
		item  models.OrderItem
		stock *models.Stock
	)
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		if _, err := tx.LockOrder(ctx, orderID); err != nil {
			return notFoundOr(err, apperror.NotFound("Order tidak ditemukan"), "Gagal mengambil order")
		}

		product, err := tx.FindProduct(ctx, in.ProductID, in.BusinessAreaID)
		if err != nil {
			return notFoundOr(err, apperror.NotFoundAsBadRequest("Produk tidak ditemukan"), "Gagal mengambil produk")
		}

		price := product.Tariff
		if in.OrderUnitType == models.UnitSmall {
			price = product.SmallUnitTariff
		}

		base, err := BaseQuantity(in.OrderUnitType, in.OrderQuantity, product.UnitConversion)
		if err != nil {
			return err
		}
		if stock, err = s.ledger.Apply(ctx, tx, product.ID, in.BusinessAreaID, -base); err != nil {
			return err
		}

		item = models.OrderItem{
			OrderID:        orderID,
			ProductID:      product.ID,
			BusinessAreaID: in.BusinessAreaID,
			ScheduleID:     in.ScheduleID,
			Quantity:       in.OrderQuantity,
			UnitUsed:       in.OrderUnitType,
			Price:          price,
		}
		if err := tx.AddToOrderTotal(ctx, orderID, item.Subtotal()); err != nil {
			return storageError("Gagal mengubah total order", err)
		}

		items := []models.OrderItem{item}
		if err := tx.CreateOrderItems(ctx, items); err != nil {
			return storageError("Gagal menyimpan item order", err)
		}
		item = items[0]
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, msg := range s.ledger.lowStockMessages([]*models.Stock{stock}) {
		notify.Send(ctx, s.notifier, msg)
	}
	return &item, nil
}

func (s *OrderService) Get(ctx context.Context, id string) (*models.Order, error) {
	order, err := s.store.FindOrder(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, apperror.NotFound("Order tidak ditemukan"), "Gagal mengambil order")
	}
	return order, nil
}

func (s *OrderService) List(ctx context.Context, filter models.OrderFilter) ([]models.Order, error) {
	if filter.Status != "" && filter.Status != models.OrderStatusUnpaid && filter.Status != models.OrderStatusPaid {
		return nil, apperror.Validation("status harus BELUM_LUNAS atau LUNAS")
	}
	orders, err := s.store.ListOrders(ctx, filter)
	if err != nil {
		return nil, storageError("Gagal mengambil daftar order", err)
	}
	return orders, nil
}

// RecordDownPayment mencatat uang muka. DP yang menutup seluruh total
// membuat order LUNAS (dan DP dibatasi sebesar total).
func (s *OrderService) RecordDownPayment(ctx context.Context, id string, dp float64) (*models.Order, error) {
	if dp < 0 {
		return nil, apperror.Validation("DP tidak boleh negatif")
	}

	var order *models.Order
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		var err error
		order, err = tx.LockOrder(ctx, id)
		if err != nil {
			return notFoundOr(err, apperror.NotFound("Order tidak ditemukan"), "Gagal mengambil order")
		}

		order.DP = dp
		order.Status = models.OrderStatusUnpaid
		if dp >= order.TotalPrice {
			order.DP = order.TotalPrice
			order.Status = models.OrderStatusPaid
		}
		return storageError("Gagal menyimpan DP", tx.UpdateOrderPayment(ctx, id, order.DP, order.Status))
	})
	if err != nil {
		return nil, err
	}
	return order, nil
}
