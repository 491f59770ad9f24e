package repository

import (
	"context"
	"errors"
	"time"

	"clinic-backend/internal/models"
)

// ErrInsufficientStock dikembalikan ApplyStockDelta kalau pengurangan
// akan membuat stok negatif.
var ErrInsufficientStock = errors.New("stok tidak mencukupi")

// Store adalah semua akses data yang dipakai service.
// Transaction menjalankan fn dalam satu transaksi database; Store yang
// diterima fn terikat ke transaksi itu.
type Store interface {
	Transaction(ctx context.Context, fn func(tx Store) error) error

	ListBusinessAreas(ctx context.Context) ([]models.BusinessArea, error)
	CreateBusinessArea(ctx context.Context, area *models.BusinessArea) error
	BusinessAreaExists(ctx context.Context, id uint64) (bool, error)

	FindUserByUsername(ctx context.Context, username string) (*models.User, error)
	FindUser(ctx context.Context, id uint64) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error

	ListEmployeeTitles(ctx context.Context, businessAreaID *uint64) ([]models.EmployeeTitle, error)
	EmployeeTitleExists(ctx context.Context, id uint64) (bool, error)
	ListEmployees(ctx context.Context, q string) ([]models.EmployeeView, error)
	FindEmployeeByNIP(ctx context.Context, nip string) (*models.Employee, error)
	CreateEmployee(ctx context.Context, employee *models.Employee) error

	FindProduct(ctx context.Context, productID, businessAreaID uint64) (*models.Product, error)
	ListProducts(ctx context.Context, businessAreaID uint64) ([]models.Product, error)
	ApplyStockDelta(ctx context.Context, productID, businessAreaID uint64, delta int) (*models.Stock, error)
	CreatePurchase(ctx context.Context, purchase *models.Purchase) error
	ListPurchases(ctx context.Context, businessAreaID *uint64) ([]models.Purchase, error)

	CreateOrder(ctx context.Context, order *models.Order) error
	FindOrder(ctx context.Context, id string) (*models.Order, error)
	LockOrder(ctx context.Context, id string) (*models.Order, error)
	ListOrders(ctx context.Context, filter models.OrderFilter) ([]models.Order, error)
	AddToOrderTotal(ctx context.Context, id string, amount float64) error
	UpdateOrderPayment(ctx context.Context, id string, dp float64, status string) error
	SetOrderAttendance(ctx context.Context, id string, status string) error

	PaymentRecorded(ctx context.Context, reference string) (bool, error)
	CreatePaymentTransaction(ctx context.Context, txn *models.PaymentTransaction) error

	CreateOrderItems(ctx context.Context, items []models.OrderItem) error
	LockOrderItem(ctx context.Context, orderID string, itemID uint64) (*models.OrderItem, error)
	MarkOrderItemAssigned(ctx context.Context, itemID uint64) error
	FindOrderItemDetail(ctx context.Context, itemID uint64) (*models.OrderItem, error)

	ListPatients(ctx context.Context, q string) ([]models.Patient, error)
	CreatePatient(ctx context.Context, patient *models.Patient) error
	ExistingPatientIDs(ctx context.Context, ids []uint64) ([]uint64, error)

	CreateMedicalRecords(ctx context.Context, records []models.MedicalRecord) error
	ListMedicalRecordsBySchedule(ctx context.Context, scheduleID uint64) ([]models.MedicalRecord, error)
	FindMedicalRecord(ctx context.Context, id uint64) (*models.MedicalRecord, error)
	UpdateMedicalRecord(ctx context.Context, id uint64, columns map[string]interface{}) error

	CreateSchedule(ctx context.Context, schedule *models.Schedule) error
	FindSchedule(ctx context.Context, id uint64) (*models.Schedule, error)
	LockSchedule(ctx context.Context, id uint64) (*models.Schedule, error)
	ListSchedules(ctx context.Context, businessAreaID *uint64, from, to time.Time) ([]models.Schedule, error)
	DecrementScheduleQuota(ctx context.Context, id uint64, amount int) error
	UpdateScheduleProduct(ctx context.Context, id, productID uint64) error

	DashboardStats(ctx context.Context, businessAreaID *uint64, lowStockThreshold int) (*models.DashboardStats, error)
}
