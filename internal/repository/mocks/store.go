// Package mocks berisi implementasi testify dari repository.Store untuk test.
package mocks

import (
	"context"
	"time"

	"clinic-backend/internal/models"
	"clinic-backend/internal/repository"

	"github.com/stretchr/testify/mock"
)

// Store mock repository.Store. Transaction langsung menjalankan callback
// dengan mock yang sama dan menghitung berapa kali transaksi dibuka.
type Store struct {
	mock.Mock
	Transactions int
}

var _ repository.Store = (*Store)(nil)

func (m *Store) Transaction(ctx context.Context, fn func(tx repository.Store) error) error {
	m.Transactions++
	return fn(m)
}

func (m *Store) ListBusinessAreas(ctx context.Context) ([]models.BusinessArea, error) {
	args := m.Called(ctx)
	areas, _ := args.Get(0).([]models.BusinessArea)
	return areas, args.Error(1)
}

func (m *Store) CreateBusinessArea(ctx context.Context, area *models.BusinessArea) error {
	return m.Called(ctx, area).Error(0)
}

func (m *Store) BusinessAreaExists(ctx context.Context, id uint64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *Store) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *Store) FindUser(ctx context.Context, id uint64) (*models.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *Store) CreateUser(ctx context.Context, user *models.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *Store) ListEmployeeTitles(ctx context.Context, businessAreaID *uint64) ([]models.EmployeeTitle, error) {
	args := m.Called(ctx, businessAreaID)
	titles, _ := args.Get(0).([]models.EmployeeTitle)
	return titles, args.Error(1)
}

func (m *Store) EmployeeTitleExists(ctx context.Context, id uint64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *Store) ListEmployees(ctx context.Context, q string) ([]models.EmployeeView, error) {
	args := m.Called(ctx, q)
	rows, _ := args.Get(0).([]models.EmployeeView)
	return rows, args.Error(1)
}

func (m *Store) FindEmployeeByNIP(ctx context.Context, nip string) (*models.Employee, error) {
	args := m.Called(ctx, nip)
	employee, _ := args.Get(0).(*models.Employee)
	return employee, args.Error(1)
}

func (m *Store) CreateEmployee(ctx context.Context, employee *models.Employee) error {
	return m.Called(ctx, employee).Error(0)
}

func (m *Store) FindProduct(ctx context.Context, productID, businessAreaID uint64) (*models.Product, error) {
	args := m.Called(ctx, productID, businessAreaID)
	product, _ := args.Get(0).(*models.Product)
	return product, args.Error(1)
}

func (m *Store) ListProducts(ctx context.Context, businessAreaID uint64) ([]models.Product, error) {
	args := m.Called(ctx, businessAreaID)
	products, _ := args.Get(0).([]models.Product)
	return products, args.Error(1)
}

func (m *Store) ApplyStockDelta(ctx context.Context, productID, businessAreaID uint64, delta int) (*models.Stock, error) {
	args := m.Called(ctx, productID, businessAreaID, delta)
	stock, _ := args.Get(0).(*models.Stock)
	return stock, args.Error(1)
}

func (m *Store) CreatePurchase(ctx context.Context, purchase *models.Purchase) error {
	return m.Called(ctx, purchase).Error(0)
}

func (m *Store) ListPurchases(ctx context.Context, businessAreaID *uint64) ([]models.Purchase, error) {
	args := m.Called(ctx, businessAreaID)
	purchases, _ := args.Get(0).([]models.Purchase)
	return purchases, args.Error(1)
}

func (m *Store) CreateOrder(ctx context.Context, order *models.Order) error {
	return m.Called(ctx, order).Error(0)
}

func (m *Store) FindOrder(ctx context.Context, id string) (*models.Order, error) {
	args := m.Called(ctx, id)
	order, _ := args.Get(0).(*models.Order)
	return order, args.Error(1)
}

func (m *Store) LockOrder(ctx context.Context, id string) (*models.Order, error) {
	args := m.Called(ctx, id)
	order, _ := args.Get(0).(*models.Order)
	return order, args.Error(1)
}

func (m *Store) ListOrders(ctx context.Context, filter models.OrderFilter) ([]models.Order, error) {
	args := m.Called(ctx, filter)
	orders, _ := args.Get(0).([]models.Order)
	return orders, args.Error(1)
}

func (m *Store) AddToOrderTotal(ctx context.Context, id string, amount float64) error {
	return m.Called(ctx, id, amount).Error(0)
}

func (m *Store) UpdateOrderPayment(ctx context.Context, id string, dp float64, status string) error {
	return m.Called(ctx, id, dp, status).Error(0)
}

func (m *Store) SetOrderAttendance(ctx context.Context, id string, status string) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *Store) PaymentRecorded(ctx context.Context, reference string) (bool, error) {
	args := m.Called(ctx, reference)
	return args.Bool(0), args.Error(1)
}

func (m *Store) CreatePaymentTransaction(ctx context.Context, txn *models.PaymentTransaction) error {
	return m.Called(ctx, txn).Error(0)
}

func (m *Store) CreateOrderItems(ctx context.Context, items []models.OrderItem) error {
	return m.Called(ctx, items).Error(0)
}

func (m *Store) LockOrderItem(ctx context.Context, orderID string, itemID uint64) (*models.OrderItem, error) {
	args := m.Called(ctx, orderID, itemID)
	item, _ := args.Get(0).(*models.OrderItem)
	return item, args.Error(1)
}

func (m *Store) MarkOrderItemAssigned(ctx context.Context, itemID uint64) error {
	return m.Called(ctx, itemID).Error(0)
}

func (m *Store) FindOrderItemDetail(ctx context.Context, itemID uint64) (*models.OrderItem, error) {
	args := m.Called(ctx, itemID)
	item, _ := args.Get(0).(*models.OrderItem)
	return item, args.Error(1)
}

func (m *Store) ListPatients(ctx context.Context, q string) ([]models.Patient, error) {
	args := m.Called(ctx, q)
	patients, _ := args.Get(0).([]models.Patient)
	return patients, args.Error(1)
}

func (m *Store) CreatePatient(ctx context.Context, patient *models.Patient) error {
	return m.Called(ctx, patient).Error(0)
}

func (m *Store) ExistingPatientIDs(ctx context.Context, ids []uint64) ([]uint64, error) {
	args := m.Called(ctx, ids)
	found, _ := args.Get(0).([]uint64)
	return found, args.Error(1)
}

func (m *Store) CreateMedicalRecords(ctx context.Context, records []models.MedicalRecord) error {
	return m.Called(ctx, records).Error(0)
}

func (m *Store) ListMedicalRecordsBySchedule(ctx context.Context, scheduleID uint64) ([]models.MedicalRecord, error) {
	args := m.Called(ctx, scheduleID)
	records, _ := args.Get(0).([]models.MedicalRecord)
	return records, args.Error(1)
}

func (m *Store) FindMedicalRecord(ctx context.Context, id uint64) (*models.MedicalRecord, error) {
	args := m.Called(ctx, id)
	record, _ := args.Get(0).(*models.MedicalRecord)
	return record, args.Error(1)
}

func (m *Store) UpdateMedicalRecord(ctx context.Context, id uint64, columns map[string]interface{}) error {
	return m.Called(ctx, id, columns).Error(0)
}

func (m *Store) CreateSchedule(ctx context.Context, schedule *models.Schedule) error {
	return m.Called(ctx, schedule).Error(0)
}

func (m *Store) FindSchedule(ctx context.Context, id uint64) (*models.Schedule, error) {
	args := m.Called(ctx, id)
	schedule, _ := args.Get(0).(*models.Schedule)
	return schedule, args.Error(1)
}

func (m *Store) LockSchedule(ctx context.Context, id uint64) (*models.Schedule, error) {
	args := m.Called(ctx, id)
	schedule, _ := args.Get(0).(*models.Schedule)
	return schedule, args.Error(1)
}

func (m *Store) ListSchedules(ctx context.Context, businessAreaID *uint64, from, to time.Time) ([]models.Schedule, error) {
	args := m.Called(ctx, businessAreaID, from, to)
	schedules, _ := args.Get(0).([]models.Schedule)
	return schedules, args.Error(1)
}

func (m *Store) DecrementScheduleQuota(ctx context.Context, id uint64, amount int) error {
	return m.Called(ctx, id, amount).Error(0)
}

func (m *Store) UpdateScheduleProduct(ctx context.Context, id, productID uint64) error {
	return m.Called(ctx, id, productID).Error(0)
}

func (m *Store) DashboardStats(ctx context.Context, businessAreaID *uint64, lowStockThreshold int) (*models.DashboardStats, error) {
	args := m.Called(ctx, businessAreaID, lowStockThreshold)
	stats, _ := args.Get(0).(*models.DashboardStats)
	return stats, args.Error(1)
}
