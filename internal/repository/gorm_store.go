package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"clinic-backend/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrQuotaExceeded dikembalikan DecrementScheduleQuota kalau sisa kuota kurang
var ErrQuotaExceeded = errors.New("kuota jadwal tidak mencukupi")

// Repository implementasi Store di atas gorm (MySQL)
type Repository struct {
	db        *gorm.DB
	isolation sql.IsolationLevel
}

func New(db *gorm.DB, isolation sql.IsolationLevel) *Repository {
	return &Repository{db: db, isolation: isolation}
}

func (r *Repository) conn(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

func (r *Repository) Transaction(ctx context.Context, fn func(tx Store) error) error {
	return r.conn(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Repository{db: tx, isolation: r.isolation})
	}, &sql.TxOptions{Isolation: r.isolation})
}

func forUpdate() clause.Expression {
	return clause.Locking{Strength: "UPDATE"}
}

func byBusinessArea(column string, id *uint64) func(*gorm.DB) *gorm.DB {
	return func(q *gorm.DB) *gorm.DB {
		if id == nil {
			return q
		}
		return q.Where(column+" = ?", *id)
	}
}

// ===== Business area =====

func (r *Repository) ListBusinessAreas(ctx context.Context) ([]models.BusinessArea, error) {
	var areas []models.BusinessArea
	if err := r.conn(ctx).Order("name asc").Find(&areas).Error; err != nil {
		return nil, fmt.Errorf("list business areas: %w", err)
	}
	return areas, nil
}

func (r *Repository) CreateBusinessArea(ctx context.Context, area *models.BusinessArea) error {
	if err := r.conn(ctx).Create(area).Error; err != nil {
		return fmt.Errorf("create business area: %w", err)
	}
	return nil
}

func (r *Repository) BusinessAreaExists(ctx context.Context, id uint64) (bool, error) {
	var count int64
	if err := r.conn(ctx).Model(&models.BusinessArea{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check business area %d: %w", id, err)
	}
	return count > 0, nil
}

// ===== User =====

func (r *Repository) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	if err := r.conn(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, fmt.Errorf("find user %q: %w", username, err)
	}
	return &user, nil
}

func (r *Repository) FindUser(ctx context.Context, id uint64) (*models.User, error) {
	var user models.User
	if err := r.conn(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		return nil, fmt.Errorf("find user %d: %w", id, err)
	}
	return &user, nil
}

func (r *Repository) CreateUser(ctx context.Context, user *models.User) error {
	if err := r.conn(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("create user: %w", err)
	}
	return nil
}

// ===== Employee =====

func (r *Repository) ListEmployeeTitles(ctx context.Context, businessAreaID *uint64) ([]models.EmployeeTitle, error) {
	var titles []models.EmployeeTitle
	err := r.conn(ctx).
		Select("id", "name").
		Scopes(byBusinessArea("business_area_id", businessAreaID)).
		Order("name asc").
		Find(&titles).Error
	if err != nil {
		return nil, fmt.Errorf("list employee titles: %w", err)
	}
	return titles, nil
}

func (r *Repository) EmployeeTitleExists(ctx context.Context, id uint64) (bool, error) {
	var count int64
	if err := r.conn(ctx).Model(&models.EmployeeTitle{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("check employee title %d: %w", id, err)
	}
	return count > 0, nil
}

func (r *Repository) ListEmployees(ctx context.Context, q string) ([]models.EmployeeView, error) {
	query := r.conn(ctx).
		Table("employees AS e").
		Select(`e.id, e.nip, e.nik, e.full_name, e.gender, e.date_of_birth, e.whatsapp_number,
			ba.name AS business_area_name, et.name AS employee_title_name, u.full_name AS user_full_name`).
		Joins("LEFT JOIN business_areas ba ON ba.id = e.business_area_id").
		Joins("LEFT JOIN employee_titles et ON et.id = e.employee_title_id").
		Joins("LEFT JOIN users u ON u.id = e.user_id")

	if q != "" {
		like := "%" + q + "%"
		query = query.Where("e.full_name LIKE ? OR e.nip LIKE ? OR e.nik LIKE ?", like, like, like)
	}

	var rows []models.EmployeeView
	if err := query.Order("e.full_name asc").Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	return rows, nil
}

func (r *Repository) FindEmployeeByNIP(ctx context.Context, nip string) (*models.Employee, error) {
	var employee models.Employee
	err := r.conn(ctx).
		Preload("BusinessArea").
		Preload("EmployeeTitle").
		Preload("User").
		Where("nip = ?", nip).
		First(&employee).Error
	if err != nil {
		return nil, fmt.Errorf("find employee %q: %w", nip, err)
	}
	return &employee, nil
}

func (r *Repository) CreateEmployee(ctx context.Context, employee *models.Employee) error {
	if err := r.conn(ctx).Omit(clause.Associations).Create(employee).Error; err != nil {
		return fmt.Errorf("create employee: %w", err)
	}
	return nil
}

// ===== Product & stock =====

func (r *Repository) FindProduct(ctx context.Context, productID, businessAreaID uint64) (*models.Product, error) {
	var product models.Product
	err := r.conn(ctx).
		Where("id = ? AND business_area_id = ?", productID, businessAreaID).
		First(&product).Error
	if err != nil {
		return nil, fmt.Errorf("find product %d/%d: %w", productID, businessAreaID, err)
	}
	return &product, nil
}

func (r *Repository) ListProducts(ctx context.Context, businessAreaID uint64) ([]models.Product, error) {
	var products []models.Product
	err := r.conn(ctx).
		Preload("Stock").
		Where("business_area_id = ?", businessAreaID).
		Order("name asc").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// ApplyStockDelta menambah delta ke stok (product, business area).
// Delta positif membuat baris stok kalau belum ada. Delta negatif hanya
// berhasil kalau hasilnya tidak negatif; baris yang tidak ada menghasilkan
// gorm.ErrRecordNotFound, stok kurang menghasilkan ErrInsufficientStock.
func (r *Repository) ApplyStockDelta(ctx context.Context, productID, businessAreaID uint64, delta int) (*models.Stock, error) {
	db := r.conn(ctx)

	if delta >= 0 {
		stock := models.Stock{ProductID: productID, BusinessAreaID: businessAreaID, Quantity: delta}
		err := db.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "product_id"}, {Name: "business_area_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"quantity":   gorm.Expr("quantity + ?", delta),
				"updated_at": time.Now(),
			}),
		}).Create(&stock).Error
		if err != nil {
			return nil, fmt.Errorf("increase stock %d/%d: %w", productID, businessAreaID, err)
		}
	} else {
		res := db.Model(&models.Stock{}).
			Where("product_id = ? AND business_area_id = ? AND quantity >= ?", productID, businessAreaID, -delta).
			Updates(map[string]interface{}{"quantity": gorm.Expr("quantity + ?", delta)})
		if res.Error != nil {
			return nil, fmt.Errorf("decrease stock %d/%d: %w", productID, businessAreaID, res.Error)
		}
		if res.RowsAffected == 0 {
			var count int64
			if err := db.Model(&models.Stock{}).
				Where("product_id = ? AND business_area_id = ?", productID, businessAreaID).
				Count(&count).Error; err != nil {
				return nil, fmt.Errorf("check stock %d/%d: %w", productID, businessAreaID, err)
			}
			if count == 0 {
				return nil, fmt.Errorf("stock %d/%d: %w", productID, businessAreaID, gorm.ErrRecordNotFound)
			}
			return nil, fmt.Errorf("stock %d/%d: %w", productID, businessAreaID, ErrInsufficientStock)
		}
	}

	var stock models.Stock
	if err := db.Where("product_id = ? AND business_area_id = ?", productID, businessAreaID).First(&stock).Error; err != nil {
		return nil, fmt.Errorf("reload stock %d/%d: %w", productID, businessAreaID, err)
	}
	return &stock, nil
}

func (r *Repository) CreatePurchase(ctx context.Context, purchase *models.Purchase) error {
	if err := r.conn(ctx).Create(purchase).Error; err != nil {
		return fmt.Errorf("create purchase: %w", err)
	}
	return nil
}

func (r *Repository) ListPurchases(ctx context.Context, businessAreaID *uint64) ([]models.Purchase, error) {
	var purchases []models.Purchase
	err := r.conn(ctx).
		Scopes(byBusinessArea("business_area_id", businessAreaID)).
		Order("created_at desc").
		Find(&purchases).Error
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	return purchases, nil
}

// ===== Order =====

func (r *Repository) CreateOrder(ctx context.Context, order *models.Order) error {
	if err := r.conn(ctx).Omit(clause.Associations).Create(order).Error; err != nil {
		return fmt.Errorf("create order: %w", err)
	}
	return nil
}

func (r *Repository) FindOrder(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := r.conn(ctx).
		Preload("BusinessArea").
		Preload("Items").
		Preload("Items.Product").
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		return nil, fmt.Errorf("find order %s: %w", id, err)
	}
	return &order, nil
}

func (r *Repository) LockOrder(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	if err := r.conn(ctx).Clauses(forUpdate()).Where("id = ?", id).First(&order).Error; err != nil {
		return nil, fmt.Errorf("lock order %s: %w", id, err)
	}
	return &order, nil
}

func (r *Repository) ListOrders(ctx context.Context, filter models.OrderFilter) ([]models.Order, error) {
	query := r.conn(ctx).
		Preload("BusinessArea").
		Scopes(byBusinessArea("business_area_id", filter.BusinessAreaID))

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.From != nil {
		query = query.Where("created_at >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("created_at < ?", *filter.To)
	}

	var orders []models.Order
	if err := query.Order("created_at desc").Find(&orders).Error; err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// AddToOrderTotal menambah total_price dan mengembalikan status ke BELUM_LUNAS
func (r *Repository) AddToOrderTotal(ctx context.Context, id string, amount float64) error {
	err := r.conn(ctx).Model(&models.Order{}).Where("id = ?", id).Updates(map[string]interface{}{
		"total_price": gorm.Expr("total_price + ?", amount),
		"status":      models.OrderStatusUnpaid,
	}).Error
	if err != nil {
		return fmt.Errorf("update order total %s: %w", id, err)
	}
	return nil
}

func (r *Repository) UpdateOrderPayment(ctx context.Context, id string, dp float64, status string) error {
	err := r.conn(ctx).Model(&models.Order{}).Where("id = ?", id).Updates(map[string]interface{}{
		"dp":     dp,
		"status": status,
	}).Error
	if err != nil {
		return fmt.Errorf("update order payment %s: %w", id, err)
	}
	return nil
}

func (r *Repository) PaymentRecorded(ctx context.Context, reference string) (bool, error) {
	var count int64
	err := r.conn(ctx).Model(&models.PaymentTransaction{}).Where("reference = ?", reference).Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("check payment %s: %w", reference, err)
	}
	return count > 0, nil
}

func (r *Repository) CreatePaymentTransaction(ctx context.Context, txn *models.PaymentTransaction) error {
	if err := r.conn(ctx).Create(txn).Error; err != nil {
		return fmt.Errorf("create payment %s: %w", txn.Reference, err)
	}
	return nil
}

func (r *Repository) SetOrderAttendance(ctx context.Context, id string, status string) error {
	err := r.conn(ctx).Model(&models.Order{}).Where("id = ?", id).Update("attendance_status", status).Error
	if err != nil {
		return fmt.Errorf("update order attendance %s: %w", id, err)
	}
	return nil
}

// ===== Order item =====

func (r *Repository) CreateOrderItems(ctx context.Context, items []models.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	if err := r.conn(ctx).Omit(clause.Associations).Create(&items).Error; err != nil {
		return fmt.Errorf("create order items: %w", err)
	}
	return nil
}

func (r *Repository) LockOrderItem(ctx context.Context, orderID string, itemID uint64) (*models.OrderItem, error) {
	var item models.OrderItem
	err := r.conn(ctx).
		Clauses(forUpdate()).
		Where("id = ? AND order_id = ?", itemID, orderID).
		First(&item).Error
	if err != nil {
		return nil, fmt.Errorf("lock order item %d: %w", itemID, err)
	}
	return &item, nil
}

func (r *Repository) MarkOrderItemAssigned(ctx context.Context, itemID uint64) error {
	err := r.conn(ctx).Model(&models.OrderItem{}).Where("id = ?", itemID).Update("is_assigned", true).Error
	if err != nil {
		return fmt.Errorf("mark order item %d assigned: %w", itemID, err)
	}
	return nil
}

func (r *Repository) FindOrderItemDetail(ctx context.Context, itemID uint64) (*models.OrderItem, error) {
	var item models.OrderItem
	err := r.conn(ctx).
		Preload("Schedule").
		Preload("Product").
		Preload("Order").
		Preload("BusinessArea").
		Where("id = ?", itemID).
		First(&item).Error
	if err != nil {
		return nil, fmt.Errorf("find order item %d: %w", itemID, err)
	}
	return &item, nil
}

// ===== Patient =====

func (r *Repository) ListPatients(ctx context.Context, q string) ([]models.Patient, error) {
	query := r.conn(ctx).Model(&models.Patient{})
	if q != "" {
		like := "%" + q + "%"
		query = query.Where("full_name LIKE ? OR nik LIKE ?", like, like)
	}

	var patients []models.Patient
	if err := query.Order("full_name asc").Limit(100).Find(&patients).Error; err != nil {
		return nil, fmt.Errorf("list patients: %w", err)
	}
	return patients, nil
}

func (r *Repository) CreatePatient(ctx context.Context, patient *models.Patient) error {
	if err := r.conn(ctx).Create(patient).Error; err != nil {
		return fmt.Errorf("create patient: %w", err)
	}
	return nil
}

func (r *Repository) ExistingPatientIDs(ctx context.Context, ids []uint64) ([]uint64, error) {
	var found []uint64
	if len(ids) == 0 {
		return found, nil
	}
	if err := r.conn(ctx).Model(&models.Patient{}).Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return nil, fmt.Errorf("check patients: %w", err)
	}
	return found, nil
}

// ===== Medical record =====

func (r *Repository) CreateMedicalRecords(ctx context.Context, records []models.MedicalRecord) error {
	if len(records) == 0 {
		return nil
	}
	if err := r.conn(ctx).Omit(clause.Associations).Create(&records).Error; err != nil {
		return fmt.Errorf("create medical records: %w", err)
	}
	return nil
}

func (r *Repository) ListMedicalRecordsBySchedule(ctx context.Context, scheduleID uint64) ([]models.MedicalRecord, error) {
	var records []models.MedicalRecord
	err := r.conn(ctx).
		Preload("Patient").
		Where("schedule_id = ?", scheduleID).
		Order("id asc").
		Find(&records).Error
	if err != nil {
		return nil, fmt.Errorf("list medical records: %w", err)
	}
	return records, nil
}

func (r *Repository) FindMedicalRecord(ctx context.Context, id uint64) (*models.MedicalRecord, error) {
	var record models.MedicalRecord
	if err := r.conn(ctx).Preload("Patient").Where("id = ?", id).First(&record).Error; err != nil {
		return nil, fmt.Errorf("find medical record %d: %w", id, err)
	}
	return &record, nil
}

func (r *Repository) UpdateMedicalRecord(ctx context.Context, id uint64, columns map[string]interface{}) error {
	if err := r.conn(ctx).Model(&models.MedicalRecord{}).Where("id = ?", id).Updates(columns).Error; err != nil {
		return fmt.Errorf("update medical record %d: %w", id, err)
	}
	return nil
}

// ===== Schedule =====

func (r *Repository) CreateSchedule(ctx context.Context, schedule *models.Schedule) error {
	if err := r.conn(ctx).Omit(clause.Associations).Create(schedule).Error; err != nil {
		return fmt.Errorf("create schedule: %w", err)
	}
	return nil
}

func (r *Repository) FindSchedule(ctx context.Context, id uint64) (*models.Schedule, error) {
	var schedule models.Schedule
	err := r.conn(ctx).
		Preload("BusinessArea").
		Preload("Product").
		Where("id = ?", id).
		First(&schedule).Error
	if err != nil {
		return nil, fmt.Errorf("find schedule %d: %w", id, err)
	}
	return &schedule, nil
}

func (r *Repository) LockSchedule(ctx context.Context, id uint64) (*models.Schedule, error) {
	var schedule models.Schedule
	if err := r.conn(ctx).Clauses(forUpdate()).Where("id = ?", id).First(&schedule).Error; err != nil {
		return nil, fmt.Errorf("lock schedule %d: %w", id, err)
	}
	return &schedule, nil
}

func (r *Repository) ListSchedules(ctx context.Context, businessAreaID *uint64, from, to time.Time) ([]models.Schedule, error) {
	var schedules []models.Schedule
	err := r.conn(ctx).
		Preload("Product").
		Scopes(byBusinessArea("business_area_id", businessAreaID)).
		Where("start_time >= ? AND start_time < ?", from, to).
		Order("start_time asc").
		Find(&schedules).Error
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	return schedules, nil
}

func (r *Repository) DecrementScheduleQuota(ctx context.Context, id uint64, amount int) error {
	res := r.conn(ctx).Model(&models.Schedule{}).
		Where("id = ? AND remaining_quota >= ?", id, amount).
		Update("remaining_quota", gorm.Expr("remaining_quota - ?", amount))
	if res.Error != nil {
		return fmt.Errorf("decrement schedule quota %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		var count int64
		if err := r.conn(ctx).Model(&models.Schedule{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return fmt.Errorf("check schedule %d: %w", id, err)
		}
		if count == 0 {
			return fmt.Errorf("schedule %d: %w", id, gorm.ErrRecordNotFound)
		}
		return fmt.Errorf("schedule %d: %w", id, ErrQuotaExceeded)
	}
	return nil
}

func (r *Repository) UpdateScheduleProduct(ctx context.Context, id, productID uint64) error {
	err := r.conn(ctx).Model(&models.Schedule{}).Where("id = ?", id).Update("product_id", productID).Error
	if err != nil {
		return fmt.Errorf("update schedule product %d: %w", id, err)
	}
	return nil
}

// ===== Dashboard =====

func (r *Repository) DashboardStats(ctx context.Context, businessAreaID *uint64, lowStockThreshold int) (*models.DashboardStats, error) {
	db := r.conn(ctx)
	scope := byBusinessArea("business_area_id", businessAreaID)
	stats := &models.DashboardStats{LowStockThreshold: lowStockThreshold}

	if err := db.Model(&models.Order{}).Scopes(scope).
		Where("status = ?", models.OrderStatusUnpaid).
		Count(&stats.UnpaidOrders).Error; err != nil {
		return nil, fmt.Errorf("count unpaid orders: %w", err)
	}

	var revenue struct {
		Total float64
	}
	if err := db.Model(&models.Order{}).Scopes(scope).
		Where("status = ?", models.OrderStatusPaid).
		Select("COALESCE(SUM(total_price), 0) AS total").
		Scan(&revenue).Error; err != nil {
		return nil, fmt.Errorf("sum paid revenue: %w", err)
	}
	stats.PaidRevenue = revenue.Total

	if err := db.Model(&models.OrderItem{}).Scopes(scope).
		Where("is_assigned = ?", false).
		Count(&stats.UnassignedItems).Error; err != nil {
		return nil, fmt.Errorf("count unassigned items: %w", err)
	}

	if err := db.Model(&models.Stock{}).Scopes(scope).
		Where("quantity <= ?", lowStockThreshold).
		Count(&stats.LowStockProducts).Error; err != nil {
		return nil, fmt.Errorf("count low stock: %w", err)
	}

	return stats, nil
}

var _ Store = (*Repository)(nil)
