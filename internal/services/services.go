// Package services berisi aturan bisnis klinik di atas repository.Store.
package services

import (
	"time"

	"clinic-backend/internal/notify"
	"clinic-backend/internal/payment"
	"clinic-backend/internal/repository"
)

type Deps struct {
	Store             repository.Store
	Notifier          notify.Notifier
	Gateway           payment.Gateway
	JWTSecret         string
	JWTTTL            time.Duration
	DefaultTimezone   string
	LowStockThreshold int
}

// Services semua service yang di-inject ke handler
type Services struct {
	Orders     *OrderService
	Assignment *AssignmentService
	Schedules  *ScheduleService
	Purchases  *PurchaseService
	Employees  *EmployeeService
	Records    *MedicalRecordService
	Catalog    *CatalogService
	Payments   *PaymentService
	Auth       *AuthService
	Dashboard  *DashboardService

	// DefaultTimezone dipakai filter tanggal kalau client tidak mengirim tz
	DefaultTimezone string
}

func New(d Deps) *Services {
	if d.Notifier == nil {
		d.Notifier = notify.Noop{}
	}
	ledger := NewLedger(d.LowStockThreshold)

	return &Services{
		Orders:     NewOrderService(d.Store, ledger, d.Notifier),
		Assignment: NewAssignmentService(d.Store, d.Notifier),
		Schedules:  NewScheduleService(d.Store, d.DefaultTimezone),
		Purchases:  NewPurchaseService(d.Store, ledger),
		Employees:  NewEmployeeService(d.Store),
		Records:    NewMedicalRecordService(d.Store),
		Catalog:    NewCatalogService(d.Store),
		Payments:   NewPaymentService(d.Store, d.Gateway, d.Notifier),
		Auth:       NewAuthService(d.Store, d.JWTSecret, d.JWTTTL),
		Dashboard:  NewDashboardService(d.Store, d.LowStockThreshold),

		DefaultTimezone: d.DefaultTimezone,
	}
}
