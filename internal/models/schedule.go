package models

import "time"

type Schedule struct {
	ID             uint64    `gorm:"primaryKey" json:"id"`
	BusinessAreaID uint64    `gorm:"not null;index" json:"business_area_id"`
	ProductID      uint64    `gorm:"not null" json:"product_id"`
	StartTime      time.Time `gorm:"not null;index" json:"start_time"`
	EndTime        time.Time `gorm:"not null" json:"end_time"`
	MaxQuota       int       `gorm:"not null" json:"max_quota"`
	RemainingQuota int       `gorm:"not null" json:"remaining_quota"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	BusinessArea *BusinessArea `gorm:"foreignKey:BusinessAreaID" json:"business_area,omitempty"`
	Product      *Product      `gorm:"foreignKey:ProductID,BusinessAreaID;references:ID,BusinessAreaID" json:"product,omitempty"`
}

type CreateScheduleInput struct {
	BusinessAreaID uint64    `json:"business_area_id" binding:"required"`
	ProductID      uint64    `json:"product_id" binding:"required"`
	StartTime      time.Time `json:"start_time" binding:"required"`
	EndTime        time.Time `json:"end_time" binding:"required"`
	MaxQuota       int       `json:"max_quota" binding:"required"`
}

type SubtractQuotaInput struct {
	QuantityToSubtract *int `json:"quantity_to_subtract" binding:"required"`
}

type ChangeServiceInput struct {
	NewServiceID uint64 `json:"newServiceId" binding:"required"`
}

// DashboardStats ringkasan untuk halaman depan admin
type DashboardStats struct {
	UnpaidOrders      int64   `json:"unpaid_orders"`
	PaidRevenue       float64 `json:"paid_revenue"`
	UnassignedItems   int64   `json:"unassigned_items"`
	LowStockProducts  int64   `json:"low_stock_products"`
	LowStockThreshold int     `json:"low_stock_threshold"`
}
