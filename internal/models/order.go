package models

import "time"

const (
	OrderStatusUnpaid = "BELUM_LUNAS"
	OrderStatusPaid   = "LUNAS"

	AttendancePending  = "BELUM_HADIR"
	AttendanceAttended = "HAS_ATTENDED"
)

type Order struct {
	ID               string    `gorm:"primaryKey;size:50" json:"id"`
	BusinessAreaID   uint64    `gorm:"not null;index" json:"business_area_id"`
	TotalPrice       float64   `gorm:"type:decimal(15,2);not null;default:0" json:"total_price"`
	DP               float64   `gorm:"column:dp;type:decimal(15,2);not null;default:0" json:"dp"`
	Status           string    `gorm:"size:20;not null;default:'BELUM_LUNAS'" json:"status"`
	AttendanceStatus string    `gorm:"size:20;not null;default:'BELUM_HADIR'" json:"attendance_status"`
	CreatedAt        time.Time `gorm:"index" json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	BusinessArea *BusinessArea `gorm:"foreignKey:BusinessAreaID" json:"business_area,omitempty"`
	Items        []OrderItem   `gorm:"foreignKey:OrderID" json:"items,omitempty"`
}

// Outstanding = sisa tagihan setelah DP
func (o *Order) Outstanding() float64 {
	rest := o.TotalPrice - o.DP
	if rest < 0 {
		return 0
	}
	return rest
}

type OrderItem struct {
	ID             uint64    `gorm:"primaryKey" json:"id"`
	OrderID        string    `gorm:"size:50;not null;index" json:"order_id"`
	ProductID      uint64    `gorm:"not null" json:"product_id"`
	BusinessAreaID uint64    `gorm:"not null" json:"business_area_id"`
	ScheduleID     *uint64   `gorm:"index" json:"schedule_id"`
	Quantity       int       `gorm:"not null" json:"quantity"`
	UnitUsed       string    `gorm:"size:10;not null" json:"unit_used"`
	Price          float64   `gorm:"type:decimal(15,2);not null" json:"price"`
	IsAssigned     bool      `gorm:"not null;default:false" json:"is_assigned"`
	CreatedAt      time.Time `json:"created_at"`

	Order        *Order        `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	Product      *Product      `gorm:"foreignKey:ProductID,BusinessAreaID;references:ID,BusinessAreaID" json:"product,omitempty"`
	Schedule     *Schedule     `gorm:"foreignKey:ScheduleID" json:"schedule,omitempty"`
	BusinessArea *BusinessArea `gorm:"foreignKey:BusinessAreaID" json:"business_area,omitempty"`
}

// Subtotal harga item
func (i *OrderItem) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

// OrderLineInput satu baris produk di keranjang checkout.
// Price sudah ditentukan client sesuai satuan yang dipilih.
type OrderLineInput struct {
	ProductID      uint64  `json:"productId"`
	BusinessAreaID uint64  `json:"businessAreaId"`
	OrderQuantity  int     `json:"orderQuantity"`
	OrderUnitType  string  `json:"orderUnitType"`
	Price          float64 `json:"price"`
	UnitConversion int     `json:"unitConversion"` // diabaikan, konversi diambil dari produk
}

type CreateOrderInput struct {
	BusinessAreaID uint64           `json:"business_area_id" binding:"required"`
	Products       []OrderLineInput `json:"products"`
}

type AddItemInput struct {
	ProductID      uint64  `json:"productId" binding:"required"`
	BusinessAreaID uint64  `json:"businessAreaId" binding:"required"`
	OrderUnitType  string  `json:"orderUnitType" binding:"required"`
	OrderQuantity  int     `json:"orderQuantity" binding:"required"`
	ScheduleID     *uint64 `json:"scheduleId"`
}

type AssignPatientsInput struct {
	PatientIDs []uint64 `json:"patient_ids"`
}

type DownPaymentInput struct {
	DP *float64 `json:"dp" binding:"required"`
}

// OrderFilter dipakai untuk list order di dashboard
type OrderFilter struct {
	BusinessAreaID *uint64
	Status         string
	From           *time.Time
	To             *time.Time
}
