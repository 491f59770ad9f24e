package models

import "time"

const (
	UnitLarge = "LARGE"
	UnitSmall = "SMALL"
)

// Product dimiliki per klinik, jadi primary key-nya komposit.
// UnitConversion = jumlah satuan kecil dalam satu satuan besar.
type Product struct {
	ID              uint64  `gorm:"primaryKey;autoIncrement:false" json:"id"`
	BusinessAreaID  uint64  `gorm:"primaryKey;autoIncrement:false" json:"business_area_id"`
	Name            string  `gorm:"size:150;not null" json:"name"`
	Tariff          float64 `gorm:"type:decimal(15,2);not null;default:0" json:"tariff"`
	SmallUnitTariff float64 `gorm:"type:decimal(15,2);not null;default:0" json:"small_unit_tariff"`
	UnitConversion  int     `gorm:"not null;default:1" json:"unit_conversion"`
	IsService       bool    `gorm:"default:false" json:"is_service"`

	Stock *Stock `gorm:"foreignKey:ProductID,BusinessAreaID;references:ID,BusinessAreaID" json:"stock,omitempty"`
}

// Stock disimpan dalam satuan kecil
type Stock struct {
	ProductID      uint64    `gorm:"primaryKey;autoIncrement:false" json:"product_id"`
	BusinessAreaID uint64    `gorm:"primaryKey;autoIncrement:false" json:"business_area_id"`
	Quantity       int       `gorm:"not null;default:0" json:"quantity"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// Purchase adalah catatan restock yang tidak pernah diubah lagi
type Purchase struct {
	ID             uint64    `gorm:"primaryKey" json:"id"`
	ProductID      uint64    `gorm:"not null;index:idx_purchases_product" json:"product_id"`
	BusinessAreaID uint64    `gorm:"not null;index:idx_purchases_product" json:"business_area_id"`
	PONumber       string    `gorm:"column:po_number;size:50;not null" json:"po_number"`
	Quantity       int       `gorm:"not null" json:"quantity"`
	BaseQuantity   int       `gorm:"not null" json:"base_quantity"`
	TotalAmount    float64   `gorm:"type:decimal(15,2);not null" json:"total_amount"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreatePurchaseInput struct {
	ProductBusinessAreaID uint64  `json:"product_business_area_id" binding:"required"`
	ProductID             uint64  `json:"product_id" binding:"required"`
	PONumber              string  `json:"po_number" binding:"required"`
	Quantity              int     `json:"quantity" binding:"required"`
	TotalAmount           float64 `json:"total_amount"`
}
