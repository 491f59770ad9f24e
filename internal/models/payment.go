package models

import "time"

// PaymentNotification body HTTP notification Midtrans (field yang dipakai saja)
type PaymentNotification struct {
	OrderID           string `json:"order_id" binding:"required"`
	TransactionStatus string `json:"transaction_status" binding:"required"`
	FraudStatus       string `json:"fraud_status"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	SignatureKey      string `json:"signature_key"`
	PaymentType       string `json:"payment_type"`
}

// PaymentOutcome hasil pemrosesan notifikasi
type PaymentOutcome struct {
	OrderID string `json:"order_id"`
	Status  string `json:"status"`
	Changed bool   `json:"changed"`
}

// PaymentTransaction satu pembayaran Midtrans yang sudah settle.
// Reference unik, notifikasi ulang dengan reference yang sama diabaikan.
type PaymentTransaction struct {
	ID                uint64    `gorm:"primaryKey" json:"id"`
	OrderID           string    `gorm:"size:50;not null;index" json:"order_id"`
	Reference         string    `gorm:"size:80;not null;uniqueIndex:uq_payment_reference" json:"reference"`
	GrossAmount       float64   `gorm:"type:decimal(15,2);not null" json:"gross_amount"`
	TransactionStatus string    `gorm:"size:20;not null" json:"transaction_status"`
	PaymentType       string    `gorm:"size:30" json:"payment_type"`
	CreatedAt         time.Time `json:"created_at"`
}
