package models

import "time"

type Patient struct {
	ID          uint64     `gorm:"primaryKey" json:"id"`
	FullName    string     `gorm:"size:100;not null" json:"full_name"`
	NIK         *string    `gorm:"column:nik;size:30;uniqueIndex" json:"nik"`
	Gender      string     `gorm:"type:enum('L','P')" json:"gender"`
	DateOfBirth *time.Time `gorm:"type:date" json:"date_of_birth"`
	Phone       *string    `gorm:"size:20" json:"phone"`
	CreatedAt   time.Time  `json:"created_at"`
}

// PatientSummary adalah potongan data pasien yang ikut di list rekam medis
type PatientSummary struct {
	ID          uint64     `json:"id"`
	FullName    string     `json:"full_name"`
	Gender      string     `json:"gender"`
	DateOfBirth *time.Time `json:"date_of_birth"`
}

type CreatePatientInput struct {
	FullName    string  `json:"full_name" binding:"required"`
	NIK         *string `json:"nik"`
	Gender      string  `json:"gender" binding:"required,oneof=L P"`
	DateOfBirth string  `json:"date_of_birth"` // YYYY-MM-DD, opsional
	Phone       *string `json:"phone"`
}
