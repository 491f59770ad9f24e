package models

import "time"

type EmployeeTitle struct {
	ID             uint64  `gorm:"primaryKey" json:"id"`
	Name           string  `gorm:"size:100;not null" json:"name"`
	BusinessAreaID *uint64 `gorm:"index" json:"business_area_id,omitempty"`
}

// Employee punya dua natural key unik: NIP dan NIK.
// Nama index dipakai untuk membedakan pelanggaran unique di MySQL.
type Employee struct {
	ID              uint64    `gorm:"primaryKey" json:"id"`
	NIP             string    `gorm:"column:nip;size:30;not null;uniqueIndex:idx_employees_nip" json:"nip"`
	NIK             string    `gorm:"column:nik;size:30;not null;uniqueIndex:idx_employees_nik" json:"nik"`
	FullName        string    `gorm:"size:100;not null" json:"full_name"`
	Gender          string    `gorm:"type:enum('L','P');not null" json:"gender"`
	DateOfBirth     time.Time `gorm:"type:date;not null" json:"date_of_birth"`
	Address         *string   `gorm:"type:text" json:"address"`
	WhatsappNumber  *string   `gorm:"size:20" json:"whatsapp_number"`
	BusinessAreaID  *uint64   `json:"business_area_id"`
	EmployeeTitleID uint64    `gorm:"not null" json:"employee_title_id"`
	UserID          *uint64   `json:"user_id"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`

	BusinessArea  *BusinessArea  `gorm:"foreignKey:BusinessAreaID" json:"business_area,omitempty"`
	EmployeeTitle *EmployeeTitle `gorm:"foreignKey:EmployeeTitleID" json:"employee_title,omitempty"`
	User          *User          `gorm:"foreignKey:UserID" json:"user,omitempty"`
}

// EmployeeView adalah baris list pegawai dengan nama relasi yang sudah di-join
type EmployeeView struct {
	ID                uint64    `json:"id"`
	NIP               string    `json:"nip"`
	NIK               string    `json:"nik"`
	FullName          string    `json:"full_name"`
	Gender            string    `json:"gender"`
	DateOfBirth       time.Time `json:"date_of_birth"`
	WhatsappNumber    *string   `json:"whatsapp_number"`
	BusinessAreaName  *string   `json:"business_area_name"`
	EmployeeTitleName *string   `json:"employee_title_name"`
	UserFullName      *string   `json:"user_full_name"`
}

type CreateEmployeeInput struct {
	NIP             string  `json:"nip"`
	NIK             string  `json:"nik"`
	FullName        string  `json:"full_name"`
	Gender          string  `json:"gender"`
	DateOfBirth     string  `json:"date_of_birth"` // YYYY-MM-DD
	Address         *string `json:"address"`
	WhatsappNumber  *string `json:"whatsapp_number"`
	BusinessAreaID  *uint64 `json:"business_area_id"`
	EmployeeTitleID uint64  `json:"employee_title_id"`
	UserID          *uint64 `json:"user_id"`
}
