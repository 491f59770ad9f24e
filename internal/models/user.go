package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleAdmin = "ADMIN"
	RoleStaff = "STAFF"
)

// User adalah akun login dashboard admin
type User struct {
	ID             uint64         `gorm:"primaryKey" json:"id"`
	Username       string         `gorm:"uniqueIndex;size:50;not null" json:"username"`
	FullName       string         `gorm:"size:100;not null" json:"full_name"`
	PasswordHash   string         `gorm:"not null" json:"-"`
	Role           string         `gorm:"size:20;not null;default:'STAFF'" json:"role"`
	BusinessAreaID *uint64        `json:"business_area_id,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`
}

type LoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
