package models

import "time"

// BusinessArea = satu lokasi klinik
type BusinessArea struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Address   string    `gorm:"type:text" json:"address"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateBusinessAreaInput struct {
	Name    string `json:"name" binding:"required"`
	Address string `json:"address"`
}
