package models

import "time"

type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	Duration    int     `gorm:"default:30" json:"duration"`
	Price       float64 `json:"price"`

	CreatedAt time.Time `json:"created_at"`
}
