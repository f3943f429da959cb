package models

import "time"

type BarberProfile struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"uniqueIndex" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Name            string `gorm:"size:100;not null" json:"name"`
	Bio             string `gorm:"size:500" json:"bio"`
	ExperienceYears int    `json:"experience_years"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
