package models

import "time"

type GalleryImage struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID  uint   `gorm:"index" json:"barber_id"`
	ObjectKey string `gorm:"size:100;uniqueIndex;not null" json:"object_key"`
	URL       string `gorm:"size:255" json:"url"`

	CreatedAt time.Time `json:"created_at"`
}
