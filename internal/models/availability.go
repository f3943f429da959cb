package models

import "time"

// Availability é a configuração semanal do barbeiro: um registro por
// (barbeiro, dia da semana 0=domingo..6=sábado). Editada pelo painel
// admin; a rota pública de agendamento só lê.
type Availability struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint `gorm:"uniqueIndex:idx_availability_barber_weekday" json:"barber_id"`
	Weekday  int  `gorm:"uniqueIndex:idx_availability_barber_weekday" json:"day_of_week"`

	StartTime    string `gorm:"size:8" json:"start_time"` // "HH:mm"
	EndTime      string `gorm:"size:8" json:"end_time"`
	SlotDuration int    `gorm:"default:30" json:"slot_duration"` // minutos
	BufferTime   int    `gorm:"default:0" json:"buffer_time"`    // minutos
	Active       bool   `json:"is_active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
