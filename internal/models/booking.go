package models

import "time"

// Booking guarda o horário em minutos desde a meia-noite, no relógio
// local da barbearia (a coluna date não carrega timezone). A exclusão
// de conflitos é garantida em última instância pela constraint de
// exclusão criada em internal/db.
type Booking struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	BarberID uint          `gorm:"index:idx_bookings_barber_date" json:"barber_id"`
	Barber   BarberProfile `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	Date        string `gorm:"size:10;index:idx_bookings_barber_date" json:"date"` // "2006-01-02"
	StartMinute int    `json:"-"`
	EndMinute   int    `json:"-"`

	Status string `gorm:"size:20;default:'confirmed'" json:"status"`
	Notes  string `gorm:"size:255" json:"notes"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
