package booking

import "github.com/sharpfade/barber-booking/internal/httperr"

// ===============================
// Booking Status
// ===============================

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// OccupyingStatuses são os status que bloqueiam horário: um agendamento
// cancelado ou concluído libera o slot imediatamente.
var OccupyingStatuses = []string{
	string(StatusPending),
	string(StatusConfirmed),
}

func IsOccupying(s Status) bool {
	return s == StatusPending || s == StatusConfirmed
}

// ===============================
// Validations
// ===============================

// CanCancel: cancelled e completed são terminais
func CanCancel(current Status) error {
	if !IsOccupying(current) {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// CanComplete: só agendamentos ativos podem ser concluídos
func CanComplete(current Status) error {
	if !IsOccupying(current) {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

// InitialStatus: o fluxo público confirma na criação, sem etapa de aprovação
func InitialStatus() Status {
	return StatusConfirmed
}
