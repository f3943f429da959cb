package dto

type BookingListDTO struct {
	ID        uint   `json:"id"`
	Reference string `json:"reference"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Status    string `json:"status"`

	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
	ClientPhone string `json:"client_phone"`

	Notes string `json:"notes"`
}
