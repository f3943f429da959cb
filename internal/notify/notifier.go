package notify

import (
	"fmt"

	"go.uber.org/zap"
)

// Aviso ao barbeiro sobre um novo agendamento. Estritamente
// fire-and-forget: atraso ou falha aqui nunca derruba a criação.

type Message struct {
	BookingID uint
	Reference string

	ClientName  string
	ClientEmail string
	ClientPhone string

	Date      string
	StartTime string
	EndTime   string
	Status    string
	Notes     string
}

func (m Message) Subject() string {
	return fmt.Sprintf("New Booking: %s", m.ClientName)
}

func (m Message) Body() string {
	body := fmt.Sprintf(
		"Client: %s\nEmail: %s\nPhone: %s\nDate: %s\nTime: %s - %s\nStatus: %s",
		orDefault(m.ClientName, "Not provided"),
		orDefault(m.ClientEmail, "Not provided"),
		orDefault(m.ClientPhone, "Not provided"),
		m.Date,
		m.StartTime,
		m.EndTime,
		m.Status,
	)
	if m.Notes != "" {
		body += "\nNotes: " + m.Notes
	}
	return body
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

// Sender entrega o aviso em si (e-mail, webhook). A entrega atual
// registra o conteúdo no log, como fazia o endpoint de notificação
// original.
type Sender interface {
	Send(msg Message) error
}

type LogSender struct {
	logger *zap.Logger
}

func NewLogSender(logger *zap.Logger) *LogSender {
	return &LogSender{logger: logger}
}

func (s *LogSender) Send(msg Message) error {
	s.logger.Info("booking notification",
		zap.Uint("booking_id", msg.BookingID),
		zap.String("subject", msg.Subject()),
		zap.String("body", msg.Body()),
	)
	return nil
}
