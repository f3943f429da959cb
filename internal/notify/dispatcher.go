package notify

import "go.uber.org/zap"

type Dispatcher struct {
	sender Sender
	queue  chan Message
	logger *zap.Logger
}

func NewDispatcher(sender Sender, logger *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		queue:  make(chan Message, 100),
		logger: logger,
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for msg := range d.queue {
		if err := d.sender.Send(msg); err != nil {
			d.logger.Warn("notification failed",
				zap.Uint("booking_id", msg.BookingID),
				zap.Error(err),
			)
		}
	}
}

// Dispatch nunca bloqueia a resposta do agendamento: com a fila
// cheia, descartamos o aviso.
func (d *Dispatcher) Dispatch(msg Message) {
	select {
	case d.queue <- msg:
	default:
		d.logger.Warn("notification queue full, dropping",
			zap.Uint("booking_id", msg.BookingID),
		)
	}
}
