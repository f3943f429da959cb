package audit

import "go.uber.org/zap"

type Event struct {
	UserID   *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Sink grava o evento em si; em produção é o Logger com gorm.
type Sink interface {
	Log(userID *uint, action string, entity string, entityID *uint, metadata any) error
}

type Dispatcher struct {
	sink    Sink
	queue   chan Event
	zlogger *zap.Logger
}

func NewDispatcher(sink Sink, zlogger *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		sink:    sink,
		queue:   make(chan Event, 100),
		zlogger: zlogger,
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.sink.Log(
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			d.zlogger.Warn("audit error", zap.String("action", ev.Action), zap.Error(err))
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// fila cheia: descartamos audit (nunca quebrar a API)
		d.zlogger.Warn("audit queue full, dropping event", zap.String("action", ev.Action))
	}
}
