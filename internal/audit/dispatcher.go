package audit

import "log"

type Event struct {
	PropertyID uint
	UserID     *uint
	Action     string
	Entity     string
	EntityID   string
	Metadata   any
}

// Sink recebe os eventos drenados da fila; em produção é o Logger
type Sink interface {
	Log(
		propertyID uint,
		userID *uint,
		action string,
		entity string,
		entityID string,
		metadata any,
	) error
}

type Dispatcher struct {
	sink  Sink
	queue chan Event
}

func NewDispatcher(sink Sink) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Event, 100), // buffer seguro
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.sink.Log(
			ev.PropertyID,
			ev.UserID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			log.Println("audit error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos audit (nunca quebrar API)
		log.Println("audit queue full, dropping event")
	}
}
