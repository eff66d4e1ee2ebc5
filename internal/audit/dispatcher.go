package audit

import (
	"sync"
	"time"
)

type Event struct {
	Action   string
	Entity   string
	EntityID string
	Metadata any
	At       time.Time
}

type Dispatcher struct {
	logger *Logger
	queue  chan Event
	done   chan struct{}
	once   sync.Once
}

func NewDispatcher(logger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		queue:  make(chan Event, 100), // buffer seguro
		done:   make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		if err := d.logger.Log(ev); err != nil {
			d.logger.log.Error().Err(err).Str("action", ev.Action).Msg("audit error")
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	if ev.At.IsZero() {
		ev.At = time.Now()
	}

	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos audit (nunca quebrar a requisição)
		d.logger.log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}

// Close drains the queue and waits for the worker. Dispatch must not be
// called after Close.
func (d *Dispatcher) Close() {
	d.once.Do(func() {
		close(d.queue)
	})
	<-d.done
}
