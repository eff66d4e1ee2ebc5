package audit

import (
	"encoding/json"

	"github.com/rs/zerolog"
)

// Logger grava eventos de auditoria como linhas estruturadas no log.
type Logger struct {
	log zerolog.Logger
}

func New(log zerolog.Logger) *Logger {
	return &Logger{log: log.With().Str("component", "audit").Logger()}
}

func (l *Logger) Log(ev Event) error {
	var meta []byte
	if ev.Metadata != nil {
		b, err := json.Marshal(ev.Metadata)
		if err != nil {
			return err
		}
		meta = b
	}

	evt := l.log.Info().
		Str("action", ev.Action).
		Str("entity", ev.Entity).
		Time("at", ev.At)

	if ev.EntityID != "" {
		evt = evt.Str("entity_id", ev.EntityID)
	}

	if meta != nil {
		evt = evt.RawJSON("metadata", meta)
	}

	evt.Msg("audit")
	return nil
}
