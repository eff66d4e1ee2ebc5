package appointment

import (
	"time"

	"github.com/BruksfildServices01/oficina-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/oficina-scheduler/internal/theme"
	"github.com/BruksfildServices01/oficina-scheduler/internal/timezone"
)

// Settings carrega o que vem da config da oficina.
type Settings struct {
	Location    *time.Location
	FirstSlot   string
	LastSlot    string
	Granularity int

	// Now só é trocado em testes.
	Now func() time.Time
}

func (s Settings) withDefaults() Settings {
	if s.Location == nil {
		s.Location = timezone.Location(timezone.DefaultTimezone)
	}
	if s.FirstSlot == "" {
		s.FirstSlot = schedule.DefaultFirstSlot
	}
	if s.LastSlot == "" {
		s.LastSlot = schedule.DefaultLastSlot
	}
	if s.Granularity <= 0 {
		s.Granularity = schedule.DefaultSlotGranularity
	}
	if s.Now == nil {
		s.Now = time.Now
	}
	return s
}

func (s Settings) now() time.Time {
	return s.Now().In(s.Location)
}

// reference: data zero significa "hoje" na oficina.
func (s Settings) reference(date time.Time) time.Time {
	if date.IsZero() {
		return s.now()
	}
	return date.In(s.Location)
}

// ModeSource is satisfied by the loaded display preference.
type ModeSource interface {
	Mode() theme.Mode
}

type fixedMode theme.Mode

func (m fixedMode) Mode() theme.Mode { return theme.Mode(m) }

func modeOrLight(m ModeSource) ModeSource {
	if m == nil {
		return fixedMode(theme.Light)
	}
	return m
}
