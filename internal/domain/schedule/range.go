package schedule

import (
	"strings"
	"time"

	"github.com/BruksfildServices01/oficina-scheduler/internal/httperr"
)

const (
	DateFormat = "2006-01-02"
	TimeFormat = "15:04"
)

type ViewMode string

const (
	ViewDay  ViewMode = "day"
	ViewWeek ViewMode = "week"
)

// ParseViewMode: vazio assume a semana, como o painel abre por padrão.
func ParseViewMode(raw string) (ViewMode, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", string(ViewWeek), "semana":
		return ViewWeek, nil
	case string(ViewDay), "dia":
		return ViewDay, nil
	}
	return "", httperr.ErrBusinessDetail("invalid_view", raw)
}

// Range is half-open: [Start, End).
type Range struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (r Range) Contains(t time.Time) bool {
	return !t.Before(r.Start) && t.Before(r.End)
}

// Days counts calendar days, so DST shifts do not matter.
func (r Range) Days() int {
	n := 0
	for d := r.Start; d.Before(r.End); d = d.AddDate(0, 0, 1) {
		n++
	}
	return n
}

func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekStart devolve o domingo mais recente em/antes de t (domingo = offset 0).
func WeekStart(t time.Time) time.Time {
	day := StartOfDay(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// SelectRange derives the displayed span. Anything other than ViewDay
// is treated as a week.
func SelectRange(ref time.Time, view ViewMode) Range {
	if view == ViewDay {
		start := StartOfDay(ref)
		return Range{Start: start, End: start.AddDate(0, 0, 1)}
	}

	start := WeekStart(ref)
	return Range{Start: start, End: start.AddDate(0, 0, 7)}
}

func WeekDates(start time.Time) []time.Time {
	dates := make([]time.Time, 0, 7)
	for i := 0; i < 7; i++ {
		dates = append(dates, start.AddDate(0, 0, i))
	}
	return dates
}

// --------------------------------------------------
// Navegação (anterior / próximo)
// --------------------------------------------------

func Next(ref time.Time, view ViewMode) time.Time {
	if view == ViewDay {
		return ref.AddDate(0, 0, 1)
	}
	return ref.AddDate(0, 0, 7)
}

func Previous(ref time.Time, view ViewMode) time.Time {
	if view == ViewDay {
		return ref.AddDate(0, 0, -1)
	}
	return ref.AddDate(0, 0, -7)
}
