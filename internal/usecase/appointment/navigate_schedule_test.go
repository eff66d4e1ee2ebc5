package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/oficina-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/oficina-scheduler/internal/httperr"
)

func TestParseDirection(t *testing.T) {
	cases := map[string]Direction{
		"":         DirectionToday,
		"hoje":     DirectionToday,
		"next":     DirectionNext,
		"Próximo":  DirectionNext,
		"previous": DirectionPrevious,
		"anterior": DirectionPrevious,
	}
	for raw, want := range cases {
		got, err := ParseDirection(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}

	_, err := ParseDirection("sideways")
	assert.True(t, httperr.IsBusiness(err, "invalid_direction"))
}

func TestNavigateSchedule(t *testing.T) {
	uc := NewNavigateSchedule(testSettings())
	ref := time.Date(2024, 6, 12, 0, 0, 0, 0, brt)

	next, err := uc.Execute(context.Background(), ref, schedule.ViewWeek, DirectionNext)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-19", next.ReferenceDate)
	assert.Equal(t, []string{
		"2024-06-16", "2024-06-17", "2024-06-18", "2024-06-19",
		"2024-06-20", "2024-06-21", "2024-06-22",
	}, next.Dates)

	prev, err := uc.Execute(context.Background(), ref, schedule.ViewDay, DirectionPrevious)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-11", prev.ReferenceDate)
	assert.Equal(t, []string{"2024-06-11"}, prev.Dates)
	assert.Equal(t, "terça-feira, 11 de junho", prev.Title)

	today, err := uc.Execute(context.Background(), time.Date(2023, 1, 1, 0, 0, 0, 0, brt), schedule.ViewWeek, DirectionToday)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-12", today.ReferenceDate)
	assert.Equal(t, time.Date(2024, 6, 9, 0, 0, 0, 0, brt), today.Range.Start)
}

func TestNavigateSchedule_UnknownDirection(t *testing.T) {
	uc := NewNavigateSchedule(testSettings())

	_, err := uc.Execute(context.Background(), time.Time{}, schedule.ViewDay, Direction("up"))
	assert.True(t, httperr.IsBusiness(err, "invalid_direction"))
}
