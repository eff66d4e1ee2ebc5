package handlers

import (
	"time"

	"github.com/BruksfildServices01/oficina-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/oficina-scheduler/internal/httperr"
)

// parseDateInShop: vazio devolve zero (o use case resolve para "hoje").
func parseDateInShop(loc *time.Location, dateStr string) (time.Time, error) {
	if dateStr == "" {
		return time.Time{}, nil
	}

	t, err := time.ParseInLocation(schedule.DateFormat, dateStr, loc)
	if err != nil {
		return time.Time{}, httperr.ErrBusinessDetail("invalid_date", dateStr)
	}
	return t, nil
}
