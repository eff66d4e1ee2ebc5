package locale

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormats(t *testing.T) {
	d := time.Date(2024, 6, 12, 9, 0, 0, 0, time.UTC)

	assert.Equal(t, "quarta-feira", Weekday(d))
	assert.Equal(t, "qua", WeekdayShort(d))
	assert.Equal(t, "junho", Month(d))
	assert.Equal(t, "12/06/2024", ShortDate(d))
	assert.Equal(t, "junho de 2024", MonthTitle(d))
	assert.Equal(t, "12 de junho de 2024", LongDate(d))
	assert.Equal(t, "quarta-feira, 12 de junho", DayHeading(d))
}

func TestWeekdayCoversSunday(t *testing.T) {
	sunday := time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "domingo", Weekday(sunday))
	assert.Equal(t, "sáb", WeekdayShort(sunday.AddDate(0, 0, 6)))
}
