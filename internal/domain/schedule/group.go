package schedule

import (
	"sort"
	"time"

	"github.com/BruksfildServices01/oficina-scheduler/internal/models"
)

type DayBucket struct {
	Key          string               `json:"key"`
	Date         time.Time            `json:"date"`
	Appointments []models.Appointment `json:"appointments"`
}

// Days keeps buckets in calendar order.
type Days []DayBucket

func (d Days) Get(key string) ([]models.Appointment, bool) {
	for _, b := range d {
		if b.Key == key {
			return b.Appointments, true
		}
	}
	return nil, false
}

func DayKey(t time.Time) string {
	return t.Format(DateFormat)
}

// GroupByDay buckets every appointment inside [start, end) under its calendar
// day in start's location. Every day of the range gets a bucket, empty ones
// included; buckets are sorted by ScheduledAt keeping input order on ties.
func GroupByDay(appointments []models.Appointment, start, end time.Time) Days {
	loc := start.Location()

	var days Days
	index := map[string]int{}
	for d := StartOfDay(start); d.Before(end); d = d.AddDate(0, 0, 1) {
		key := DayKey(d)
		index[key] = len(days)
		days = append(days, DayBucket{
			Key:          key,
			Date:         d,
			Appointments: []models.Appointment{},
		})
	}

	for _, ap := range appointments {
		if ap.ScheduledAt.Before(start) || !ap.ScheduledAt.Before(end) {
			continue
		}

		i, ok := index[DayKey(ap.ScheduledAt.In(loc))]
		if !ok {
			continue
		}
		days[i].Appointments = append(days[i].Appointments, ap)
	}

	for i := range days {
		SortChronological(days[i].Appointments)
	}

	return days
}

func SortChronological(aps []models.Appointment) {
	sort.SliceStable(aps, func(i, j int) bool {
		return aps[i].ScheduledAt.Before(aps[j].ScheduledAt)
	})
}
