package dto

import "time"

type RangeDTO struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

type DayDTO struct {
	Date         string               `json:"date"`
	Weekday      string               `json:"weekday"`
	Heading      string               `json:"heading"`
	ShortDate    string               `json:"short_date"`
	IsToday      bool                 `json:"is_today"`
	Total        int                  `json:"total"`
	Appointments []AppointmentListDTO `json:"appointments"`
}

type ScheduleDTO struct {
	View          string   `json:"view"`
	ReferenceDate string   `json:"reference_date"`
	Title         string   `json:"title"`
	Range         RangeDTO `json:"range"`
	ActiveFilters int      `json:"active_filters"`
	Total         int      `json:"total"`
	Days          []DayDTO `json:"days"`
}

type SlotDTO struct {
	Time         string               `json:"time"`
	Available    bool                 `json:"available"`
	Appointments []AppointmentListDTO `json:"appointments"`
}

type DayBoardDTO struct {
	Date        string    `json:"date"`
	Heading     string    `json:"heading"`
	LongDate    string    `json:"long_date"`
	Granularity int       `json:"granularity_minutes"`
	Total       int       `json:"total"`
	Slots       []SlotDTO `json:"slots"`
}

type NavigationDTO struct {
	View          string   `json:"view"`
	ReferenceDate string   `json:"reference_date"`
	Title         string   `json:"title"`
	Range         RangeDTO `json:"range"`
	Dates         []string `json:"dates"`
}
