// Package seed loads the sample appointments the dashboard runs on.
// Dates in the sample are relative to the day the process starts, so the
// agenda always shows "today", "tomorrow" and so on.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/BruksfildServices01/oficina-scheduler/internal/httperr"
	"github.com/BruksfildServices01/oficina-scheduler/internal/models"
)

//go:embed sample.json
var sampleJSON []byte

type Dataset struct {
	Branches     []models.Branch
	Appointments []models.Appointment
}

type document struct {
	Branches     []models.Branch `json:"branches"`
	Appointments []record        `json:"appointments"`
}

type record struct {
	ID uint `json:"id"`

	// um dos três: scheduled_at | date+time | day_offset+time
	ScheduledAt string `json:"scheduled_at"`
	Date        string `json:"date"`
	DayOffset   int    `json:"day_offset"`
	Time        string `json:"time"`

	DurationMinutes    int    `json:"duration_minutes"`
	CustomerName       string `json:"customer_name"`
	VehicleDescription string `json:"vehicle_description"`
	ServiceName        string `json:"service_name"`
	Status             string `json:"status"`
	BranchID           string `json:"branch_id"`
	Notes              string `json:"notes"`
}

// Parse decodes a seed document. today anchors day_offset records and its
// location is the shop's local zone; every timestamp is converted into it.
func Parse(data []byte, today time.Time) (*Dataset, error) {
	var doc document

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}

	loc := today.Location()
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, loc)

	ds := &Dataset{
		Branches:     doc.Branches,
		Appointments: make([]models.Appointment, 0, len(doc.Appointments)),
	}

	for _, r := range doc.Appointments {
		at, err := r.resolve(day)
		if err != nil {
			return nil, fmt.Errorf("seed appointment %d: %w", r.ID, err)
		}

		ds.Appointments = append(ds.Appointments, models.Appointment{
			ID:                 r.ID,
			ScheduledAt:        at,
			DurationMinutes:    r.DurationMinutes,
			CustomerName:       strings.TrimSpace(r.CustomerName),
			VehicleDescription: strings.TrimSpace(r.VehicleDescription),
			ServiceName:        strings.TrimSpace(r.ServiceName),
			Status:             r.Status,
			BranchID:           r.BranchID,
			Notes:              r.Notes,
		})
	}

	return ds, nil
}

func (r record) resolve(day time.Time) (time.Time, error) {
	loc := day.Location()

	if r.ScheduledAt != "" {
		t, err := time.Parse(time.RFC3339, r.ScheduledAt)
		if err != nil {
			return time.Time{}, httperr.ErrBusinessDetail("invalid_timestamp", r.ScheduledAt)
		}
		return t.In(loc), nil
	}

	if r.Date != "" {
		t, err := time.ParseInLocation("2006-01-02 15:04", r.Date+" "+r.Time, loc)
		if err != nil {
			return time.Time{}, httperr.ErrBusinessDetail("invalid_timestamp", r.Date+" "+r.Time)
		}
		return t, nil
	}

	hm, err := time.Parse("15:04", r.Time)
	if err != nil {
		return time.Time{}, httperr.ErrBusinessDetail("invalid_timestamp", r.Time)
	}

	d := day.AddDate(0, 0, r.DayOffset)
	return time.Date(d.Year(), d.Month(), d.Day(), hm.Hour(), hm.Minute(), 0, 0, loc), nil
}

// Load reads the source once and parses it.
func Load(ctx context.Context, src Source, today time.Time) (*Dataset, error) {
	data, err := src.Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("read seed from %s: %w", src.Name(), err)
	}
	return Parse(data, today)
}
