package dto

import "time"

type AppointmentListDTO struct {
	ID              uint      `json:"id"`
	ScheduledAt     time.Time `json:"scheduled_at"`
	EndsAt          time.Time `json:"ends_at"`
	Time            string    `json:"time"`
	DurationMinutes int       `json:"duration_minutes"`
	CustomerName    string    `json:"customer_name"`
	Vehicle         string    `json:"vehicle_description"`
	VehicleModel    string    `json:"vehicle_model"`
	VehiclePlate    string    `json:"vehicle_plate,omitempty"`
	ServiceName     string    `json:"service_name"`
	BranchID        string    `json:"branch_id"`
	BranchName      string    `json:"branch_name"`
	Notes           string    `json:"notes,omitempty"`
	Status          string    `json:"status"`
	StatusLabel     string    `json:"status_label"`
	StatusColor     string    `json:"status_color"`
	StatusHex       string    `json:"status_hex"`
	Late            bool      `json:"late"`
}
