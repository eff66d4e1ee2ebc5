package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/oficina-scheduler/internal/httperr"
	"github.com/BruksfildServices01/oficina-scheduler/internal/models"
)

func validAppointment() models.Appointment {
	return models.Appointment{
		ID:                 1,
		ScheduledAt:        time.Date(2024, 6, 12, 9, 0, 0, 0, time.UTC),
		DurationMinutes:    30,
		CustomerName:       "Maria Santos",
		VehicleDescription: "Honda Civic - ABC-1234",
		ServiceName:        "Troca de óleo",
		Status:             string(StatusScheduled),
		BranchID:           "centro",
	}
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, Validate(validAppointment()))
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*models.Appointment)
		code   string
	}{
		{"zero id", func(a *models.Appointment) { a.ID = 0 }, "missing_field"},
		{"zero timestamp", func(a *models.Appointment) { a.ScheduledAt = time.Time{} }, "invalid_timestamp"},
		{"zero duration", func(a *models.Appointment) { a.DurationMinutes = 0 }, "invalid_duration"},
		{"negative duration", func(a *models.Appointment) { a.DurationMinutes = -15 }, "invalid_duration"},
		{"blank customer", func(a *models.Appointment) { a.CustomerName = "  " }, "missing_field"},
		{"no vehicle", func(a *models.Appointment) { a.VehicleDescription = "" }, "missing_field"},
		{"no service", func(a *models.Appointment) { a.ServiceName = "" }, "missing_field"},
		{"no branch", func(a *models.Appointment) { a.BranchID = "" }, "missing_field"},
		{"no status", func(a *models.Appointment) { a.Status = "" }, "missing_field"},
		{"blank status", func(a *models.Appointment) { a.Status = "   " }, "missing_field"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ap := validAppointment()
			tt.mutate(&ap)
			err := Validate(ap)
			require.Error(t, err)
			assert.True(t, httperr.IsBusiness(err, tt.code), err.Error())
		})
	}
}

func TestValidate_UnknownStatusAccepted(t *testing.T) {
	ap := validAppointment()
	ap.Status = "aguardando-peca"
	assert.NoError(t, Validate(ap))
}

func TestValidateBranch(t *testing.T) {
	assert.NoError(t, ValidateBranch(models.Branch{ID: "centro", Name: "Centro"}))
	assert.True(t, httperr.IsBusiness(ValidateBranch(models.Branch{Name: "Centro"}), "invalid_branch"))
	assert.True(t, httperr.IsBusiness(ValidateBranch(models.Branch{ID: "zs"}), "invalid_branch"))
}

func TestDisplayStatus_LateProjection(t *testing.T) {
	ap := validAppointment()
	before := ap.ScheduledAt.Add(-time.Minute)
	after := ap.ScheduledAt.Add(time.Minute)

	assert.Equal(t, StatusScheduled, DisplayStatus(ap, before))
	assert.Equal(t, StatusScheduled, DisplayStatus(ap, ap.ScheduledAt))
	assert.Equal(t, StatusLate, DisplayStatus(ap, after))
	assert.True(t, IsLate(ap, after))

	// the stored value is untouched
	assert.Equal(t, string(StatusScheduled), ap.Status)

	ap.Status = string(StatusInProgress)
	assert.Equal(t, StatusInProgress, DisplayStatus(ap, after))
	assert.False(t, IsLate(ap, after))
}
