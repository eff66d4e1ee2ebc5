package preference

import (
	"context"

	"github.com/BruksfildServices01/oficina-scheduler/internal/audit"
	"github.com/BruksfildServices01/oficina-scheduler/internal/models"
	prefstore "github.com/BruksfildServices01/oficina-scheduler/internal/preference"
)

// ThemeState is what the loaded display preference exposes.
type ThemeState interface {
	Snapshot() models.ThemePreference
	Toggle(ctx context.Context) (models.ThemePreference, error)
}

type GetTheme struct {
	prefs ThemeState
}

func NewGetTheme(prefs ThemeState) *GetTheme {
	return &GetTheme{prefs: prefs}
}

func (uc *GetTheme) Execute(ctx context.Context) (models.ThemePreference, error) {
	if err := ctx.Err(); err != nil {
		return models.ThemePreference{}, err
	}
	return uc.prefs.Snapshot(), nil
}

type ToggleTheme struct {
	prefs ThemeState
	audit *audit.Dispatcher
}

func NewToggleTheme(
	prefs ThemeState,
	audit *audit.Dispatcher,
) *ToggleTheme {
	return &ToggleTheme{
		prefs: prefs,
		audit: audit,
	}
}

func (uc *ToggleTheme) Execute(ctx context.Context) (models.ThemePreference, error) {
	pref, err := uc.prefs.Toggle(ctx)
	if err != nil {
		return models.ThemePreference{}, err
	}

	if uc.audit != nil {
		uc.audit.Dispatch(audit.Event{
			Action:   "theme_toggled",
			Entity:   "preference",
			EntityID: prefstore.DarkModeKey,
			Metadata: map[string]any{
				"mode": pref.Mode,
			},
		})
	}

	return pref, nil
}
