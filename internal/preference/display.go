package preference

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/BruksfildServices01/oficina-scheduler/internal/models"
	"github.com/BruksfildServices01/oficina-scheduler/internal/theme"
)

// DarkModeKey is the fixed key the dashboard has always used.
const DarkModeKey = "darkMode"

// DisplayPreference is read from the store once, at Load, and written back
// on every Toggle. In between, reads come from memory.
type DisplayPreference struct {
	mu        sync.RWMutex
	store     Store
	darkMode  bool
	updatedAt time.Time
	now       func() time.Time
}

// Load: chave ausente ou valor ilegível → modo claro, sem erro.
// Só falha se o store em si falhar.
func Load(ctx context.Context, store Store) (*DisplayPreference, error) {
	p := &DisplayPreference{store: store, now: time.Now}

	raw, found, err := store.Get(ctx, DarkModeKey)
	if err != nil {
		return nil, fmt.Errorf("load display preference: %w", err)
	}

	if found {
		var dark bool
		if json.Unmarshal([]byte(raw), &dark) == nil {
			p.darkMode = dark
		}
	}

	return p, nil
}

func (p *DisplayPreference) DarkMode() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.darkMode
}

func (p *DisplayPreference) Mode() theme.Mode {
	return theme.ModeFor(p.DarkMode())
}

func (p *DisplayPreference) Snapshot() models.ThemePreference {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return models.ThemePreference{
		DarkMode:  p.darkMode,
		Mode:      string(theme.ModeFor(p.darkMode)),
		UpdatedAt: p.updatedAt,
	}
}

// Toggle flips the mode and persists it. The in-memory value only changes
// once the write succeeded.
func (p *DisplayPreference) Toggle(ctx context.Context) (models.ThemePreference, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	next := !p.darkMode
	b, _ := json.Marshal(next)

	if err := p.store.Set(ctx, DarkModeKey, string(b)); err != nil {
		return models.ThemePreference{}, fmt.Errorf("save display preference: %w", err)
	}

	p.darkMode = next
	p.updatedAt = p.now()

	return models.ThemePreference{
		DarkMode:  p.darkMode,
		Mode:      string(theme.ModeFor(p.darkMode)),
		UpdatedAt: p.updatedAt,
	}, nil
}
