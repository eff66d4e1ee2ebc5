package audit

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcher_FlushesOnClose(t *testing.T) {
	var buf bytes.Buffer
	d := NewDispatcher(New(zerolog.New(&buf)))

	at := time.Date(2024, 6, 12, 9, 0, 0, 0, time.UTC)
	d.Dispatch(Event{
		Action:   "theme_toggled",
		Entity:   "preference",
		EntityID: "darkMode",
		Metadata: map[string]any{"dark_mode": true},
		At:       at,
	})
	d.Dispatch(Event{Action: "store_loaded", Entity: "appointment"})
	d.Close()

	var lines []map[string]any
	sc := bufio.NewScanner(&buf)
	for sc.Scan() {
		var m map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &m))
		lines = append(lines, m)
	}

	require.Len(t, lines, 2)
	assert.Equal(t, "theme_toggled", lines[0]["action"])
	assert.Equal(t, "audit", lines[0]["component"])
	assert.Equal(t, "darkMode", lines[0]["entity_id"])
	assert.Equal(t, map[string]any{"dark_mode": true}, lines[0]["metadata"])
	assert.Equal(t, "store_loaded", lines[1]["action"])
	assert.NotEmpty(t, lines[1]["at"])
}

func TestDispatcher_CloseIsIdempotent(t *testing.T) {
	d := NewDispatcher(New(zerolog.Nop()))
	d.Close()
	d.Close()
}

func TestLogger_BadMetadata(t *testing.T) {
	l := New(zerolog.Nop())
	err := l.Log(Event{Action: "x", Metadata: make(chan int)})
	assert.Error(t, err)
}
