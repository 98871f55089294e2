package headless_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valerio/go-duallfo/duallfo/backend"
	"github.com/valerio/go-duallfo/duallfo/backend/headless"
	"github.com/valerio/go-duallfo/duallfo/input/action"
)

func TestHeadlessBackend(t *testing.T) {
	t.Run("normal operation", func(t *testing.T) {
		// Create headless backend for 3 ticks
		h := headless.New(3, headless.TraceConfig{})

		err := h.Init(backend.Config{Title: "Test", LEDs: 8})
		assert.NoError(t, err)

		for i := 0; i < 3; i++ {
			events, err := h.Update(backend.Frame{Tick: uint64(i), Index: i})
			assert.NoError(t, err)

			if i < 2 {
				// Should not quit before reaching max ticks
				assert.Empty(t, events)
			} else {
				// Should send quit event on last tick
				assert.Len(t, events, 1)
				assert.Equal(t, action.MonitorQuit, events[0].Action)
			}
		}
		assert.Equal(t, 3, h.Ticks())

		err = h.Cleanup()
		assert.NoError(t, err)
	})

	t.Run("trace to writer", func(t *testing.T) {
		var buf bytes.Buffer
		h := headless.New(2, headless.TraceConfig{Enabled: true, Writer: &buf})
		require.NoError(t, h.Init(backend.Config{LEDs: 8}))

		_, err := h.Update(backend.Frame{Tick: 0, Index: 0, Sample: 255, LEDs: 0xFF})
		require.NoError(t, err)
		_, err = h.Update(backend.Frame{Tick: 1, Index: 8, Sample: 0, LEDs: 0})
		require.NoError(t, err)
		require.NoError(t, h.Cleanup())

		assert.Equal(t, "0 0 255 11111111\n1 8 0 00000000\n", buf.String())
	})
}

func TestCreateTraceConfig(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		cfg, err := headless.CreateTraceConfig("")
		require.NoError(t, err)
		assert.False(t, cfg.Enabled)
	})

	t.Run("creates directory and file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "trace.txt")
		cfg, err := headless.CreateTraceConfig(path)
		require.NoError(t, err)
		assert.True(t, cfg.Enabled)

		h := headless.New(1, cfg)
		require.NoError(t, h.Init(backend.Config{LEDs: 4}))
		_, err = h.Update(backend.Frame{Index: 3, Sample: 255, LEDs: 0xF})
		require.NoError(t, err)
		require.NoError(t, h.Cleanup())

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "0 3 255 1111", strings.TrimSpace(string(data)))
	})
}

func TestHeadlessImplementsBackend(t *testing.T) {
	// Compile-time check that headless.Backend implements backend.Backend
	var _ backend.Backend = (*headless.Backend)(nil)
}
