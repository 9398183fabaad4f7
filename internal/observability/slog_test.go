package observability

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stolasapp/syllabus/internal/config"
)

func TestNewLogger(t *testing.T) {
	t.Parallel()

	t.Run("json respects level", func(t *testing.T) {
		t.Parallel()
		cfg := config.Default()
		cfg.LogLevel = "warn"
		buf := &bytes.Buffer{}
		logger := NewLogger(cfg, buf, false)

		logger.Info("hidden")
		assert.Zero(t, buf.Len())

		logger.Warn("shown", "email", "jane@x.com")
		entry := map[string]any{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "shown", entry["msg"])
		assert.Equal(t, "jane@x.com", entry["email"])
	})

	t.Run("text in dev mode includes source", func(t *testing.T) {
		t.Parallel()
		cfg := config.Default()
		cfg.DevMode = true
		buf := &bytes.Buffer{}
		NewLogger(cfg, buf, true).Info("hello")
		assert.Contains(t, buf.String(), "msg=hello")
		assert.Contains(t, buf.String(), "source=")
	})
}
