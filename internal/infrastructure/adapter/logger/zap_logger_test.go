package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/amirhossein-jamali/expense-tracker/internal/domain/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestZapLogger(t *testing.T) {
	t.Run("json output carries fields", func(t *testing.T) {
		var buf bytes.Buffer
		log := newZapLogger(Options{Level: "info", Format: "json"}, zapcore.AddSync(&buf))

		log.Info("record created", map[string]any{"record_id": 7, "kind": "income"})
		require.NoError(t, log.Flush())

		var entry map[string]any
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, "record created", entry["message"])
		assert.Equal(t, "info", entry["level"])
		assert.Equal(t, float64(7), entry["record_id"])
		assert.Equal(t, "income", entry["kind"])
		assert.Contains(t, entry, "timestamp")
	})

	t.Run("level filters and SetLevel applies", func(t *testing.T) {
		var buf bytes.Buffer
		log := newZapLogger(Options{Level: "warn", Format: "json"}, zapcore.AddSync(&buf))

		log.Info("hidden", nil)
		log.Debug("hidden", nil)
		assert.Zero(t, buf.Len())
		assert.Equal(t, core.LogLevelWarn, log.GetLevel())

		log.SetLevel(core.LogLevelDebug)
		log.Debug("shown", nil)
		assert.Contains(t, buf.String(), "shown")
		assert.Equal(t, core.LogLevelDebug, log.GetLevel())
	})

	t.Run("console format", func(t *testing.T) {
		var buf bytes.Buffer
		log := newZapLogger(Options{Level: "debug", Format: "console"}, zapcore.AddSync(&buf))

		log.Warn("pool pressure", map[string]any{"in_use": 9})
		assert.True(t, strings.Contains(buf.String(), "pool pressure"))
		assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
	})

	t.Run("file output writes through rotated file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "logs", "api.log")
		log, err := NewZapLogger(Options{Level: "info", Format: "json", Output: OutputFile, FilePath: path, RotationHours: 1, MaxAgeDays: 1})
		require.NoError(t, err)

		log.Info("to file", nil)
		_ = log.Flush()

		matches, err := filepath.Glob(path + ".*")
		require.NoError(t, err)
		require.Len(t, matches, 1)
		content, err := os.ReadFile(matches[0])
		require.NoError(t, err)
		assert.Contains(t, string(content), "to file")
	})

	t.Run("file output needs a path", func(t *testing.T) {
		_, err := NewZapLogger(Options{Output: OutputFile})
		assert.Error(t, err)
	})
}
