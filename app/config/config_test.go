package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaultsWhenFileMissing(t *testing.T) {
	// File không tồn tại thì không phải lỗi, toàn bộ default được áp.
	require.NoError(t, Load(filepath.Join(t.TempDir(), "missing.yaml")))

	assert.Equal(t, "8080", C.Server.Port)
	assert.Equal(t, "development", C.Server.Env)
	assert.Equal(t, "freight_parser", C.Mongo.Database)
	assert.Equal(t, "freight:parse:queue", C.Redis.QueueKey)
	assert.Equal(t, "places", C.Meili.IndexName)
	assert.Equal(t, 1000, C.Cache.L1Size)
	assert.Equal(t, 10000, C.Parser.BatchMaxMessages)
	assert.InDelta(t, 0.25, C.Scoring.Origin, 1e-9)
	assert.InDelta(t, 0.4, C.Parser.ReviewThreshold, 1e-9)
	assert.True(t, C.Parser.ReviewEnabled)
}

func TestLoadFromFile(t *testing.T) {
	path := writeFile(t, "parser.yaml", `
server:
  port: "9090"
scoring:
  origin: 0.5
parser:
  batch_max_messages: 200
`)

	require.NoError(t, Load(path))

	assert.Equal(t, "9090", C.Server.Port)
	assert.InDelta(t, 0.5, C.Scoring.Origin, 1e-9)
	assert.Equal(t, 200, C.Parser.BatchMaxMessages)
	// Key không khai báo trong file vẫn giữ default
	assert.InDelta(t, 0.25, C.Scoring.Destination, 1e-9)
	assert.Equal(t, "freight_parser", C.Mongo.Database)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("REVIEW_QUEUE", "0")

	require.NoError(t, Load(filepath.Join(t.TempDir(), "missing.yaml")))

	assert.Equal(t, "7070", C.Server.Port)
	assert.False(t, C.Parser.ReviewEnabled)
}

func TestLoadScoringOverlay(t *testing.T) {
	require.NoError(t, Load(filepath.Join(t.TempDir(), "missing.yaml")))

	path := writeFile(t, "scoring.yaml", `
scoring:
  origin: 0.40
  phone: 0.20
`)
	require.NoError(t, LoadScoring(path))

	assert.InDelta(t, 0.40, C.Scoring.Origin, 1e-9)
	assert.InDelta(t, 0.20, C.Scoring.Phone, 1e-9)
	// Weight không có trong overlay thì giữ nguyên
	assert.InDelta(t, 0.25, C.Scoring.Destination, 1e-9)
	assert.InDelta(t, 0.10, C.Scoring.RouteBonus, 1e-9)
}

func TestLoadScoringErrors(t *testing.T) {
	assert.Error(t, LoadScoring(filepath.Join(t.TempDir(), "missing.yaml")))

	bad := writeFile(t, "bad.yaml", "scoring: [không phải map]")
	assert.Error(t, LoadScoring(bad))
}

func TestRequestTimeout(t *testing.T) {
	C.Server.RequestTimeoutMs = 0
	assert.Equal(t, 1500*time.Millisecond, RequestTimeout())

	C.Server.RequestTimeoutMs = 2000
	assert.Equal(t, 2*time.Second, RequestTimeout())
}
