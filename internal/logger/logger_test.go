package logger

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "marquee.log")

	log, err := New("debug", path)
	require.NoError(t, err)

	log.With(String("session", "abc")).Debug("opened document", Int("id", 3), Ints("ids", []int{1, 2}))
	log.Info("exported", Error(errors.New("disk full")), Bool("ok", false))
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "debug", first["level"])
	assert.Equal(t, "opened document", first["msg"])
	assert.Equal(t, "abc", first["session"])
	assert.EqualValues(t, 3, first["id"])

	assert.Contains(t, lines[1], `"error":"disk full"`)
}

func TestNew_LevelFilters(t *testing.T) {
	path := filepath.Join(t.TempDir(), "marquee.log")

	log, err := New("warn", path)
	require.NoError(t, err)
	log.Info("hidden")
	log.Warnf("shown %d", 1)
	require.NoError(t, log.Sync())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "hidden")
	assert.Contains(t, string(data), "shown 1")
}

func TestValidLevel(t *testing.T) {
	for _, lvl := range []string{"debug", "INFO", " warn ", "error"} {
		assert.True(t, ValidLevel(lvl), lvl)
	}
	assert.False(t, ValidLevel("verbose"))
	assert.False(t, ValidLevel(""))
}

func TestNop(t *testing.T) {
	log := Nop()
	log.Error("ignored")
	log.With(String("k", "v")).Infof("ignored %s", "too")
	assert.NoError(t, log.Sync())
}
