package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(&buf, "warn")
	require.NoError(t, err)

	log.Info("ignored id=%d", 1)
	log.Warn("ReleaseSlot: agenda id=%s is paid", "a-1")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "ReleaseSlot: agenda id=a-1 is paid", entry["message"])
}

func TestParseLevel(t *testing.T) {
	_, err := NewWithWriter(&bytes.Buffer{}, "verbose")
	assert.Error(t, err)

	_, err = NewWithWriter(&bytes.Buffer{}, "")
	assert.NoError(t, err)
}
