package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLogger(level Level) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := New(&buf, level)
	l.now = func() time.Time { return time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC) }
	return l, &buf
}

func TestLogWritesJSONLine(t *testing.T) {
	l, buf := newTestLogger(INFO)
	l.Info("rental created", "rental_id", 12, "property_id", 4)

	var entry map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry["level"])
	assert.Equal(t, "rental created", entry["msg"])
	assert.Equal(t, "12", entry["rental_id"])
	assert.Equal(t, "2025-03-01T10:00:00Z", entry["time"])
}

func TestLevelFiltering(t *testing.T) {
	l, buf := newTestLogger(WARN)
	l.Info("dropped")
	l.Debug("dropped")
	assert.Empty(t, buf.String())
	l.Error("kept")
	assert.Contains(t, buf.String(), "kept")
}

func TestEmailsAreRedacted(t *testing.T) {
	l, buf := newTestLogger(DEBUG)
	l.Info("reset requested", "email", "jane.doe@example.com", "note", "sent to bob@example.com")
	out := buf.String()
	assert.False(t, strings.Contains(out, "jane.doe@"))
	assert.Contains(t, out, "ja***@example.com")
	assert.Contains(t, out, "bo***@example.com")
}

func TestRedactEmail(t *testing.T) {
	assert.Equal(t, "jo***@example.com", RedactEmail("john.doe@example.com"))
	assert.Equal(t, "***@example.com", RedactEmail("ab@example.com"))
	assert.Equal(t, "***@***", RedactEmail("not-an-email"))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, DEBUG, ParseLevel("debug"))
	assert.Equal(t, WARN, ParseLevel("WARNING"))
	assert.Equal(t, ERROR, ParseLevel("error"))
	assert.Equal(t, INFO, ParseLevel("chatty"))
}
