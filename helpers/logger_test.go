package helpers

import (
	"bytes"
	"testing"

	"github.com/go-kit/log/level"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Filters(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "warn")
	require.NoError(t, err)

	level.Info(logger).Log("msg", "hidden")
	level.Warn(logger).Log("msg", "shown", "user_id", 101)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "msg=shown")
	assert.Contains(t, out, "level=warn")
	assert.Contains(t, out, "user_id=101")
	assert.Contains(t, out, "ts=")
}

func TestNewLogger_DefaultIsInfo(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(&buf, "")
	require.NoError(t, err)

	level.Debug(logger).Log("msg", "hidden")
	level.Info(logger).Log("msg", "shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestNewLogger_InvalidLevel(t *testing.T) {
	_, err := NewLogger(&bytes.Buffer{}, "loud")
	assert.Error(t, err)
}
