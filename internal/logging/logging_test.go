package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParsesLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, New(&bytes.Buffer{}, "debug").GetLevel())
	assert.Equal(t, logrus.InfoLevel, New(&bytes.Buffer{}, "loud").GetLevel())
	assert.Equal(t, logrus.InfoLevel, New(&bytes.Buffer{}, "").GetLevel())
}

func TestNewWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, "info").WithField("user_id", "u1").Info("user registered")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "user registered", entry["msg"])
	assert.Equal(t, "u1", entry["user_id"])
	assert.Equal(t, "info", entry["level"])
}
