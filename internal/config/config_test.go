package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	for _, k := range []string{"ADDR", "LOG_LEVEL", "LOG_PRETTY", "REQUEST_TIMEOUT"} {
		t.Setenv(k, "") // restores the original value on cleanup
		require.NoError(t, os.Unsetenv(k))
	}

	c, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:5175", c.Addr)
	assert.Equal(t, "info", c.LogLevel)
	assert.False(t, c.LogPretty)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
}

func TestParse_Overrides(t *testing.T) {
	t.Setenv("ADDR", ":8080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_PRETTY", "true")
	t.Setenv("REQUEST_TIMEOUT", "2s")

	c, err := Parse()
	require.NoError(t, err)
	assert.Equal(t, ":8080", c.Addr)
	assert.Equal(t, "debug", c.LogLevel)
	assert.True(t, c.LogPretty)
	assert.Equal(t, 2*time.Second, c.RequestTimeout)
}

func TestParse_BadDuration(t *testing.T) {
	t.Setenv("REQUEST_TIMEOUT", "soon")
	_, err := Parse()
	assert.Error(t, err)
}
