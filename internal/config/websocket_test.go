package config

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWebSocketAllowsAnyOriginByDefault(t *testing.T) {
	t.Setenv("WS_ALLOWED_ORIGIN", "")

	ws, err := NewWebSocket()
	require.NoError(t, err)

	r := httptest.NewRequest("GET", "/puzzle/1/connect", nil)
	r.Header.Set("Origin", "https://anywhere.example")
	assert.True(t, ws.Upgrader.CheckOrigin(r))
}

func TestNewWebSocketPinsConfiguredOrigin(t *testing.T) {
	t.Setenv("WS_ALLOWED_ORIGIN", "https://sudoku.example")

	ws, err := NewWebSocket()
	require.NoError(t, err)

	r := httptest.NewRequest("GET", "/puzzle/1/connect", nil)
	r.Header.Set("Origin", "https://sudoku.example")
	assert.True(t, ws.Upgrader.CheckOrigin(r))

	r.Header.Set("Origin", "https://elsewhere.example")
	assert.False(t, ws.Upgrader.CheckOrigin(r))
}
