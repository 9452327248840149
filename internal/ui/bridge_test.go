// internal/ui/bridge_test.go
package ui

import (
	"net/http"
	"net/http/httptest"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/altwatt/dexboard/internal/bridge"
)

func TestBridgeTransferLookup(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/v1/transfer/tr-42", r.URL.Path)
		w.Write([]byte(`{
			"id": "tr-42",
			"status": "relaying",
			"fromChain": 2330,
			"toChain": 1,
			"symbol": "ALT",
			"amount": "100",
			"txHash": "0xdead",
			"updatedAt": 1700000000
		}`))
	}))
	t.Cleanup(srv.Close)

	svcs := testServices(t)
	svcs.Bridge = bridge.NewClient(srv.URL, zaptest.NewLogger(t))

	v := newBridgeView(svcs.Registry.ListNetworks(), 2330)
	v.focusID = true
	v.idInput.SetValue("tr-42")

	cmd := v.update(tea.KeyMsg{Type: tea.KeyEnter}, svcs)
	require.NotNil(t, cmd)
	assert.True(t, v.tracking)

	msg, ok := cmd().(TransferStatusMsg)
	require.True(t, ok)
	require.NoError(t, msg.Err)

	v.setStatus(msg)
	require.NotNil(t, v.status)
	assert.False(t, v.tracking)
	assert.Equal(t, bridge.StateRelaying, v.status.State)
	assert.Contains(t, v.view(), "tr-42")
}

func TestBridgeTransferLookupUnknownID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(srv.Close)

	svcs := testServices(t)
	svcs.Bridge = bridge.NewClient(srv.URL, zaptest.NewLogger(t))

	v := newBridgeView(svcs.Registry.ListNetworks(), 2330)
	v.focusID = true
	v.idInput.SetValue("tr-missing")

	cmd := v.update(tea.KeyMsg{Type: tea.KeyEnter}, svcs)
	require.NotNil(t, cmd)

	msg, ok := cmd().(TransferStatusMsg)
	require.True(t, ok)
	require.Error(t, msg.Err)

	v.setStatus(msg)
	assert.Nil(t, v.status)
	assert.NotEmpty(t, v.statusErr)
}

func TestBridgeEmptyTransferIDDoesNothing(t *testing.T) {
	svcs := testServices(t)

	v := newBridgeView(svcs.Registry.ListNetworks(), 2330)
	v.focusID = true
	v.idInput.SetValue("   ")

	assert.Nil(t, v.update(tea.KeyMsg{Type: tea.KeyEnter}, svcs))
	assert.False(t, v.tracking)
}
