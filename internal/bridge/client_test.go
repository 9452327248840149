// internal/bridge/client_test.go
package bridge

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func bridgeServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv
}

func TestFeeQuote(t *testing.T) {
	srv := bridgeServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/fee", r.URL.Path)
		assert.Equal(t, "2330", r.URL.Query().Get("fromChain"))
		assert.Equal(t, "1", r.URL.Query().Get("toChain"))
		assert.Equal(t, "ALT", r.URL.Query().Get("symbol"))
		w.Write([]byte(`{"feePercent": "0.25", "minFee": "0.5", "estimatedSeconds": 600}`))
	})

	c := NewClient(srv.URL, zaptest.NewLogger(t))
	est := c.FeeQuote(context.Background(), 2330, 1, "ALT", "100")

	assert.Equal(t, 0.25, est.FeePercent)
	assert.Equal(t, 0.5, est.MinFee)
	assert.Equal(t, 10*time.Minute, est.EstimatedETA)
	assert.False(t, est.Fallback)
}

func TestFeeQuoteFallsBackOnFailure(t *testing.T) {
	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}},
		{"bad shape", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"feePercent": "lots", "minFee": "0.5"}`))
		}},
		{"negative fee", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"feePercent": "-1", "minFee": "0.5"}`))
		}},
		{"not json", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`oops`))
		}},
	}

	for _, tc := range cases {
		handler := tc.handler
		t.Run(tc.name, func(t *testing.T) {
			srv := bridgeServer(t, handler)
			c := NewClient(srv.URL, zaptest.NewLogger(t))

			est := c.FeeQuote(context.Background(), 2330, 1, "ALT", "100")
			assert.True(t, est.Fallback)
			assert.Equal(t, 0.5, est.FeePercent)
			assert.Equal(t, 1.0, est.MinFee)
			assert.Equal(t, 15*time.Minute, est.EstimatedETA)
			assert.Equal(t, "ALT", est.Symbol)
		})
	}
}

func TestFeeQuoteUnreachableIndexer(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", zaptest.NewLogger(t))
	est := c.FeeQuote(context.Background(), 2330, 56, "ALT", "5")
	assert.True(t, est.Fallback)
	assert.Equal(t, int64(2330), est.FromChainID)
	assert.Equal(t, int64(56), est.ToChainID)
}

func TestTransferStatus(t *testing.T) {
	srv := bridgeServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/transfer/tr-42", r.URL.Path)
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
	})

	c := NewClient(srv.URL, zaptest.NewLogger(t))
	status, err := c.TransferStatus(context.Background(), "tr-42")
	require.NoError(t, err)

	assert.Equal(t, "tr-42", status.ID)
	assert.Equal(t, StateRelaying, status.State)
	assert.Equal(t, int64(2330), status.FromChainID)
	assert.Equal(t, "0xdead", status.TxHash)
	assert.Equal(t, time.Unix(1700000000, 0), status.UpdatedAt)
}

func TestTransferStatusRetriesTransientFailure(t *testing.T) {
	var calls atomic.Int32
	srv := bridgeServer(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"id": "tr-1", "status": "completed"}`))
	})

	c := NewClient(srv.URL, zaptest.NewLogger(t))
	status, err := c.TransferStatus(context.Background(), "tr-1")
	require.NoError(t, err)
	assert.Equal(t, StateCompleted, status.State)
	assert.GreaterOrEqual(t, calls.Load(), int32(3))
}

func TestTransferStatusNotFoundIsPermanent(t *testing.T) {
	var calls atomic.Int32
	srv := bridgeServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	})

	c := NewClient(srv.URL, zaptest.NewLogger(t))
	status, err := c.TransferStatus(context.Background(), "tr-missing")
	require.Error(t, err)
	assert.Equal(t, StateUnknown, status.State)
	assert.Equal(t, int32(1), calls.Load(), "404 must not be retried")
}

func TestParseState(t *testing.T) {
	assert.Equal(t, StatePending, parseState("pending"))
	assert.Equal(t, StateCompleted, parseState("completed"))
	assert.Equal(t, StateUnknown, parseState("exploded"))
	assert.Equal(t, StateUnknown, parseState(""))
}
