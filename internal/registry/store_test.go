// internal/registry/store_test.go
package registry

import (
	"encoding/json"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func TestStoreCustomTokensRoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	store, err := NewStore(fs, "data")
	require.NoError(t, err)

	overlay := map[int64][]TokenDescriptor{
		2330: {
			{Symbol: "SWAPD", Name: "Swapd", Decimals: 18, Address: "0x1234", ChainID: 2330},
		},
		1: {
			{Symbol: "PEPE", Name: "Pepe", Decimals: 18, Address: "0x5678", ChainID: 1},
		},
	}
	require.NoError(t, store.SaveCustomTokens(overlay))

	loaded, err := store.LoadCustomTokens()
	require.NoError(t, err)
	assert.Equal(t, overlay[2330], loaded[2330])
	assert.Equal(t, overlay[1], loaded[1])
}

func TestStoreLoadMissingFile(t *testing.T) {
	store, err := NewStore(afero.NewMemMapFs(), "data")
	require.NoError(t, err)

	loaded, err := store.LoadCustomTokens()
	require.NoError(t, err)
	assert.Nil(t, loaded)

	apis, err := store.LoadExchangeAPIs()
	require.NoError(t, err)
	assert.Nil(t, apis)
}

func TestStoreVersionTag(t *testing.T) {
	fs := afero.NewMemMapFs()
	store, err := NewStore(fs, "data")
	require.NoError(t, err)

	overlay := map[int64][]TokenDescriptor{
		2330: {{Symbol: "X", Decimals: 18, Address: "0x1", ChainID: 2330}},
	}
	require.NoError(t, store.SaveCustomTokens(overlay))

	raw, err := afero.ReadFile(fs, "data/custom_tokens.json")
	require.NoError(t, err)

	var blob struct {
		Version int `json:"version"`
	}
	require.NoError(t, json.Unmarshal(raw, &blob))
	assert.Equal(t, 1, blob.Version)
}

func TestStoreRejectsUnknownVersion(t *testing.T) {
	fs := afero.NewMemMapFs()
	store, err := NewStore(fs, "data")
	require.NoError(t, err)

	payload := []byte(`{"version": 99, "chains": {}}`)
	require.NoError(t, afero.WriteFile(fs, "data/custom_tokens.json", payload, 0o644))

	_, err = store.LoadCustomTokens()
	assert.Error(t, err)
}

func TestStoreEmptyChainsDropped(t *testing.T) {
	fs := afero.NewMemMapFs()
	store, err := NewStore(fs, "data")
	require.NoError(t, err)

	overlay := map[int64][]TokenDescriptor{
		2330: {},
		1:    {{Symbol: "PEPE", Decimals: 18, Address: "0x5678", ChainID: 1}},
	}
	require.NoError(t, store.SaveCustomTokens(overlay))

	loaded, err := store.LoadCustomTokens()
	require.NoError(t, err)
	_, hasEmpty := loaded[2330]
	assert.False(t, hasEmpty)
	assert.Len(t, loaded[1], 1)
}

func TestStoreExchangeAPIsRoundTrip(t *testing.T) {
	store, err := NewStore(afero.NewMemMapFs(), "data")
	require.NoError(t, err)

	apis := []ExchangeCredentials{
		{Name: "binance", APIKey: "key", APISecret: "secret"},
	}
	require.NoError(t, store.SaveExchangeAPIs(apis))

	loaded, err := store.LoadExchangeAPIs()
	require.NoError(t, err)
	assert.Equal(t, apis, loaded)
}

func TestRegistryPersistsOverlay(t *testing.T) {
	fs := afero.NewMemMapFs()
	store, err := NewStore(fs, "data")
	require.NoError(t, err)

	r := New(store, zaptest.NewLogger(t))
	token := TokenDescriptor{Symbol: "SWAPD", Name: "Swapd", Decimals: 18, Address: "0xabcd"}
	require.True(t, r.AddCustomToken("2330", token))

	// A fresh registry over the same store sees the persisted overlay.
	r2 := New(store, zaptest.NewLogger(t))
	custom := r2.CustomTokens("2330")
	require.Len(t, custom, 1)
	assert.Equal(t, "SWAPD", custom[0].Symbol)
	assert.Equal(t, int64(2330), custom[0].ChainID)
}
