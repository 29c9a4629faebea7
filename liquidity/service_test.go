package liquidity

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbitln/orbithub/ledger"
	"github.com/orbitln/orbithub/tests"
)

const catalogJSON = `[
	{
		"id": "tier-basic",
		"title": "Basic",
		"trade_up_to_sat": 500000,
		"min_deposit_sat": 50000,
		"max_deposit_sat": 250000,
		"fee_percentage": 1.5,
		"fee_minimum_sat": 100,
		"coordinator_leverage": 2.0
	},
	{
		"id": "tier-pro",
		"title": "Pro",
		"trade_up_to_sat": 2000000,
		"min_deposit_sat": 250000,
		"max_deposit_sat": 1000000,
		"fee_percentage": 1.0,
		"fee_minimum_sat": 250,
		"coordinator_leverage": 3.0
	}
]`

func TestCatalogService_Sync(t *testing.T) {
	gormDB := tests.CreateTestDB(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/liquidity-options.json", r.URL.Path)
		_, _ = w.Write([]byte(catalogJSON))
	}))
	defer server.Close()

	svc := NewCatalogService(gormDB, server.URL)
	svc.Sync()

	options := svc.ListOptions()
	require.Len(t, options, 2)
	assert.Equal(t, "tier-basic", options[0].ID)
	assert.Equal(t, ledger.Amount(50000), options[0].MinDeposit)
	assert.Equal(t, "tier-pro", options[1].ID)
	assert.Equal(t, 3.0, options[1].CoordinatorLeverage)
}

func TestCatalogService_SyncDropsMalformedRecords(t *testing.T) {
	gormDB := tests.CreateTestDB(t)

	malformed := `[
		{"id": "tier-bad", "title": "Bad", "trade_up_to_sat": -1},
		{"id": "tier-ok", "title": "OK", "trade_up_to_sat": 1000, "min_deposit_sat": 100, "max_deposit_sat": 500, "fee_percentage": 1.0, "fee_minimum_sat": 10, "coordinator_leverage": 2.0}
	]`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(malformed))
	}))
	defer server.Close()

	svc := NewCatalogService(gormDB, server.URL)
	svc.Sync()

	options := svc.ListOptions()
	require.Len(t, options, 1)
	assert.Equal(t, "tier-ok", options[0].ID)
}

func TestCatalogService_ServesCacheWhenFetchFails(t *testing.T) {
	gormDB := tests.CreateTestDB(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(catalogJSON))
	}))

	svc := NewCatalogService(gormDB, server.URL)
	svc.Sync()
	require.Len(t, svc.ListOptions(), 2)
	server.Close()

	// a fresh service against the dead endpoint falls back to the cache rows
	svc2 := NewCatalogService(gormDB, server.URL)
	svc2.Sync()

	options := svc2.ListOptions()
	require.Len(t, options, 2)
	assert.Equal(t, "tier-basic", options[0].ID)
	assert.Equal(t, ledger.Amount(100), options[0].Fee.Minimum)
}

func TestCatalogService_GetOption(t *testing.T) {
	gormDB := tests.CreateTestDB(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(catalogJSON))
	}))
	defer server.Close()

	svc := NewCatalogService(gormDB, server.URL)
	svc.Sync()

	option, err := svc.GetOption("tier-pro")
	require.NoError(t, err)
	assert.Equal(t, "Pro", option.Title)

	_, err = svc.GetOption("tier-unknown")
	assert.Error(t, err)
}

func TestCatalogService_EstimateFee(t *testing.T) {
	gormDB := tests.CreateTestDB(t)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(catalogJSON))
	}))
	defer server.Close()

	svc := NewCatalogService(gormDB, server.URL)
	svc.Sync()

	// 1.5% of 1000 is 15, floored at the 100 sat minimum
	fee, err := svc.EstimateFee("tier-basic", ledger.Amount(1000))
	require.NoError(t, err)
	assert.Equal(t, ledger.Amount(100), fee)

	fee, err = svc.EstimateFee("tier-basic", ledger.Amount(10000))
	require.NoError(t, err)
	assert.Equal(t, ledger.Amount(150), fee)

	_, err = svc.EstimateFee("tier-unknown", ledger.Amount(10000))
	assert.Error(t, err)
}
