package liquidity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbitln/orbithub/ledger"
)

func validCatalogRecord() CatalogRecord {
	return CatalogRecord{
		ID:                  "tier-basic",
		Title:               "Basic",
		TradeUpToSat:        500000,
		MinDepositSat:       50000,
		MaxDepositSat:       250000,
		FeePercentage:       1.5,
		FeeMinimumSat:       100,
		CoordinatorLeverage: 2.0,
	}
}

func TestNewOptionFromCatalog(t *testing.T) {
	option, err := NewOptionFromCatalog(validCatalogRecord())
	require.NoError(t, err)

	assert.Equal(t, "tier-basic", option.ID)
	assert.Equal(t, "Basic", option.Title)
	assert.Equal(t, ledger.Amount(500000), option.TradeUpTo)
	assert.Equal(t, ledger.Amount(50000), option.MinDeposit)
	assert.Equal(t, ledger.Amount(250000), option.MaxDeposit)
	assert.Equal(t, 1.5, option.Fee.Percentage)
	assert.Equal(t, ledger.Amount(100), option.Fee.Minimum)
	assert.Equal(t, 2.0, option.CoordinatorLeverage)
}

func TestNewOptionFromCatalog_NegativeAmounts(t *testing.T) {
	record := validCatalogRecord()
	record.TradeUpToSat = -1
	_, err := NewOptionFromCatalog(record)
	assert.ErrorIs(t, err, ledger.ErrInvalidAmount)

	record = validCatalogRecord()
	record.MinDepositSat = -1
	_, err = NewOptionFromCatalog(record)
	assert.ErrorIs(t, err, ledger.ErrInvalidAmount)

	record = validCatalogRecord()
	record.MaxDepositSat = -1
	_, err = NewOptionFromCatalog(record)
	assert.ErrorIs(t, err, ledger.ErrInvalidAmount)

	record = validCatalogRecord()
	record.FeeMinimumSat = -1
	_, err = NewOptionFromCatalog(record)
	assert.ErrorIs(t, err, ledger.ErrInvalidAmount)
}
