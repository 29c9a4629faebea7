package liquidity

import (
	"github.com/orbitln/orbithub/ledger"
)

// Option is one liquidity tier offered by the coordinator: how far the
// wallet can trade, the deposit bounds for buying into the tier, the fee
// schedule and the leverage the coordinator provides on top of the deposit.
// Options are built once per catalog fetch and immutable afterwards.
type Option struct {
	ID                  string
	Title               string
	TradeUpTo           ledger.Amount
	MinDeposit          ledger.Amount
	MaxDeposit          ledger.Amount
	Fee                 ProportionalFee
	CoordinatorLeverage float64
}

// CatalogRecord is the external representation of a liquidity tier as
// served by the catalog endpoint.
type CatalogRecord struct {
	ID                  string  `json:"id"`
	Title               string  `json:"title"`
	TradeUpToSat        int64   `json:"trade_up_to_sat"`
	MinDepositSat       int64   `json:"min_deposit_sat"`
	MaxDepositSat       int64   `json:"max_deposit_sat"`
	FeePercentage       float64 `json:"fee_percentage"`
	FeeMinimumSat       int64   `json:"fee_minimum_sat"`
	CoordinatorLeverage float64 `json:"coordinator_leverage"`
}

// NewOptionFromCatalog is the only place the external catalog representation
// is consumed. It performs no validation beyond what the amount constructor
// enforces; a malformed record surfaces as ledger.ErrInvalidAmount and the
// caller decides whether to drop or retry it.
func NewOptionFromCatalog(record CatalogRecord) (*Option, error) {
	tradeUpTo, err := ledger.NewAmount(record.TradeUpToSat)
	if err != nil {
		return nil, err
	}
	minDeposit, err := ledger.NewAmount(record.MinDepositSat)
	if err != nil {
		return nil, err
	}
	maxDeposit, err := ledger.NewAmount(record.MaxDepositSat)
	if err != nil {
		return nil, err
	}
	feeMinimum, err := ledger.NewAmount(record.FeeMinimumSat)
	if err != nil {
		return nil, err
	}

	return &Option{
		ID:         record.ID,
		Title:      record.Title,
		TradeUpTo:  tradeUpTo,
		MinDeposit: minDeposit,
		MaxDeposit: maxDeposit,
		Fee: ProportionalFee{
			Percentage: record.FeePercentage,
			Minimum:    feeMinimum,
		},
		CoordinatorLeverage: record.CoordinatorLeverage,
	}, nil
}
