package db

import (
	"time"

	"gorm.io/datatypes"
)

// LiquidityOption is the cached representation of one liquidity tier from
// the remote catalog. The cache is only used to serve the catalog while the
// remote endpoint is unreachable; the ledger itself is never persisted.
type LiquidityOption struct {
	ID                  string `gorm:"primaryKey"`
	Title               string
	TradeUpToSat        uint64
	MinDepositSat       uint64
	MaxDepositSat       uint64
	FeePercentage       float64
	FeeMinimumSat       uint64
	CoordinatorLeverage float64
	Metadata            datatypes.JSON
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
