package constants

import "time"

// shared constants used by multiple packages

// wire-level entry kind tags produced by the ledger backend
const (
	ENTRY_KIND_LIGHTNING_PAYMENT    = "lightning_payment"
	ENTRY_KIND_TRADE                = "trade"
	ENTRY_KIND_ORDER_MATCHING_FEE   = "order_matching_fee"
	ENTRY_KIND_JIT_CHANNEL_OPEN_FEE = "jit_channel_open_fee"
	ENTRY_KIND_ONCHAIN_PAYMENT      = "onchain_payment"
)

// errors used by the HTTP API and the catalog service
const (
	ERROR_INTERNAL     = "INTERNAL"
	ERROR_BAD_REQUEST  = "BAD_REQUEST"
	ERROR_NOT_FOUND    = "NOT_FOUND"
	ERROR_UNAUTHORIZED = "UNAUTHORIZED"
)

const (
	LIQUIDITY_CATALOG_SYNC_INTERVAL = 6 * time.Hour
	APP_IDENTIFIER                  = "orbithub"
)
