package api

import (
	"github.com/orbitln/orbithub/ingest"
)

type DetailRow struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Hint  string `json:"hint,omitempty"`
}

type HistoryEntry struct {
	Kind            string      `json:"kind"`
	Title           string      `json:"title"`
	Flow            string      `json:"flow"`
	Status          string      `json:"status"`
	Timestamp       int64       `json:"timestamp"`
	AmountSat       uint64      `json:"amount_sat"`
	SignedAmountSat int64       `json:"signed_amount_sat"`
	Verb            string      `json:"verb"`
	IconKind        string      `json:"icon_kind"`
	OnChain         bool        `json:"onchain"`
	Details         []DetailRow `json:"details"`
}

type ListHistoryResponse struct {
	SnapshotID  string         `json:"snapshot_id"`
	RefreshedAt int64          `json:"refreshed_at"`
	Entries     []HistoryEntry `json:"entries"`
}

type SyncHistoryRequest struct {
	Records []ingest.LedgerRecord `json:"records"`
}

type LiquidityOption struct {
	ID                  string  `json:"id"`
	Title               string  `json:"title"`
	TradeUpToSat        uint64  `json:"trade_up_to_sat"`
	MinDepositSat       uint64  `json:"min_deposit_sat"`
	MaxDepositSat       uint64  `json:"max_deposit_sat"`
	FeePercentage       float64 `json:"fee_percentage"`
	FeeMinimumSat       uint64  `json:"fee_minimum_sat"`
	CoordinatorLeverage float64 `json:"coordinator_leverage"`
}

type ListLiquidityOptionsResponse struct {
	Options []LiquidityOption `json:"options"`
}

type EstimateFeeResponse struct {
	OptionID  string `json:"option_id"`
	AmountSat uint64 `json:"amount_sat"`
	FeeSat    uint64 `json:"fee_sat"`
}

type HealthResponse struct {
	Status string `json:"status"`
}

type AuthRequest struct {
	UnlockPassword string `json:"unlockPassword"`
}

type AuthTokenResponse struct {
	Token string `json:"token"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
