package ingest

import (
	"gorm.io/datatypes"
)

// LedgerRecord is the wire representation of one wallet ledger entry as
// delivered by the backend stream. Integer unit fields are expected to be
// non-negative and optional fields either absent or well-formed; everything
// else is rejected during mapping.
type LedgerRecord struct {
	Kind      string `json:"kind"`
	Flow      string `json:"flow"`
	Status    string `json:"status"`
	Timestamp int64  `json:"timestamp"`
	AmountSat int64  `json:"amount_sat"`

	// lightning payment fields
	FeeMsat     *uint64 `json:"fee_msat,omitempty"`
	ExpiresAt   *int64  `json:"expires_at,omitempty"`
	Invoice     *string `json:"invoice,omitempty"`
	Description string  `json:"description,omitempty"`
	PaymentHash string  `json:"payment_hash,omitempty"`
	Preimage    *string `json:"preimage,omitempty"`

	// trade and order matching fee fields
	OrderID string `json:"order_id,omitempty"`

	// on-chain and jit channel fields
	Txid          string `json:"txid,omitempty"`
	Confirmations uint32 `json:"confirmations,omitempty"`
	FeeSat        *int64 `json:"fee_sat,omitempty"`

	// carried through untouched for the presentation side; never interpreted
	FailureReason string         `json:"failure_reason,omitempty"`
	Metadata      datatypes.JSON `json:"metadata,omitempty"`
}
