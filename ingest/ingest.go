package ingest

import (
	"fmt"
	"time"

	"github.com/orbitln/orbithub/constants"
	"github.com/orbitln/orbithub/ledger"
)

// EntryFromRecord maps one wire record to its typed ledger entry. This is
// the only place the wire representation is consumed: field names, unit
// encodings and optionality all stop here. Empty optional strings are
// treated as absent, not as errors; a negative amount or an unrecognized
// enum value rejects the record.
func EntryFromRecord(record LedgerRecord) (ledger.HistoryEntry, error) {
	flow, err := ledger.ParseFlow(record.Flow)
	if err != nil {
		return nil, err
	}
	status, err := ledger.ParseStatus(record.Status)
	if err != nil {
		return nil, err
	}
	amount, err := ledger.NewAmount(record.AmountSat)
	if err != nil {
		return nil, err
	}

	header := ledger.EntryHeader{
		Flow:      flow,
		Status:    status,
		Timestamp: time.Unix(record.Timestamp, 0).UTC(),
		Amount:    amount,
	}

	switch record.Kind {
	case constants.ENTRY_KIND_LIGHTNING_PAYMENT:
		var expiry *time.Time
		if record.ExpiresAt != nil {
			expiryValue := time.Unix(*record.ExpiresAt, 0).UTC()
			expiry = &expiryValue
		}
		return ledger.LightningPayment{
			EntryHeader: header,
			FeeMsat:     record.FeeMsat,
			Expiry:      expiry,
			Invoice:     nonEmpty(record.Invoice),
			Description: record.Description,
			PaymentHash: record.PaymentHash,
			Preimage:    nonEmpty(record.Preimage),
		}, nil
	case constants.ENTRY_KIND_TRADE:
		return ledger.Trade{
			EntryHeader: header,
			OrderID:     record.OrderID,
		}, nil
	case constants.ENTRY_KIND_ORDER_MATCHING_FEE:
		return ledger.OrderMatchingFee{
			EntryHeader: header,
			OrderID:     record.OrderID,
			PaymentHash: record.PaymentHash,
		}, nil
	case constants.ENTRY_KIND_JIT_CHANNEL_OPEN_FEE:
		return ledger.JitChannelOpenFee{
			EntryHeader: header,
			Txid:        record.Txid,
		}, nil
	case constants.ENTRY_KIND_ONCHAIN_PAYMENT:
		var fee *ledger.Amount
		if record.FeeSat != nil {
			feeValue, err := ledger.NewAmount(*record.FeeSat)
			if err != nil {
				return nil, err
			}
			fee = &feeValue
		}
		return ledger.OnChainPayment{
			EntryHeader:   header,
			Txid:          record.Txid,
			Confirmations: record.Confirmations,
			Fee:           fee,
		}, nil
	}

	return nil, fmt.Errorf("unrecognized ledger entry kind: %q", record.Kind)
}

// SnapshotFromRecords maps a full refresh all-or-nothing: one bad record
// rejects the snapshot and the caller decides whether to drop or retry it.
func SnapshotFromRecords(records []LedgerRecord) ([]ledger.HistoryEntry, error) {
	entries := make([]ledger.HistoryEntry, 0, len(records))
	for i, record := range records {
		entry, err := EntryFromRecord(record)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func nonEmpty(value *string) *string {
	if value == nil || *value == "" {
		return nil
	}
	return value
}
