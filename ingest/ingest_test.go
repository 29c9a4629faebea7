package ingest

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orbitln/orbithub/constants"
	"github.com/orbitln/orbithub/ledger"
)

func validRecord(kind string) LedgerRecord {
	return LedgerRecord{
		Kind:      kind,
		Flow:      "Outbound",
		Status:    "CONFIRMED",
		Timestamp: 1700000000,
		AmountSat: 50000,
	}
}

func TestEntryFromRecord_LightningPayment(t *testing.T) {
	feeMsat := uint64(2500)
	expiresAt := int64(1700003600)
	invoice := "lnbc500u1p..."
	preimage := "00ff00ff"

	record := validRecord(constants.ENTRY_KIND_LIGHTNING_PAYMENT)
	record.FeeMsat = &feeMsat
	record.ExpiresAt = &expiresAt
	record.Invoice = &invoice
	record.Description = "coffee"
	record.PaymentHash = "abcd1234"
	record.Preimage = &preimage

	entry, err := EntryFromRecord(record)
	require.NoError(t, err)

	payment, ok := entry.(ledger.LightningPayment)
	require.True(t, ok)
	assert.Equal(t, ledger.FlowOutbound, payment.Flow)
	assert.Equal(t, ledger.StatusConfirmed, payment.Status)
	assert.Equal(t, time.Unix(1700000000, 0).UTC(), payment.Timestamp)
	assert.Equal(t, uint64(50000), payment.Amount.Units())
	assert.Equal(t, feeMsat, *payment.FeeMsat)
	assert.Equal(t, time.Unix(expiresAt, 0).UTC(), *payment.Expiry)
	assert.Equal(t, invoice, *payment.Invoice)
	assert.Equal(t, "coffee", payment.Description)
	assert.Equal(t, "abcd1234", payment.PaymentHash)
	assert.Equal(t, preimage, *payment.Preimage)
}

func TestEntryFromRecord_EmptyOptionalsAreAbsent(t *testing.T) {
	empty := ""
	record := validRecord(constants.ENTRY_KIND_LIGHTNING_PAYMENT)
	record.Invoice = &empty
	record.Preimage = &empty
	record.PaymentHash = "abcd1234"

	entry, err := EntryFromRecord(record)
	require.NoError(t, err)

	payment := entry.(ledger.LightningPayment)
	assert.Nil(t, payment.Invoice)
	assert.Nil(t, payment.Preimage)
	assert.Nil(t, payment.FeeMsat)
	assert.Nil(t, payment.Expiry)
}

func TestEntryFromRecord_Trade(t *testing.T) {
	record := validRecord(constants.ENTRY_KIND_TRADE)
	record.Flow = "Inbound"
	record.OrderID = "order-7"

	entry, err := EntryFromRecord(record)
	require.NoError(t, err)

	trade, ok := entry.(ledger.Trade)
	require.True(t, ok)
	assert.Equal(t, "order-7", trade.OrderID)
	assert.Equal(t, "Closed position", trade.Title())
}

func TestEntryFromRecord_OrderMatchingFee(t *testing.T) {
	record := validRecord(constants.ENTRY_KIND_ORDER_MATCHING_FEE)
	record.OrderID = "order-7"
	record.PaymentHash = "cafe"

	entry, err := EntryFromRecord(record)
	require.NoError(t, err)

	fee, ok := entry.(ledger.OrderMatchingFee)
	require.True(t, ok)
	assert.Equal(t, "order-7", fee.OrderID)
	assert.Equal(t, "cafe", fee.PaymentHash)
}

func TestEntryFromRecord_JitChannelOpenFee(t *testing.T) {
	record := validRecord(constants.ENTRY_KIND_JIT_CHANNEL_OPEN_FEE)
	record.Txid = "feedface"

	entry, err := EntryFromRecord(record)
	require.NoError(t, err)

	fee, ok := entry.(ledger.JitChannelOpenFee)
	require.True(t, ok)
	assert.Equal(t, "feedface", fee.Txid)
}

func TestEntryFromRecord_OnChainPayment(t *testing.T) {
	feeSat := int64(210)
	record := validRecord(constants.ENTRY_KIND_ONCHAIN_PAYMENT)
	record.Txid = "deadbeef"
	record.Confirmations = 6
	record.FeeSat = &feeSat

	entry, err := EntryFromRecord(record)
	require.NoError(t, err)

	payment, ok := entry.(ledger.OnChainPayment)
	require.True(t, ok)
	assert.True(t, payment.IsOnChain())
	assert.Equal(t, "deadbeef", payment.Txid)
	assert.Equal(t, uint32(6), payment.Confirmations)
	assert.Equal(t, ledger.Amount(210), *payment.Fee)
}

func TestEntryFromRecord_Rejections(t *testing.T) {
	record := validRecord("channel_rebalance")
	_, err := EntryFromRecord(record)
	assert.ErrorContains(t, err, "unrecognized ledger entry kind")

	record = validRecord(constants.ENTRY_KIND_TRADE)
	record.Flow = "sideways"
	_, err = EntryFromRecord(record)
	assert.ErrorContains(t, err, "unrecognized flow")

	record = validRecord(constants.ENTRY_KIND_TRADE)
	record.Status = "SETTLED"
	_, err = EntryFromRecord(record)
	assert.ErrorContains(t, err, "unrecognized status")

	record = validRecord(constants.ENTRY_KIND_TRADE)
	record.AmountSat = -1
	_, err = EntryFromRecord(record)
	assert.ErrorIs(t, err, ledger.ErrInvalidAmount)

	negativeFee := int64(-1)
	record = validRecord(constants.ENTRY_KIND_ONCHAIN_PAYMENT)
	record.FeeSat = &negativeFee
	_, err = EntryFromRecord(record)
	assert.ErrorIs(t, err, ledger.ErrInvalidAmount)
}

func TestSnapshotFromRecords(t *testing.T) {
	records := []LedgerRecord{
		validRecord(constants.ENTRY_KIND_TRADE),
		validRecord(constants.ENTRY_KIND_ONCHAIN_PAYMENT),
	}

	entries, err := SnapshotFromRecords(records)
	require.NoError(t, err)
	require.Len(t, entries, 2)
}

func TestSnapshotFromRecords_AllOrNothing(t *testing.T) {
	bad := validRecord(constants.ENTRY_KIND_TRADE)
	bad.AmountSat = -50

	_, err := SnapshotFromRecords([]LedgerRecord{
		validRecord(constants.ENTRY_KIND_TRADE),
		bad,
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, "record 1")
	assert.ErrorIs(t, err, ledger.ErrInvalidAmount)
}
