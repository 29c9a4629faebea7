package ledger

import (
	"fmt"
	"strconv"
	"time"

	"github.com/orbitln/orbithub/constants"
)

// LightningPayment is a bolt11 payment sent or received over Lightning.
type LightningPayment struct {
	EntryHeader
	// routing fee with sub-sat precision, only known for outgoing payments
	FeeMsat     *uint64
	Expiry      *time.Time
	Invoice     *string
	Description string
	PaymentHash string
	Preimage    *string
}

func (p LightningPayment) Header() EntryHeader { return p.EntryHeader }
func (p LightningPayment) Kind() string        { return constants.ENTRY_KIND_LIGHTNING_PAYMENT }
func (p LightningPayment) Title() string       { return "Payment" }
func (p LightningPayment) IconKind() IconKind  { return IconDirectionalArrow }
func (p LightningPayment) IsOnChain() bool     { return false }

func (p LightningPayment) DetailRows() []DetailRow {
	rows := []DetailRow{}
	if p.FeeMsat != nil {
		rows = append(rows, DetailRow{Label: "Fee", Value: formatMsat(*p.FeeMsat)})
	}
	if p.Expiry != nil {
		rows = append(rows, DetailRow{Label: "Expiry", Value: p.Expiry.UTC().Format(time.RFC3339), Hint: HintTimestamp})
	}
	if p.Invoice != nil {
		rows = append(rows, DetailRow{Label: "Invoice", Value: *p.Invoice, Hint: HintCopyable})
	}
	rows = append(rows,
		DetailRow{Label: "Description", Value: p.Description},
		DetailRow{Label: "Payment hash", Value: p.PaymentHash, Hint: HintCopyable},
	)
	if p.Preimage != nil {
		rows = append(rows, DetailRow{Label: "Preimage", Value: *p.Preimage, Hint: HintCopyable})
	}
	return rows
}

func (LightningPayment) historyEntry() {}

// Trade is the cashflow of opening or closing a position against the
// coordinator.
type Trade struct {
	EntryHeader
	OrderID string
}

func (t Trade) Header() EntryHeader { return t.EntryHeader }
func (t Trade) Kind() string        { return constants.ENTRY_KIND_TRADE }

// Title depends on the direction of the cashflow: margin coming back in
// means a position was closed, margin going out means one was opened.
func (t Trade) Title() string {
	if t.Flow == FlowInbound {
		return "Closed position"
	}
	return "Opened position"
}

func (t Trade) IconKind() IconKind { return IconChart }
func (t Trade) IsOnChain() bool    { return false }

func (t Trade) DetailRows() []DetailRow {
	return []DetailRow{
		{Label: "Order ID", Value: t.OrderID, Hint: HintCopyable},
	}
}

func (Trade) historyEntry() {}

// OrderMatchingFee is the fee charged by the coordinator for matching an
// order in the orderbook.
type OrderMatchingFee struct {
	EntryHeader
	OrderID     string
	PaymentHash string
}

func (f OrderMatchingFee) Header() EntryHeader { return f.EntryHeader }
func (f OrderMatchingFee) Kind() string        { return constants.ENTRY_KIND_ORDER_MATCHING_FEE }
func (f OrderMatchingFee) Title() string       { return "Matching fee" }
func (f OrderMatchingFee) IconKind() IconKind  { return IconToll }
func (f OrderMatchingFee) IsOnChain() bool     { return false }

func (f OrderMatchingFee) DetailRows() []DetailRow {
	return []DetailRow{
		{Label: "Order ID", Value: f.OrderID, Hint: HintCopyable},
		{Label: "Payment hash", Value: f.PaymentHash, Hint: HintCopyable},
	}
}

func (OrderMatchingFee) historyEntry() {}

// JitChannelOpenFee is the fee charged for opening a just-in-time channel
// towards the wallet.
type JitChannelOpenFee struct {
	EntryHeader
	Txid string
}

func (f JitChannelOpenFee) Header() EntryHeader { return f.EntryHeader }
func (f JitChannelOpenFee) Kind() string        { return constants.ENTRY_KIND_JIT_CHANNEL_OPEN_FEE }
func (f JitChannelOpenFee) Title() string       { return "Channel opening fee" }
func (f JitChannelOpenFee) IconKind() IconKind  { return IconToll }
func (f JitChannelOpenFee) IsOnChain() bool     { return false }

func (f JitChannelOpenFee) DetailRows() []DetailRow {
	return []DetailRow{
		{Label: "Funding transaction ID", Value: f.Txid, Hint: HintBlockExplorer},
	}
}

func (JitChannelOpenFee) historyEntry() {}

// OnChainPayment is a transfer recorded on the base chain. It is the only
// on-chain entry kind; everything else settles over Lightning or inside the
// ledger.
type OnChainPayment struct {
	EntryHeader
	Txid          string
	Confirmations uint32
	Fee           *Amount
}

func (p OnChainPayment) Header() EntryHeader { return p.EntryHeader }
func (p OnChainPayment) Kind() string        { return constants.ENTRY_KIND_ONCHAIN_PAYMENT }
func (p OnChainPayment) Title() string       { return "On-chain payment" }
func (p OnChainPayment) IconKind() IconKind  { return IconDirectionalArrow }
func (p OnChainPayment) IsOnChain() bool     { return true }

func (p OnChainPayment) DetailRows() []DetailRow {
	rows := []DetailRow{
		{Label: "Transaction ID", Value: p.Txid, Hint: HintBlockExplorer},
		{Label: "Confirmations", Value: strconv.FormatUint(uint64(p.Confirmations), 10)},
	}
	if p.Fee != nil {
		rows = append(rows, DetailRow{Label: "Fee", Value: formatSat(*p.Fee)})
	}
	return rows
}

func (OnChainPayment) historyEntry() {}

func formatMsat(msat uint64) string {
	return fmt.Sprintf("%d.%03d sat", msat/1000, msat%1000)
}

func formatSat(amount Amount) string {
	return fmt.Sprintf("%d sat", amount.Units())
}
