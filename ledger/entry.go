package ledger

import (
	"fmt"
	"time"
)

// Flow is the direction of value transfer relative to the wallet. It is
// fixed for the lifetime of an entry.
type Flow string

const (
	FlowInbound  Flow = "Inbound"
	FlowOutbound Flow = "Outbound"
)

// Status is a snapshot of an entry's lifecycle state. Transitions happen
// upstream in the ledger backend; Pending is the only non-terminal state
// observed here.
type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusExpired   Status = "EXPIRED"
	StatusFailed    Status = "FAILED"
)

func ParseFlow(value string) (Flow, error) {
	switch Flow(value) {
	case FlowInbound, FlowOutbound:
		return Flow(value), nil
	}
	return "", fmt.Errorf("unrecognized flow: %q", value)
}

func ParseStatus(value string) (Status, error) {
	switch Status(value) {
	case StatusPending, StatusConfirmed, StatusExpired, StatusFailed:
		return Status(value), nil
	}
	return "", fmt.Errorf("unrecognized status: %q", value)
}

// IconKind is a symbolic tag for the entry's list icon, not a rendering
// asset. The directional arrow resolves by Flow on the presentation side
// (up for outbound, down for inbound).
type IconKind string

const (
	IconGeneric          IconKind = "generic"
	IconDirectionalArrow IconKind = "directional-arrow"
	IconChart            IconKind = "chart"
	IconToll             IconKind = "toll"
)

// RowHint tells the presentation layer how a detail row value wants to be
// displayed or acted on.
type RowHint string

const (
	HintNone          RowHint = ""
	HintCopyable      RowHint = "copyable"
	HintBlockExplorer RowHint = "block-explorer"
	HintTimestamp     RowHint = "timestamp"
)

type DetailRow struct {
	Label string
	Value string
	Hint  RowHint
}

// EntryHeader carries the fields common to every ledger entry kind.
type EntryHeader struct {
	Flow      Flow
	Status    Status
	Timestamp time.Time
	Amount    Amount
}

// HistoryEntry is the closed set of wallet ledger entry kinds. Entries are
// immutable value objects: a backend event produces a new entry, it never
// mutates an existing one. The unexported marker method keeps the set closed
// to this package, so a new kind cannot be added without updating every
// switch over the known kinds.
type HistoryEntry interface {
	Header() EntryHeader
	Kind() string
	Title() string
	IconKind() IconKind
	IsOnChain() bool
	DetailRows() []DetailRow

	historyEntry()
}
