package ledger

import "fmt"

// Classify maps a (flow, status) pair to the sign of the displayed amount
// and the verb describing the entry to the wallet owner ("you sent",
// "you are receiving", ...). The mapping is total over all eight pairs; an
// out-of-range enum value is a programming error, not input.
func Classify(flow Flow, status Status) (sign int, verb string) {
	switch flow {
	case FlowInbound:
		switch status {
		case StatusFailed, StatusExpired:
			return 1, "failed to receive"
		case StatusPending:
			return 1, "are receiving"
		case StatusConfirmed:
			return 1, "received"
		}
	case FlowOutbound:
		switch status {
		case StatusFailed, StatusExpired:
			return -1, "tried to send"
		case StatusPending:
			return -1, "are sending"
		case StatusConfirmed:
			return -1, "sent"
		}
	}
	panic(fmt.Sprintf("classify: invalid flow/status pair %q/%q", flow, status))
}

// SignedUnits is the display amount of an entry: the magnitude with the
// classifier's sign applied.
func SignedUnits(entry HistoryEntry) int64 {
	header := entry.Header()
	sign, _ := Classify(header.Flow, header.Status)
	return int64(sign) * int64(header.Amount.Units())
}
