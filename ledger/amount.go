package ledger

import "errors"

var (
	ErrInvalidAmount = errors.New("amount cannot be negative")
	ErrUnderflow     = errors.New("amount subtraction would go negative")
)

// Amount is an integral count of base currency units (sats). The direction
// of a ledger entry is carried by its Flow, never by the sign of the amount,
// so a negative Amount cannot exist.
type Amount uint64

func NewAmount(units int64) (Amount, error) {
	if units < 0 {
		return 0, ErrInvalidAmount
	}
	return Amount(units), nil
}

func (a Amount) Units() uint64 {
	return uint64(a)
}

func (a Amount) Add(b Amount) Amount {
	return a + b
}

func (a Amount) Sub(b Amount) (Amount, error) {
	if b > a {
		return 0, ErrUnderflow
	}
	return a - b, nil
}
