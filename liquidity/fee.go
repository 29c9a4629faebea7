package liquidity

import (
	"math"

	"github.com/orbitln/orbithub/ledger"
)

// ProportionalFee charges a percentage of an amount, floored at a configured
// minimum. Percentage is fractional: 1.5 means 1.5%.
type ProportionalFee struct {
	Percentage float64
	Minimum    ledger.Amount
}

// ComputeFee always rounds up, in favor of the fee recipient. It is defined
// for all amounts including zero, which yields the minimum.
func (f ProportionalFee) ComputeFee(amount ledger.Amount) ledger.Amount {
	fee := ledger.Amount(math.Ceil(float64(amount.Units()) * f.Percentage / 100))
	if fee < f.Minimum {
		return f.Minimum
	}
	return fee
}

// NetInvoiceAmount is the invoice amount remaining once a channel opening
// fee is deducted from the gross payment. A fee exceeding the gross amount
// clamps the result to zero rather than failing the invoice.
func NetInvoiceAmount(gross ledger.Amount, fee ledger.Amount) ledger.Amount {
	net, err := gross.Sub(fee)
	if err != nil {
		return 0
	}
	return net
}
