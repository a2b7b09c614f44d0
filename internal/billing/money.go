package billing

import "math"

// TaxRate is the default sales tax applied to the bare cart subtotal.
const TaxRate = 0.08

// DefaultSurchargeRate is the restaurant service surcharge applied to the
// subtotal before tax and tip layering. Individual restaurants may override it.
const DefaultSurchargeRate = 0.03

// Round rounds a dollar amount to two decimals, half away from zero.
func Round(v float64) float64 {
	return math.Round(v*100) / 100
}
