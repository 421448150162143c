package orders

import "math"

// roundCents rounds a monetary amount half-up at the cent boundary,
// so 32.245 becomes 32.25 and order totals always carry 2 decimals.
func roundCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}
