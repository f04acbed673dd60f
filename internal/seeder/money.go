package seeder

import "github.com/shopspring/decimal"

// Money rounds v to cents.
func Money(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}

// Amount draws a uniform monetary value in [lo, hi) rounded to cents.
func (g *GenerationContext) Amount(lo, hi float64) decimal.Decimal {
	return Money(g.Uniform(lo, hi))
}

// Rate applies a fractional rate to amount and rounds the result to cents.
func Rate(amount decimal.Decimal, rate float64) decimal.Decimal {
	return amount.Mul(decimal.NewFromFloat(rate)).Round(2)
}

// Sum adds amounts, rounding to cents.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total.Round(2)
}
