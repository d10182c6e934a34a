// Package currency formats prediction results as Indian Rupee amounts the way
// the en-IN locale writes them, e.g. ₹45,00,000.00.
package currency

import (
	"math"
	"math/big"
	"strings"

	cldr "golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const rupeeSymbol = "₹"

// printer groups digits the en-IN way: 12,34,56,789.
var printer = message.NewPrinter(language.MustParse("en-IN"))

// fractionDigits is the number of minor digits shown for INR.
var fractionDigits, _ = cldr.Standard.Rounding(cldr.INR)

// FormatINR renders an amount in Indian Rupees with lakh/crore grouping.
// Ties are rounded away from zero using the exact binary value of the amount.
// A nil or NaN amount renders as ₹NaN.
func FormatINR(amount *float64) string {
	if amount == nil || math.IsNaN(*amount) {
		return rupeeSymbol + "NaN"
	}

	v := *amount
	sign := ""
	if math.Signbit(v) {
		sign = "-"
	}
	if math.IsInf(v, 0) {
		return sign + rupeeSymbol + "∞"
	}

	units := roundToMinorUnits(math.Abs(v), fractionDigits)
	digits := units.String()
	if len(digits) <= fractionDigits {
		digits = strings.Repeat("0", fractionDigits-len(digits)+1) + digits
	}

	whole, _ := new(big.Int).SetString(digits[:len(digits)-fractionDigits], 10)
	out := sign + rupeeSymbol + groupWhole(whole)
	if fractionDigits > 0 {
		out += "." + digits[len(digits)-fractionDigits:]
	}
	return out
}

// roundToMinorUnits returns v scaled by 10^scale and rounded half away from
// zero. v must be finite and non-negative.
func roundToMinorUnits(v float64, scale int) *big.Int {
	r := new(big.Rat).SetFloat64(v)
	r.Mul(r, new(big.Rat).SetInt(new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(scale)), nil)))

	q, m := new(big.Int).QuoRem(r.Num(), r.Denom(), new(big.Int))
	if m.Lsh(m, 1).Cmp(r.Denom()) >= 0 {
		q.Add(q, big.NewInt(1))
	}
	return q
}

// groupWhole formats a non-negative whole number with en-IN grouping.
// Rounding already happened, so no fraction digits are printed.
func groupWhole(whole *big.Int) string {
	if whole.IsInt64() {
		return printer.Sprint(number.Decimal(whole.Int64(), number.MaxFractionDigits(0)))
	}
	// beyond int64 the grouping is all that matters
	f, _ := new(big.Float).SetInt(whole).Float64()
	return printer.Sprint(number.Decimal(f, number.MaxFractionDigits(0)))
}
