package quote

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatBRL formats a monetary amount using the Brazilian convention:
// thousands separated by ".", decimals by ",", two decimal places, prefixed
// with "R$ ". Example: 1234.5 -> "R$ 1.234,50".
func FormatBRL(amount decimal.Decimal) string {
	raw := amount.Abs().StringFixed(2)

	parts := strings.SplitN(raw, ".", 2)
	intPart := parts[0]
	decPart := parts[1]

	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}
	return "R$ " + sign + groupThousands(intPart) + "," + decPart
}

func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	var b strings.Builder
	head := n % 3
	if head > 0 {
		b.WriteString(s[:head])
	}
	for i := head; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
