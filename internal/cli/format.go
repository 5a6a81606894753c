// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// MoneyFormatter renders exact decimal amounts for display. Rounding to two
// places happens here and only here — all arithmetic upstream stays
// unrounded. Ties round half-up (away from zero), so 1.005 displays as 1,01.
type MoneyFormatter struct {
	Symbol       string
	DecimalComma bool
}

// Money is the active formatter. Defaults to euro with a comma separator;
// commands overwrite it from config at startup.
var Money = MoneyFormatter{Symbol: "€", DecimalComma: true}

// Format renders an amount like "€12,99".
func (f MoneyFormatter) Format(d decimal.Decimal) string {
	s := d.Round(2).StringFixed(2)
	if f.DecimalComma {
		s = strings.Replace(s, ".", ",", 1)
	}
	return f.Symbol + s
}

// FormatMoney renders an amount with the active formatter.
func FormatMoney(d decimal.Decimal) string {
	return Money.Format(d)
}

// FormatPercent formats a 0-1 float as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.0f%%", f*100)
}

// FormatNumber adds comma separators to an integer.
// e.g., 1234567 -> "1,234,567"
func FormatNumber(n int64) string {
	if n < 0 {
		return "-" + FormatNumber(-n)
	}

	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}

	var result strings.Builder
	remainder := len(s) % 3
	if remainder > 0 {
		result.WriteString(s[:remainder])
	}
	for i := remainder; i < len(s); i += 3 {
		if result.Len() > 0 {
			result.WriteByte(',')
		}
		result.WriteString(s[i : i+3])
	}
	return result.String()
}

// FormatStreak renders a streak day count, e.g. "7 days".
func FormatStreak(days int) string {
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}
