package cli

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatMoney_RoundsHalfUp(t *testing.T) {
	f := MoneyFormatter{Symbol: "€", DecimalComma: true}

	cases := []struct {
		in   string
		want string
	}{
		{"1.005", "€1,01"}, // half-up, not banker's
		{"1.004", "€1,00"},
		{"2.675", "€2,68"},
		{"10", "€10,00"},
		{"0", "€0,00"},
		{"-1.005", "€-1,01"},
	}
	for _, c := range cases {
		got := f.Format(decimal.RequireFromString(c.in))
		if got != c.want {
			t.Errorf("Format(%s) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatMoney_DotSeparatorAndSymbol(t *testing.T) {
	f := MoneyFormatter{Symbol: "$", DecimalComma: false}
	if got := f.Format(decimal.RequireFromString("12.5")); got != "$12.50" {
		t.Fatalf("Format = %q, want $12.50", got)
	}
}

func TestFormatNumber(t *testing.T) {
	cases := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-1234, "-1,234"},
	}
	for _, c := range cases {
		if got := FormatNumber(c.in); got != c.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestFormatStreak(t *testing.T) {
	if got := FormatStreak(1); got != "1 day" {
		t.Fatalf("FormatStreak(1) = %q", got)
	}
	if got := FormatStreak(7); got != "7 days" {
		t.Fatalf("FormatStreak(7) = %q", got)
	}
}
