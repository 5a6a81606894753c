package engine

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/budgettech/streamsaver/internal/model"
)

// sub builds a monthly-billed subscription with the given price and uses.
func sub(name string, monthlyPrice float64, uses int) model.Subscription {
	return model.Subscription{
		Name:         name,
		BillingMode:  model.BillingMonthly,
		MonthlyPrice: decimal.NewFromFloat(monthlyPrice),
		MonthlyUses:  uses,
	}
}

func yearlySub(name string, yearlyPrice, monthlyPrice float64, uses int) model.Subscription {
	return model.Subscription{
		Name:         name,
		BillingMode:  model.BillingYearly,
		YearlyPrice:  decimal.NewFromFloat(yearlyPrice),
		MonthlyPrice: decimal.NewFromFloat(monthlyPrice),
		MonthlyUses:  uses,
	}
}

func wantDecimal(t *testing.T, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestMonthlyCost_YearlyOverrideDividedExactly(t *testing.T) {
	s := yearlySub("iCloud", 120, 0, 0)
	wantDecimal(t, MonthlyCost(s), "10")
}

func TestMonthlyCost_YearlyFallsBackToMonthlyPrice(t *testing.T) {
	s := yearlySub("Prime", 0, 4.99, 0)
	wantDecimal(t, MonthlyCost(s), "4.99")
}

func TestMonthlyCost_YearlyWithoutAnyPriceIsZero(t *testing.T) {
	s := yearlySub("Mystery", 0, 0, 0)
	wantDecimal(t, MonthlyCost(s), "0")
}

func TestMonthlyCost_MonthlyIgnoresYearlyPrice(t *testing.T) {
	s := sub("Netflix", 12.99, 0)
	s.YearlyPrice = decimal.NewFromInt(1000)
	wantDecimal(t, MonthlyCost(s), "12.99")
}

func TestMonthlyCost_NegativePriceClampsToZero(t *testing.T) {
	s := sub("Broken", -5, 0)
	wantDecimal(t, MonthlyCost(s), "0")
}

func TestYearlyCost(t *testing.T) {
	wantDecimal(t, YearlyCost(yearlySub("A", 120, 0, 0)), "120")
	wantDecimal(t, YearlyCost(yearlySub("B", 0, 5, 0)), "60")
	wantDecimal(t, YearlyCost(sub("C", 9.99, 0)), "119.88")
}

func TestCostPerUse_ZeroUsesIsUndefined(t *testing.T) {
	// Undefined means "not enough data", not "free" — regardless of price.
	if _, ok := CostPerUse(sub("Gym", 49.99, 0)); ok {
		t.Fatal("cost per use with zero uses should be undefined")
	}
	if _, ok := CostPerUse(sub("Free", 0, 0)); ok {
		t.Fatal("cost per use with zero uses should be undefined even at price 0")
	}
}

func TestCostPerUse_FreeButUsedIsZeroNotUndefined(t *testing.T) {
	cpu, ok := CostPerUse(sub("FreeTier", 0, 5))
	if !ok {
		t.Fatal("cost per use with positive uses should be defined")
	}
	wantDecimal(t, cpu, "0")
}

func TestCostPerUse_DividesMonthlyCost(t *testing.T) {
	cpu, ok := CostPerUse(sub("Netflix", 10, 4))
	if !ok {
		t.Fatal("expected defined cost per use")
	}
	wantDecimal(t, cpu, "2.5")
}

func TestTotalMonthly_EmptyIsZero(t *testing.T) {
	wantDecimal(t, TotalMonthly(nil), "0")
}

func TestTotalMonthly_OrderIndependent(t *testing.T) {
	a := []model.Subscription{sub("A", 9.99, 1), sub("B", 4.5, 2), yearlySub("C", 120, 0, 0)}
	b := []model.Subscription{a[2], a[0], a[1]}

	ta, tb := TotalMonthly(a), TotalMonthly(b)
	if !ta.Equal(tb) {
		t.Fatalf("totals differ under reordering: %s vs %s", ta, tb)
	}
	wantDecimal(t, ta, "24.49")
}

func TestBiggestWaste_HighestCostPerUseWins(t *testing.T) {
	// B costs 6/use vs A's 5/use, despite A's higher monthly price.
	subs := []model.Subscription{sub("A", 10, 2), sub("B", 6, 1)}

	waste, ok := BiggestWaste(subs)
	if !ok {
		t.Fatal("expected a biggest waste")
	}
	if waste.Name != "B" {
		t.Fatalf("biggest waste = %q, want B", waste.Name)
	}
}

func TestBiggestWaste_FallsBackToMonthlyCostWhenNoUsageData(t *testing.T) {
	subs := []model.Subscription{sub("A", 10, 0), sub("B", 5, 0)}

	waste, ok := BiggestWaste(subs)
	if !ok {
		t.Fatal("expected a biggest waste")
	}
	if waste.Name != "A" {
		t.Fatalf("biggest waste = %q, want A (highest monthly cost of unused)", waste.Name)
	}
}

func TestBiggestWaste_UsageDataBeatsUnusedFallback(t *testing.T) {
	// One defined cost per use beats any number of unused subscriptions.
	subs := []model.Subscription{sub("Unused", 100, 0), sub("Used", 3, 3)}

	waste, ok := BiggestWaste(subs)
	if !ok {
		t.Fatal("expected a biggest waste")
	}
	if waste.Name != "Used" {
		t.Fatalf("biggest waste = %q, want Used", waste.Name)
	}
}

func TestBiggestWaste_TieKeepsFirstOccurrence(t *testing.T) {
	subs := []model.Subscription{sub("First", 8, 2), sub("Second", 4, 1)} // both 4/use

	waste, ok := BiggestWaste(subs)
	if !ok {
		t.Fatal("expected a biggest waste")
	}
	if waste.Name != "First" {
		t.Fatalf("biggest waste = %q, want First on tie", waste.Name)
	}
}

func TestBiggestWaste_EmptyInput(t *testing.T) {
	if _, ok := BiggestWaste(nil); ok {
		t.Fatal("empty input should have no biggest waste")
	}
}

func TestCostPerUseExtremes(t *testing.T) {
	subs := []model.Subscription{
		sub("Cheap", 2, 8),    // 0.25/use
		sub("Pricey", 15, 1),  // 15/use
		sub("NoData", 100, 0), // undefined, ignored
	}

	best, worst, ok := CostPerUseExtremes(subs)
	if !ok {
		t.Fatal("expected defined extremes")
	}
	if best.Name != "Cheap" || worst.Name != "Pricey" {
		t.Fatalf("extremes = (%q, %q), want (Cheap, Pricey)", best.Name, worst.Name)
	}

	if _, _, ok := CostPerUseExtremes([]model.Subscription{sub("NoData", 9, 0)}); ok {
		t.Fatal("all-undefined input should have no extremes")
	}
}
