// Package engine implements the financial calculations and the
// gamification/streak state machine. Everything here is a pure function over
// caller-supplied values: no storage, no clock reads, no I/O.
package engine

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/budgettech/streamsaver/internal/model"
)

var twelve = decimal.NewFromInt(12)

// MonthlyCost returns the normalized per-month cost of a subscription.
// Yearly billing prefers the explicit annual price divided by 12, falling
// back to the monthly price; monthly billing uses the monthly price directly
// and ignores any annual price. The result is unrounded.
func MonthlyCost(sub model.Subscription) decimal.Decimal {
	sub = sub.Normalized()
	if sub.BillingMode == model.BillingYearly {
		if sub.YearlyPrice.IsPositive() {
			return sub.YearlyPrice.Div(twelve)
		}
		if sub.MonthlyPrice.IsPositive() {
			return sub.MonthlyPrice
		}
		return decimal.Zero
	}
	return sub.MonthlyPrice
}

// YearlyCost returns the normalized per-year cost of a subscription.
func YearlyCost(sub model.Subscription) decimal.Decimal {
	sub = sub.Normalized()
	if sub.BillingMode == model.BillingYearly && sub.YearlyPrice.IsPositive() {
		return sub.YearlyPrice
	}
	return sub.MonthlyPrice.Mul(twelve)
}

// CostPerUse returns the monthly cost divided by the self-reported monthly
// uses. ok is false when uses is zero: "no usage data" is a distinct outcome
// from "free to use" and must not be collapsed into a zero cost.
func CostPerUse(sub model.Subscription) (decimal.Decimal, bool) {
	sub = sub.Normalized()
	if sub.MonthlyUses <= 0 {
		return decimal.Zero, false
	}
	return MonthlyCost(sub).Div(decimal.NewFromInt(int64(sub.MonthlyUses))), true
}

// TotalMonthly sums the monthly cost of every subscription. An empty
// collection totals zero.
func TotalMonthly(subs []model.Subscription) decimal.Decimal {
	total := decimal.Zero
	for _, s := range subs {
		total = total.Add(MonthlyCost(s))
	}
	return total
}

// BiggestWaste returns the subscription with the worst value for money:
// the highest cost per use, or, when no subscription has usage data, the
// most expensive of the never-used ones. Ties keep the earliest entry.
// ok is false for an empty collection.
func BiggestWaste(subs []model.Subscription) (model.Subscription, bool) {
	type ranked struct {
		cpu decimal.Decimal
		sub model.Subscription
	}

	var withCPU []ranked
	var zeroUse []model.Subscription
	for _, s := range subs {
		if cpu, ok := CostPerUse(s); ok {
			withCPU = append(withCPU, ranked{cpu: cpu, sub: s})
		} else {
			zeroUse = append(zeroUse, s)
		}
	}

	if len(withCPU) > 0 {
		sort.SliceStable(withCPU, func(i, j int) bool {
			return withCPU[i].cpu.GreaterThan(withCPU[j].cpu)
		})
		return withCPU[0].sub, true
	}

	if len(zeroUse) > 0 {
		sort.SliceStable(zeroUse, func(i, j int) bool {
			return MonthlyCost(zeroUse[i]).GreaterThan(MonthlyCost(zeroUse[j]))
		})
		return zeroUse[0], true
	}

	return model.Subscription{}, false
}

// CostPerUseExtremes returns the best (lowest) and worst (highest) defined
// cost per use in the collection. ok is false when no subscription has a
// defined cost per use.
func CostPerUseExtremes(subs []model.Subscription) (best, worst model.Subscription, ok bool) {
	for _, s := range subs {
		cpu, defined := CostPerUse(s)
		if !defined {
			continue
		}
		if !ok {
			best, worst, ok = s, s, true
			continue
		}
		if bestCPU, _ := CostPerUse(best); cpu.LessThan(bestCPU) {
			best = s
		}
		if worstCPU, _ := CostPerUse(worst); cpu.GreaterThan(worstCPU) {
			worst = s
		}
	}
	return best, worst, ok
}
