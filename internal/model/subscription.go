// Package model defines domain types for StreamSaver subscriptions and gamification.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillingMode selects how a subscription's cost is derived.
type BillingMode string

const (
	BillingMonthly BillingMode = "monthly"
	BillingYearly  BillingMode = "yearly"
)

// Subscription represents one recurring subscription as entered by the user.
// Monetary fields are exact decimals; display rounding happens in the cli package.
type Subscription struct {
	ID       string
	Name     string
	Category string
	Icon     string

	BillingMode BillingMode

	// MonthlyPrice is the price when billed monthly, and the fallback
	// when billed yearly without an explicit annual price.
	MonthlyPrice decimal.Decimal

	// YearlyPrice is the explicit annual price for yearly billing.
	// Zero means "not set".
	YearlyPrice decimal.Decimal

	// MonthlyUses is the self-reported usage frequency. Zero is meaningful:
	// the subscription is paid for but never used.
	MonthlyUses int

	// RenewalDate is the next renewal day, zero when unknown.
	RenewalDate time.Time

	Custom  bool
	AddedAt time.Time
}

// Normalized returns a copy with negative prices and uses clamped to zero.
// Bad input degrades to "free / unused", it never errors.
func (s Subscription) Normalized() Subscription {
	if s.MonthlyPrice.IsNegative() {
		s.MonthlyPrice = decimal.Zero
	}
	if s.YearlyPrice.IsNegative() {
		s.YearlyPrice = decimal.Zero
	}
	if s.MonthlyUses < 0 {
		s.MonthlyUses = 0
	}
	if s.BillingMode != BillingYearly {
		s.BillingMode = BillingMonthly
	}
	return s
}
