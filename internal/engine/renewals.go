package engine

import (
	"sort"
	"time"

	"github.com/budgettech/streamsaver/internal/model"
)

// UpcomingRenewals returns the subscriptions whose renewal date falls within
// the next `within` days, today included, sorted soonest first. Entries
// without a renewal date are skipped.
func UpcomingRenewals(subs []model.Subscription, today time.Time, within int) []model.Subscription {
	var due []model.Subscription
	for _, s := range subs {
		if s.RenewalDate.IsZero() {
			continue
		}
		days := model.DaysBetween(today, s.RenewalDate)
		if days >= 0 && days <= within {
			due = append(due, s)
		}
	}
	sort.SliceStable(due, func(i, j int) bool {
		return due[i].RenewalDate.Before(due[j].RenewalDate)
	})
	return due
}
