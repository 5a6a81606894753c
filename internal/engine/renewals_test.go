package engine

import (
	"testing"

	"github.com/budgettech/streamsaver/internal/model"
)

func TestUpcomingRenewals(t *testing.T) {
	today := day("2025-03-10")

	mk := func(name, renewal string) model.Subscription {
		return model.Subscription{Name: name, RenewalDate: model.ParseDate(renewal)}
	}

	subs := []model.Subscription{
		mk("Later", "2025-03-20"),
		mk("Soon", "2025-03-12"),
		mk("Today", "2025-03-10"),
		mk("Past", "2025-03-01"),
		mk("FarOut", "2025-05-01"),
		{Name: "NoDate"},
	}

	due := UpcomingRenewals(subs, today, 7)
	if len(due) != 2 {
		t.Fatalf("got %d due, want 2", len(due))
	}
	if due[0].Name != "Today" || due[1].Name != "Soon" {
		t.Fatalf("order = [%s, %s], want [Today, Soon]", due[0].Name, due[1].Name)
	}
}
