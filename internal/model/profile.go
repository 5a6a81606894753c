package model

import "github.com/shopspring/decimal"

// Profile holds the user's budget goal and gamification score.
// XP only ever increases; nothing in the app subtracts from it.
type Profile struct {
	MonthlyBudget decimal.Decimal
	XP            int
}

// Action identifies a user action that earns XP.
type Action string

const (
	ActionCheckin            Action = "checkin"
	ActionAddSubscription    Action = "add_subscription"
	ActionDeleteSubscription Action = "delete_subscription"
	ActionCancelHighWaste    Action = "cancel_high_waste"
	ActionSetBudget          Action = "set_budget"
	ActionExport             Action = "export"
	ActionImportTemplate     Action = "import_template"
	ActionStartChallenge     Action = "start_challenge"
)
