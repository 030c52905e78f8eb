package payment

import "github.com/shopspring/decimal"

// AttemptView は決済試行の不変スナップショット
type AttemptView struct {
	ID        string
	SessionID string
	Amount    decimal.Decimal
	Progress  int
	Outcome   Outcome
}

// View は現在の試行状態のスナップショットを返す
func (a *Attempt) View() AttemptView {
	return AttemptView{
		ID:        a.ID,
		SessionID: a.SessionID,
		Amount:    a.Amount,
		Progress:  a.Progress,
		Outcome:   a.Outcome,
	}
}
