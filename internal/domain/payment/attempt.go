package payment

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Outcome は決済試行の結果を表す
type Outcome string

const (
	OutcomePending   Outcome = "pending"
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeCancelled Outcome = "cancelled"
)

// IsTerminal は試行が完了しているかを返す
func (o Outcome) IsTerminal() bool {
	return o == OutcomeSucceeded || o == OutcomeCancelled
}

// Attempt は1回の模擬決済オーソリゼーションを表す
// 進捗は 0..100 で、開始された試行は必ず成功で完了する。
// 成功以外の結果は完了前のユーザーキャンセルのみ
type Attempt struct {
	ID          string
	SessionID   string
	Amount      decimal.Decimal
	Progress    int
	Outcome     Outcome
	CreatedAt   time.Time
	CompletedAt *time.Time
}

// NewAttempt は新しい決済試行を pending 状態で作成する
func NewAttempt(sessionID string, amount decimal.Decimal) *Attempt {
	return &Attempt{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		Amount:    amount,
		Progress:  0,
		Outcome:   OutcomePending,
		CreatedAt: time.Now(),
	}
}

// Advance は進捗を step だけ進める
// 100 に達した時点で succeeded となり true を返す
func (a *Attempt) Advance(step int) (bool, error) {
	if a.Outcome == OutcomeCancelled {
		return false, ErrUserCancelled
	}
	if a.Outcome != OutcomePending {
		return false, ErrAttemptClosed
	}
	a.Progress += step
	if a.Progress >= 100 {
		a.Progress = 100
		a.Outcome = OutcomeSucceeded
		now := time.Now()
		a.CompletedAt = &now
		return true, nil
	}
	return false, nil
}

// Cancel は完了前の試行をキャンセルする
func (a *Attempt) Cancel() error {
	if a.Outcome == OutcomeCancelled {
		return ErrUserCancelled
	}
	if a.Outcome != OutcomePending {
		return ErrAttemptClosed
	}
	a.Outcome = OutcomeCancelled
	now := time.Now()
	a.CompletedAt = &now
	return nil
}
