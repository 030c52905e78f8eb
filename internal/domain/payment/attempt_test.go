package payment

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCard_Validate(t *testing.T) {
	tests := []struct {
		name    string
		card    Card
		wantErr error
	}{
		{name: "正常なカード入力", card: Card{Number: "1234567890123456", Expiry: "12/26", CVV: "123"}},
		{name: "カード番号が15桁", card: Card{Number: "123456789012345", CVV: "123"}, wantErr: ErrInvalidCardNumber},
		{name: "CVVが2桁", card: Card{Number: "1234567890123456", CVV: "12"}, wantErr: ErrInvalidCVV},
		// モック決済のため数字以外も受理する
		{name: "数字以外でも桁数を満たせば通る", card: Card{Number: "abcdefghijklmnop", CVV: "xyz"}},
		{name: "有効期限は検証されない", card: Card{Number: "1234567890123456", Expiry: "not-a-date", CVV: "123"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.card.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewAttempt(t *testing.T) {
	a := NewAttempt("session-1", decimal.RequireFromString("23.00"))

	assert.NotEmpty(t, a.ID)
	assert.Equal(t, "session-1", a.SessionID)
	assert.Equal(t, 0, a.Progress)
	assert.Equal(t, OutcomePending, a.Outcome)
	assert.Nil(t, a.CompletedAt)
}

func TestAttempt_Advance(t *testing.T) {
	a := NewAttempt("session-1", decimal.RequireFromString("23.00"))

	// 5%刻みで19回進めてもまだ完了しない
	for i := 0; i < 19; i++ {
		done, err := a.Advance(5)
		require.NoError(t, err)
		assert.False(t, done)
	}
	assert.Equal(t, 95, a.Progress)

	// 20回目で100%に達して成功
	done, err := a.Advance(5)
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, 100, a.Progress)
	assert.Equal(t, OutcomeSucceeded, a.Outcome)
	assert.NotNil(t, a.CompletedAt)

	// 完了後は進められない
	_, err = a.Advance(5)
	assert.ErrorIs(t, err, ErrAttemptClosed)
}

func TestAttempt_Advance_ClampsAtHundred(t *testing.T) {
	a := NewAttempt("session-1", decimal.RequireFromString("23.00"))

	done, err := a.Advance(250)
	require.NoError(t, err)
	assert.True(t, done)
	assert.Equal(t, 100, a.Progress, "進捗は100で頭打ち")
}

func TestAttempt_Cancel(t *testing.T) {
	t.Run("完了前はキャンセルできる", func(t *testing.T) {
		a := NewAttempt("session-1", decimal.RequireFromString("23.00"))
		_, err := a.Advance(5)
		require.NoError(t, err)

		require.NoError(t, a.Cancel())
		assert.Equal(t, OutcomeCancelled, a.Outcome)
		assert.NotNil(t, a.CompletedAt)
	})

	t.Run("成功後はキャンセルできない", func(t *testing.T) {
		a := NewAttempt("session-1", decimal.RequireFromString("23.00"))
		_, err := a.Advance(100)
		require.NoError(t, err)

		assert.ErrorIs(t, a.Cancel(), ErrAttemptClosed)
		assert.Equal(t, OutcomeSucceeded, a.Outcome)
	})

	t.Run("キャンセル済みへの操作はユーザーキャンセルとして報告される", func(t *testing.T) {
		a := NewAttempt("session-1", decimal.RequireFromString("23.00"))
		require.NoError(t, a.Cancel())

		_, err := a.Advance(5)
		assert.ErrorIs(t, err, ErrUserCancelled)
		// 完了済み一般としての照合も通る
		assert.ErrorIs(t, err, ErrAttemptClosed)

		err = a.Cancel()
		assert.ErrorIs(t, err, ErrUserCancelled)
		assert.Equal(t, OutcomeCancelled, a.Outcome)
	})
}

func TestOutcome_IsTerminal(t *testing.T) {
	assert.False(t, OutcomePending.IsTerminal())
	assert.True(t, OutcomeSucceeded.IsTerminal())
	assert.True(t, OutcomeCancelled.IsTerminal())
}
