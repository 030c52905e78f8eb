package booking

import (
	"github.com/shopspring/decimal"

	"github.com/sanosuguru/go-cinema-seat-booking/internal/domain/seat"
)

// SessionView はセッション状態の不変スナップショット
// ハンドラーや決済タイマーはエンティティ本体ではなくこのビューを参照し、
// 描画用の状態と権威ある選択状態の乖離を防ぐ
type SessionView struct {
	ID           string
	MovieID      int
	MovieTitle   string
	Status       Status
	Chosen       []seat.Coordinate
	PricePerSeat decimal.Decimal
	Total        decimal.Decimal
}

// View は現在のセッション状態のスナップショットを返す
func (s *Session) View() SessionView {
	return SessionView{
		ID:           s.ID,
		MovieID:      s.Movie.ID,
		MovieTitle:   s.Movie.Title,
		Status:       s.Status,
		Chosen:       s.Chosen(),
		PricePerSeat: s.PricePerSeat,
		Total:        s.Total(),
	}
}
