package booking

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/sanosuguru/go-cinema-seat-booking/internal/domain/movie"
	"github.com/sanosuguru/go-cinema-seat-booking/internal/domain/seat"
)

// Status は座席選択セッションの状態を表す
type Status string

const (
	StatusOpen            Status = "open"
	StatusAwaitingPayment Status = "awaiting_payment"
	StatusCommitted       Status = "committed"
	StatusAbandoned       Status = "abandoned"
)

// IsTerminal は終端状態かどうかを返す
func (s Status) IsTerminal() bool {
	return s == StatusCommitted || s == StatusAbandoned
}

// Session は1回の予約試行における座席選択の状態機械を表す
// open → awaiting_payment → committed / abandoned と遷移し、
// 終端状態に達したセッションは一切の操作を受け付けない
type Session struct {
	ID           string
	Movie        *movie.Movie
	Status       Status
	chosen       []seat.Coordinate // 選択順を保持、重複なし
	PricePerSeat decimal.Decimal
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewSession は指定作品に対する新しいセッションを open 状態で作成する
func NewSession(m *movie.Movie) *Session {
	now := time.Now()
	return &Session{
		ID:           uuid.New().String(),
		Movie:        m,
		Status:       StatusOpen,
		chosen:       nil,
		PricePerSeat: m.Price,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Toggle は座席の選択状態を反転する（未選択なら追加、選択済みなら解除）
// booked には可用性ストアの最新スナップショットを渡すこと。
// start 後に他セッションが確定した座席もここで弾かれる
func (s *Session) Toggle(c seat.Coordinate, booked seat.Set) error {
	if s.Status != StatusOpen {
		return ErrSessionNotOpen
	}
	if !c.InBounds() {
		return seat.ErrOutOfBounds
	}
	if booked.Contains(c) {
		return seat.ErrAlreadyBooked
	}
	for i, chosen := range s.chosen {
		if chosen == c {
			s.chosen = append(s.chosen[:i], s.chosen[i+1:]...)
			s.UpdatedAt = time.Now()
			return nil
		}
	}
	s.chosen = append(s.chosen, c)
	s.UpdatedAt = time.Now()
	return nil
}

// Chosen は選択中の座席を選択順で返す
func (s *Session) Chosen() []seat.Coordinate {
	out := make([]seat.Coordinate, len(s.chosen))
	copy(out, s.chosen)
	return out
}

// Total は現在の合計金額（選択席数 × 席単価）を返す
func (s *Session) Total() decimal.Decimal {
	return s.PricePerSeat.Mul(decimal.NewFromInt(int64(len(s.chosen))))
}

// RequestCheckout は支払いへ進む
// 座席が1席も選択されていない場合は ErrEmptySelection を返し open のまま
func (s *Session) RequestCheckout() error {
	if s.Status != StatusOpen {
		return ErrSessionNotOpen
	}
	if len(s.chosen) == 0 {
		return ErrEmptySelection
	}
	s.Status = StatusAwaitingPayment
	s.UpdatedAt = time.Now()
	return nil
}

// Confirm はセッションを確定状態にする
// 可用性ストアへのコミット成功後にのみ呼ぶこと
func (s *Session) Confirm() error {
	if s.Status != StatusAwaitingPayment {
		return ErrSessionNotAwaitingPayment
	}
	s.Status = StatusCommitted
	s.UpdatedAt = time.Now()
	return nil
}

// Abandon はセッションを破棄状態にする
// ストアへの変更は一切行われない
func (s *Session) Abandon() error {
	if s.Status.IsTerminal() {
		return ErrSessionClosed
	}
	s.Status = StatusAbandoned
	s.UpdatedAt = time.Now()
	return nil
}
