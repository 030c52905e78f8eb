package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-cinema-seat-booking/internal/domain/booking"
	"github.com/sanosuguru/go-cinema-seat-booking/internal/domain/payment"
	"github.com/sanosuguru/go-cinema-seat-booking/internal/pkg/logger"
	"github.com/sanosuguru/go-cinema-seat-booking/internal/pkg/metrics"
)

// BookingGateway は決済結果をセッションへ伝えるためのインターフェース
type BookingGateway interface {
	GetSession(ctx context.Context, id string) (booking.SessionView, error)
	HandlePaymentResult(ctx context.Context, sessionID string, succeeded bool) (booking.SessionView, error)
}

// PaymentService は模擬決済オーソリゼーションを管理する
// 進捗は固定刻み（デフォルト100msごとに+5）でタイマーゴルーチンが進め、
// 100%に達すると必ず成功する。成功以外の結果は完了前のキャンセルのみで、
// 結果の通知（成功はタイマー、キャンセルは CancelAuthorization）は
// それぞれちょうど1回だけ行われる
type PaymentService struct {
	mu       sync.Mutex
	gateway  BookingGateway
	attempts map[string]*payment.Attempt // キーはセッションID
	stops    map[string]chan struct{}
	tick     time.Duration
	step     int
	metrics  *metrics.Metrics
}

func NewPaymentService(gateway BookingGateway, tick time.Duration, step int, m *metrics.Metrics) *PaymentService {
	if tick <= 0 {
		tick = 100 * time.Millisecond
	}
	if step <= 0 {
		step = 5
	}
	return &PaymentService{
		gateway:  gateway,
		attempts: make(map[string]*payment.Attempt),
		stops:    make(map[string]chan struct{}),
		tick:     tick,
		step:     step,
		metrics:  m,
	}
}

// StartAuthorization はカード入力を検証し、オーソリゼーションを開始する
// セッションは支払い待ち状態でなければならない
func (s *PaymentService) StartAuthorization(ctx context.Context, sessionID string, card payment.Card) (payment.AttemptView, error) {
	if err := card.Validate(); err != nil {
		return payment.AttemptView{}, err
	}

	view, err := s.gateway.GetSession(ctx, sessionID)
	if err != nil {
		return payment.AttemptView{}, err
	}
	if view.Status != booking.StatusAwaitingPayment {
		return payment.AttemptView{}, booking.ErrSessionNotAwaitingPayment
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.attempts[sessionID]; ok && existing.Outcome == payment.OutcomePending {
		return payment.AttemptView{}, payment.ErrAttemptInProgress
	}

	attempt := payment.NewAttempt(sessionID, view.Total)
	stop := make(chan struct{})
	s.attempts[sessionID] = attempt
	s.stops[sessionID] = stop

	go s.run(attempt, stop)

	logger.Info("決済オーソリゼーション開始",
		zap.String("session_id", sessionID),
		zap.String("amount", attempt.Amount.StringFixed(2)),
	)
	return attempt.View(), nil
}

// run はタイマー駆動で進捗を進め、完了時に結果をセッションへ通知する
func (s *PaymentService) run(attempt *payment.Attempt, stop chan struct{}) {
	ticker := time.NewTicker(s.tick)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.mu.Lock()
			done, err := attempt.Advance(s.step)
			s.mu.Unlock()
			if err != nil {
				// キャンセル済み。結果通知は CancelAuthorization 側が行う
				return
			}
			if !done {
				continue
			}

			s.mu.Lock()
			delete(s.stops, attempt.SessionID)
			s.mu.Unlock()

			s.countAttempt(string(payment.OutcomeSucceeded))
			// 元リクエストのコンテキストは既に終了しているため background を使う
			if _, err := s.gateway.HandlePaymentResult(context.Background(), attempt.SessionID, true); err != nil {
				logger.Warn("決済成功の反映に失敗",
					zap.String("session_id", attempt.SessionID),
					zap.Error(err),
				)
			}
			return
		}
	}
}

// HasPendingAttempt はセッションに進行中の決済試行があるかを返す
func (s *PaymentService) HasPendingAttempt(sessionID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	attempt, ok := s.attempts[sessionID]
	return ok && attempt.Outcome == payment.OutcomePending
}

// ReleaseAttempt はセッションに紐づく試行を破棄する
// セッション回収がマップからセッションを消す際に呼び、試行の残留を防ぐ
func (s *PaymentService) ReleaseAttempt(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if stop, ok := s.stops[sessionID]; ok {
		close(stop)
		delete(s.stops, sessionID)
	}
	delete(s.attempts, sessionID)
}

// GetAttempt はセッションに紐づく決済試行のスナップショットを返す
func (s *PaymentService) GetAttempt(ctx context.Context, sessionID string) (payment.AttemptView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	attempt, ok := s.attempts[sessionID]
	if !ok {
		return payment.AttemptView{}, payment.ErrAttemptNotFound
	}
	return attempt.View(), nil
}

// CancelAuthorization は完了前の試行をキャンセルし、セッションを破棄させる
// ストアへの変更は一切行われない
func (s *PaymentService) CancelAuthorization(ctx context.Context, sessionID string) (payment.AttemptView, error) {
	s.mu.Lock()
	attempt, ok := s.attempts[sessionID]
	if !ok {
		s.mu.Unlock()
		return payment.AttemptView{}, payment.ErrAttemptNotFound
	}
	if err := attempt.Cancel(); err != nil {
		s.mu.Unlock()
		return payment.AttemptView{}, err
	}
	if stop, ok := s.stops[sessionID]; ok {
		close(stop)
		delete(s.stops, sessionID)
	}
	view := attempt.View()
	s.mu.Unlock()

	s.countAttempt(string(payment.OutcomeCancelled))
	logger.Info("決済キャンセル", zap.String("session_id", sessionID))

	if _, err := s.gateway.HandlePaymentResult(ctx, sessionID, false); err != nil {
		return view, fmt.Errorf("キャンセルの反映に失敗: %w", err)
	}
	return view, nil
}

func (s *PaymentService) countAttempt(outcome string) {
	if s.metrics != nil {
		s.metrics.PaymentAttemptsTotal.WithLabelValues(outcome).Inc()
	}
}
