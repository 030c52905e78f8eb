package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-cinema-seat-booking/internal/domain/booking"
	"github.com/sanosuguru/go-cinema-seat-booking/internal/domain/movie"
	"github.com/sanosuguru/go-cinema-seat-booking/internal/domain/seat"
	"github.com/sanosuguru/go-cinema-seat-booking/internal/pkg/logger"
	"github.com/sanosuguru/go-cinema-seat-booking/internal/pkg/metrics"
)

// AttemptRegistry は進行中の決済試行の照会と後始末を担う
// セッション回収が決済中のセッションを巻き込まないために参照する
type AttemptRegistry interface {
	HasPendingAttempt(sessionID string) bool
	ReleaseAttempt(sessionID string)
}

// BookingService は座席選択セッションのライフサイクルを管理する
// セッションマップと各セッションの状態遷移はサービスのロック下で直列化され、
// HTTPハンドラーと決済タイマーのゴルーチンから安全に呼び出せる
type BookingService struct {
	mu        sync.Mutex
	movieRepo movie.Repository
	store     booking.AvailabilityStore
	sessions  map[string]*booking.Session
	attempts  AttemptRegistry
	metrics   *metrics.Metrics
}

func NewBookingService(movieRepo movie.Repository, store booking.AvailabilityStore, m *metrics.Metrics) *BookingService {
	return &BookingService{
		movieRepo: movieRepo,
		store:     store,
		sessions:  make(map[string]*booking.Session),
		metrics:   m,
	}
}

// SetAttemptRegistry は決済試行レジストリを設定する
// PaymentService が BookingService に依存するため、構築後に注入する
func (s *BookingService) SetAttemptRegistry(r AttemptRegistry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts = r
}

// StartSession は作品に対する新しい座席選択セッションを開始する
func (s *BookingService) StartSession(ctx context.Context, movieID int) (booking.SessionView, error) {
	m, err := s.movieRepo.GetByID(ctx, movieID)
	if err != nil {
		return booking.SessionView{}, fmt.Errorf("作品取得に失敗: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess := booking.NewSession(m)
	s.sessions[sess.ID] = sess

	if s.metrics != nil {
		s.metrics.ActiveSessions.WithLabelValues(string(booking.StatusOpen)).Inc()
	}
	logger.Info("セッション開始",
		zap.String("session_id", sess.ID),
		zap.Int("movie_id", movieID),
	)
	return sess.View(), nil
}

// GetSession はセッション状態のスナップショットを返す
func (s *BookingService) GetSession(ctx context.Context, id string) (booking.SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[id]
	if !ok {
		return booking.SessionView{}, booking.ErrSessionNotFound
	}
	return sess.View(), nil
}

// ToggleSeat は座席の選択状態を反転する
// 販売済み判定にはストアの最新スナップショットを用いるため、
// セッション開始後に他セッションが確定した座席も正しく拒否される
func (s *BookingService) ToggleSeat(ctx context.Context, sessionID string, coord seat.Coordinate) (booking.SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return booking.SessionView{}, booking.ErrSessionNotFound
	}

	booked, err := s.store.BookedSeats(ctx, sess.Movie.ID)
	if err != nil {
		return booking.SessionView{}, fmt.Errorf("販売済み座席の取得に失敗: %w", err)
	}
	if err := sess.Toggle(coord, booked); err != nil {
		return booking.SessionView{}, err
	}
	return sess.View(), nil
}

// RequestCheckout はセッションを支払い待ち状態へ進める
func (s *BookingService) RequestCheckout(ctx context.Context, sessionID string) (booking.SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return booking.SessionView{}, booking.ErrSessionNotFound
	}
	if err := sess.RequestCheckout(); err != nil {
		return booking.SessionView{}, err
	}
	s.trackTransition(booking.StatusOpen, booking.StatusAwaitingPayment)
	return sess.View(), nil
}

// HandlePaymentResult は決済結果を受けてセッションを終端状態へ遷移させる
// 成功時はストアへのコミットと確定を1つの論理単位として扱い、
// コミットが競合した場合セッションは確定せず破棄される。
// 失敗・キャンセル時はストアを一切変更しない
func (s *BookingService) HandlePaymentResult(ctx context.Context, sessionID string, succeeded bool) (booking.SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return booking.SessionView{}, booking.ErrSessionNotFound
	}
	if sess.Status != booking.StatusAwaitingPayment {
		return booking.SessionView{}, booking.ErrSessionNotAwaitingPayment
	}

	if !succeeded {
		if err := sess.Abandon(); err != nil {
			return booking.SessionView{}, err
		}
		s.trackTransition(booking.StatusAwaitingPayment, booking.StatusAbandoned)
		s.countBooking("abandoned")
		logger.Info("決済不成立によりセッション破棄", zap.String("session_id", sessionID))
		return sess.View(), nil
	}

	if err := s.store.Commit(ctx, sess.Movie.ID, sess.Chosen()); err != nil {
		// コミット失敗時は確定を報告してはならない
		abandonErr := sess.Abandon()
		s.trackTransition(booking.StatusAwaitingPayment, booking.StatusAbandoned)
		if errors.Is(err, seat.ErrConflict) {
			s.countBooking("conflict")
			logger.Warn("座席確定が競合",
				zap.String("session_id", sessionID),
				zap.Int("movie_id", sess.Movie.ID),
				zap.Error(err),
			)
			return booking.SessionView{}, err
		}
		s.countBooking("error")
		if abandonErr != nil {
			return booking.SessionView{}, abandonErr
		}
		return booking.SessionView{}, fmt.Errorf("座席の確定に失敗: %w", err)
	}

	if err := sess.Confirm(); err != nil {
		return booking.SessionView{}, err
	}
	s.trackTransition(booking.StatusAwaitingPayment, booking.StatusCommitted)
	s.countBooking("committed")
	logger.Info("予約確定",
		zap.String("session_id", sessionID),
		zap.Int("movie_id", sess.Movie.ID),
		zap.Int("seats", len(sess.Chosen())),
		zap.String("total", sess.Total().StringFixed(2)),
	)
	return sess.View(), nil
}

// AbandonSession はセッションを明示的に破棄する
func (s *BookingService) AbandonSession(ctx context.Context, sessionID string) (booking.SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return booking.SessionView{}, booking.ErrSessionNotFound
	}
	prev := sess.Status
	if err := sess.Abandon(); err != nil {
		return booking.SessionView{}, err
	}
	s.trackTransition(prev, booking.StatusAbandoned)
	s.countBooking("abandoned")
	return sess.View(), nil
}

// AbandonIdleSessions は一定時間操作のない未完了セッションを破棄し、
// 同じく古い終端セッションをマップから削除する。破棄した件数を返す。
// 決済試行が進行中のセッションはオーソリゼーションの帰結を待つため対象外
func (s *BookingService) AbandonIdleSessions(ctx context.Context, olderThan time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-olderThan)
	var abandoned int
	for id, sess := range s.sessions {
		if sess.UpdatedAt.After(cutoff) {
			continue
		}
		if sess.Status.IsTerminal() {
			delete(s.sessions, id)
			if s.attempts != nil {
				s.attempts.ReleaseAttempt(id)
			}
			if s.metrics != nil {
				s.metrics.ActiveSessions.WithLabelValues(string(sess.Status)).Dec()
			}
			continue
		}
		if sess.Status == booking.StatusAwaitingPayment &&
			s.attempts != nil && s.attempts.HasPendingAttempt(id) {
			continue
		}
		prev := sess.Status
		if err := sess.Abandon(); err != nil {
			continue
		}
		s.trackTransition(prev, booking.StatusAbandoned)
		s.countBooking("abandoned")
		abandoned++
	}
	return abandoned, nil
}

// SeatMap は作品の座席グリッドの描画用スナップショットを返す
func (s *BookingService) SeatMap(ctx context.Context, movieID int) (booking.SeatMap, error) {
	if _, err := s.movieRepo.GetByID(ctx, movieID); err != nil {
		return booking.SeatMap{}, err
	}
	booked, err := s.store.BookedSeats(ctx, movieID)
	if err != nil {
		return booking.SeatMap{}, fmt.Errorf("販売済み座席の取得に失敗: %w", err)
	}
	return booking.BuildSeatMap(movieID, booked), nil
}

func (s *BookingService) trackTransition(from, to booking.Status) {
	if s.metrics == nil {
		return
	}
	s.metrics.ActiveSessions.WithLabelValues(string(from)).Dec()
	s.metrics.ActiveSessions.WithLabelValues(string(to)).Inc()
}

func (s *BookingService) countBooking(status string) {
	if s.metrics != nil {
		s.metrics.BookingsTotal.WithLabelValues(status).Inc()
	}
}
