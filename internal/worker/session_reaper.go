package worker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/sanosuguru/go-cinema-seat-booking/internal/pkg/logger"
)

// SessionAbandoner は放置されたセッションを破棄するインターフェース
type SessionAbandoner interface {
	AbandonIdleSessions(ctx context.Context, olderThan time.Duration) (int, error)
}

// SessionReaper は放置されたセッションを定期的に回収するワーカー
// 一定時間操作のない未完了セッションを破棄し、座席選択が宙に浮いたまま
// 残り続けることを防ぐ
type SessionReaper struct {
	bookingService SessionAbandoner
	interval       time.Duration
	idleTTL        time.Duration
	stopCh         chan struct{}
	doneCh         chan struct{}
}

// NewSessionReaper は新しいリーパーを作成
func NewSessionReaper(bs SessionAbandoner, interval, idleTTL time.Duration) *SessionReaper {
	return &SessionReaper{
		bookingService: bs,
		interval:       interval,
		idleTTL:        idleTTL,
		stopCh:         make(chan struct{}),
		doneCh:         make(chan struct{}),
	}
}

// Start はリーパーを開始
func (r *SessionReaper) Start(ctx context.Context) {
	logger.Info("セッションリーパー開始",
		zap.Duration("interval", r.interval),
		zap.Duration("idle_ttl", r.idleTTL),
	)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	defer close(r.doneCh)

	for {
		select {
		case <-ctx.Done():
			logger.Info("セッションリーパー停止（コンテキストキャンセル）")
			return
		case <-r.stopCh:
			logger.Info("セッションリーパー停止（シグナル受信）")
			return
		case <-ticker.C:
			r.reap(ctx)
		}
	}
}

// Stop はリーパーを停止
func (r *SessionReaper) Stop() {
	close(r.stopCh)
	<-r.doneCh
}

// reap は放置セッションを破棄
func (r *SessionReaper) reap(ctx context.Context) {
	log := logger.Get()
	log.Debug("放置セッションの回収開始")

	count, err := r.bookingService.AbandonIdleSessions(ctx, r.idleTTL)
	if err != nil {
		log.Error("放置セッションの回収失敗", zap.Error(err))
		return
	}

	if count > 0 {
		log.Info("放置セッションを破棄", zap.Int("count", count))
	} else {
		log.Debug("放置セッションなし")
	}
}
