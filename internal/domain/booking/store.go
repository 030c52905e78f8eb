package booking

import (
	"context"

	"github.com/sanosuguru/go-cinema-seat-booking/internal/domain/seat"
)

// AvailabilityStore は作品ごとの販売済み座席を保持するインターフェース
// プロセス内で唯一の共有可変リソースであり、Commit は作品単位で直列化される
type AvailabilityStore interface {
	// BookedSeats は作品の販売済み座席集合のスナップショットを返す
	// 未知の作品IDには空集合を返す
	BookedSeats(ctx context.Context, movieID int) (seat.Set, error)

	// Commit は座席を販売済みとして記録する
	// 要求座席のいずれかが既に販売済みの場合は seat.ErrConflict を返し、
	// 1席も記録しない（全件成功か全件失敗）
	Commit(ctx context.Context, movieID int, seats []seat.Coordinate) error
}
