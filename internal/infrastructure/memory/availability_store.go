package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/sanosuguru/go-cinema-seat-booking/internal/domain/seat"
)

// AvailabilityStore は booking.AvailabilityStore のインメモリ実装
// 作品IDごとに販売済み座席の集合を保持する。Commit は作品単位の
// 排他ロック下で read-modify-write を行い、同一作品への並行コミットが
// 同じ座席を二重販売することを防ぐ。一度記録された座席は外されない
type AvailabilityStore struct {
	mu     sync.Mutex
	locks  map[int]*sync.Mutex
	booked map[int]seat.Set
}

// NewAvailabilityStore は初期販売済みデータからストアを作成する
func NewAvailabilityStore(seeded map[int][]seat.Coordinate) *AvailabilityStore {
	s := &AvailabilityStore{
		locks:  make(map[int]*sync.Mutex),
		booked: make(map[int]seat.Set),
	}
	for movieID, coords := range seeded {
		s.booked[movieID] = seat.NewSet(coords...)
	}
	return s
}

// movieLock は作品ごとの排他ロックを返す（なければ作成）
func (s *AvailabilityStore) movieLock(movieID int) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[movieID]
	if !ok {
		l = &sync.Mutex{}
		s.locks[movieID] = l
	}
	return l
}

// BookedSeats は作品の販売済み座席集合のスナップショットを返す
// 未知の作品IDには空集合を返す
func (s *AvailabilityStore) BookedSeats(ctx context.Context, movieID int) (seat.Set, error) {
	l := s.movieLock(movieID)
	l.Lock()
	defer l.Unlock()

	set, ok := s.booked[movieID]
	if !ok {
		return seat.NewSet(), nil
	}
	return set.Clone(), nil
}

// Commit は座席を販売済みとして記録する
// 要求座席のいずれかが既に販売済みの場合は seat.ErrConflict を返し、
// 1席も記録しない
func (s *AvailabilityStore) Commit(ctx context.Context, movieID int, seats []seat.Coordinate) error {
	l := s.movieLock(movieID)
	l.Lock()
	defer l.Unlock()

	set, ok := s.booked[movieID]
	if !ok {
		set = seat.NewSet()
		s.booked[movieID] = set
	}

	// 先に全席を検査してから記録する（全件成功か全件失敗）
	for _, c := range seats {
		if set.Contains(c) {
			return fmt.Errorf("%w: %s", seat.ErrConflict, c.Label())
		}
	}
	for _, c := range seats {
		set.Add(c)
	}
	return nil
}
