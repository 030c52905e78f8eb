package seat

import "errors"

// Seat ドメインのエラー定義
var (
	ErrOutOfBounds   = errors.New("座席座標がグリッド範囲外です")
	ErrAlreadyBooked = errors.New("座席は既に販売済みです")
	ErrConflict      = errors.New("座席の確定が競合しました")
)
