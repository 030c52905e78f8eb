package booking

import "errors"

// Booking ドメインのエラー定義
var (
	ErrSessionNotFound           = errors.New("セッションが見つかりません")
	ErrSessionNotOpen            = errors.New("セッションは座席選択を受け付けていません")
	ErrSessionNotAwaitingPayment = errors.New("セッションは支払い待ち状態ではありません")
	ErrSessionClosed             = errors.New("セッションは終了しています")
	ErrEmptySelection            = errors.New("座席が選択されていません")
)
