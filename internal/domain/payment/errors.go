package payment

import (
	"errors"
	"fmt"
)

// Payment ドメインのエラー定義
var (
	ErrInvalidCardNumber = errors.New("カード番号は16桁以上である必要があります")
	ErrInvalidCVV        = errors.New("CVVは3桁以上である必要があります")
	ErrAttemptNotFound   = errors.New("決済試行が見つかりません")
	ErrAttemptClosed     = errors.New("決済試行は既に完了しています")
	ErrAttemptInProgress = errors.New("決済試行が既に進行中です")
)

// ErrUserCancelled はユーザー操作で打ち切られた試行への操作を区別する
// ErrAttemptClosed を包むため、完了済み一般としての照合も通る
var ErrUserCancelled = fmt.Errorf("決済はユーザーによりキャンセルされました: %w", ErrAttemptClosed)
