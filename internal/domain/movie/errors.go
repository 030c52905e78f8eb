package movie

import "errors"

// Movie ドメインのエラー定義
var (
	ErrMovieNotFound = errors.New("上映作品が見つかりません")
	ErrInvalidID     = errors.New("作品IDは1以上である必要があります")
	ErrTitleRequired = errors.New("タイトルは必須です")
	ErrInvalidPrice  = errors.New("価格は0以上である必要があります")
)
