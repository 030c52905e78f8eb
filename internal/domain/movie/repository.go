package movie

import "context"

// Repository は上映作品カタログのインターフェース
// カタログは読み取り専用で、起動時に固定データで初期化される
type Repository interface {
	// List は上映作品の一覧をID昇順で取得する
	List(ctx context.Context) ([]*Movie, error)

	// GetByID はIDから上映作品を取得する
	GetByID(ctx context.Context, id int) (*Movie, error)
}
