package memory

import (
	"context"
	"sort"

	"github.com/sanosuguru/go-cinema-seat-booking/internal/domain/movie"
)

// CatalogRepository は movie.Repository のインメモリ実装
// 起動時に固定データで初期化され、以後変更されない
type CatalogRepository struct {
	byID  map[int]*movie.Movie
	order []int
}

// NewCatalogRepository は与えられた作品でカタログを作成する
func NewCatalogRepository(movies []*movie.Movie) *CatalogRepository {
	r := &CatalogRepository{byID: make(map[int]*movie.Movie, len(movies))}
	for _, m := range movies {
		if _, exists := r.byID[m.ID]; exists {
			continue
		}
		r.byID[m.ID] = m
		r.order = append(r.order, m.ID)
	}
	sort.Ints(r.order)
	return r
}

// List は上映作品の一覧をID昇順で返す
func (r *CatalogRepository) List(ctx context.Context) ([]*movie.Movie, error) {
	out := make([]*movie.Movie, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

// GetByID はIDから上映作品を取得する
func (r *CatalogRepository) GetByID(ctx context.Context, id int) (*movie.Movie, error) {
	m, ok := r.byID[id]
	if !ok {
		return nil, movie.ErrMovieNotFound
	}
	return m, nil
}
