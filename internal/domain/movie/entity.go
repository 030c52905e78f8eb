package movie

import "github.com/shopspring/decimal"

// Movie は上映作品エンティティを表す
// 起動時に一度だけ生成され、以後変更されない
type Movie struct {
	ID          int
	Title       string
	Genre       string
	Price       decimal.Decimal // 1席あたりのチケット価格
	Description string
}

// NewMovie は新しい上映作品を作成する
func NewMovie(id int, title, genre string, price decimal.Decimal, description string) *Movie {
	return &Movie{
		ID:          id,
		Title:       title,
		Genre:       genre,
		Price:       price,
		Description: description,
	}
}

// Validate は上映作品の検証を行う
func (m *Movie) Validate() error {
	if m.ID <= 0 {
		return ErrInvalidID
	}
	if m.Title == "" {
		return ErrTitleRequired
	}
	if m.Price.IsNegative() {
		return ErrInvalidPrice
	}
	return nil
}
