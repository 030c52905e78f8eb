package memory

import (
	"github.com/shopspring/decimal"

	"github.com/sanosuguru/go-cinema-seat-booking/internal/domain/movie"
	"github.com/sanosuguru/go-cinema-seat-booking/internal/domain/seat"
)

// SeedMovies は起動時カタログの固定データを返す
func SeedMovies() []*movie.Movie {
	return []*movie.Movie{
		movie.NewMovie(1, "Avengers: Endgame", "Action/Sci-Fi",
			decimal.RequireFromString("12.00"),
			"The Avengers take a final stand against Thanos."),
		movie.NewMovie(2, "The Lion King", "Animation/Drama",
			decimal.RequireFromString("10.00"),
			"Simba idolizes his father, King Mufasa, and takes to heart his own royal destiny."),
		movie.NewMovie(3, "Inception", "Sci-Fi/Thriller",
			decimal.RequireFromString("11.50"),
			"A thief who steals corporate secrets through the use of dream-sharing technology."),
		movie.NewMovie(4, "Titanic", "Romance/Drama",
			decimal.RequireFromString("9.00"),
			"A seventeen-year-old aristocrat falls in love with a kind but poor artist."),
	}
}

// SeedBookedSeats は起動時点で販売済みの座席を返す
func SeedBookedSeats() map[int][]seat.Coordinate {
	return map[int][]seat.Coordinate{
		1: {{Row: 0, Col: 2}, {Row: 0, Col: 3}},
		2: {},
		3: {{Row: 2, Col: 2}},
		4: {},
	}
}
