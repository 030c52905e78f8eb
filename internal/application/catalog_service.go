package application

import (
	"context"

	"github.com/sanosuguru/go-cinema-seat-booking/internal/domain/movie"
)

type CatalogService struct {
	movieRepo movie.Repository
}

func NewCatalogService(movieRepo movie.Repository) *CatalogService {
	return &CatalogService{movieRepo: movieRepo}
}

func (s *CatalogService) ListMovies(ctx context.Context) ([]*movie.Movie, error) {
	return s.movieRepo.List(ctx)
}

func (s *CatalogService) GetMovie(ctx context.Context, id int) (*movie.Movie, error) {
	return s.movieRepo.GetByID(ctx, id)
}
