package handler

import (
	"context"
	"time"

	"github.com/sanosuguru/go-cinema-seat-booking/internal/domain/booking"
	"github.com/sanosuguru/go-cinema-seat-booking/internal/domain/movie"
	"github.com/sanosuguru/go-cinema-seat-booking/internal/domain/payment"
	"github.com/sanosuguru/go-cinema-seat-booking/internal/domain/seat"
)

// CatalogServiceInterface はカタログサービスのインターフェース
type CatalogServiceInterface interface {
	ListMovies(ctx context.Context) ([]*movie.Movie, error)
	GetMovie(ctx context.Context, id int) (*movie.Movie, error)
}

// BookingServiceInterface は予約サービスのインターフェース
type BookingServiceInterface interface {
	StartSession(ctx context.Context, movieID int) (booking.SessionView, error)
	GetSession(ctx context.Context, id string) (booking.SessionView, error)
	ToggleSeat(ctx context.Context, sessionID string, coord seat.Coordinate) (booking.SessionView, error)
	RequestCheckout(ctx context.Context, sessionID string) (booking.SessionView, error)
	AbandonSession(ctx context.Context, sessionID string) (booking.SessionView, error)
	AbandonIdleSessions(ctx context.Context, olderThan time.Duration) (int, error)
	SeatMap(ctx context.Context, movieID int) (booking.SeatMap, error)
}

// PaymentServiceInterface は決済サービスのインターフェース
type PaymentServiceInterface interface {
	StartAuthorization(ctx context.Context, sessionID string, card payment.Card) (payment.AttemptView, error)
	GetAttempt(ctx context.Context, sessionID string) (payment.AttemptView, error)
	CancelAuthorization(ctx context.Context, sessionID string) (payment.AttemptView, error)
}
