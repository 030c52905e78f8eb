package handler

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/sanosuguru/go-cinema-seat-booking/internal/domain/booking"
	"github.com/sanosuguru/go-cinema-seat-booking/internal/domain/movie"
	"github.com/sanosuguru/go-cinema-seat-booking/internal/domain/payment"
	"github.com/sanosuguru/go-cinema-seat-booking/internal/domain/seat"
)

// MockCatalogService はCatalogServiceInterfaceのモック
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) ListMovies(ctx context.Context) ([]*movie.Movie, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*movie.Movie), args.Error(1)
}

func (m *MockCatalogService) GetMovie(ctx context.Context, id int) (*movie.Movie, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*movie.Movie), args.Error(1)
}

// MockBookingService はBookingServiceInterfaceのモック
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) StartSession(ctx context.Context, movieID int) (booking.SessionView, error) {
	args := m.Called(ctx, movieID)
	return args.Get(0).(booking.SessionView), args.Error(1)
}

func (m *MockBookingService) GetSession(ctx context.Context, id string) (booking.SessionView, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(booking.SessionView), args.Error(1)
}

func (m *MockBookingService) ToggleSeat(ctx context.Context, sessionID string, coord seat.Coordinate) (booking.SessionView, error) {
	args := m.Called(ctx, sessionID, coord)
	return args.Get(0).(booking.SessionView), args.Error(1)
}

func (m *MockBookingService) RequestCheckout(ctx context.Context, sessionID string) (booking.SessionView, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(booking.SessionView), args.Error(1)
}

func (m *MockBookingService) AbandonSession(ctx context.Context, sessionID string) (booking.SessionView, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(booking.SessionView), args.Error(1)
}

func (m *MockBookingService) AbandonIdleSessions(ctx context.Context, olderThan time.Duration) (int, error) {
	args := m.Called(ctx, olderThan)
	return args.Int(0), args.Error(1)
}

func (m *MockBookingService) SeatMap(ctx context.Context, movieID int) (booking.SeatMap, error) {
	args := m.Called(ctx, movieID)
	return args.Get(0).(booking.SeatMap), args.Error(1)
}

// MockPaymentService はPaymentServiceInterfaceのモック
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) StartAuthorization(ctx context.Context, sessionID string, card payment.Card) (payment.AttemptView, error) {
	args := m.Called(ctx, sessionID, card)
	return args.Get(0).(payment.AttemptView), args.Error(1)
}

func (m *MockPaymentService) GetAttempt(ctx context.Context, sessionID string) (payment.AttemptView, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(payment.AttemptView), args.Error(1)
}

func (m *MockPaymentService) CancelAuthorization(ctx context.Context, sessionID string) (payment.AttemptView, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(payment.AttemptView), args.Error(1)
}
