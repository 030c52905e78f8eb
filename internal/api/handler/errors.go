package handler

import (
	"errors"
	"net/http"

	"github.com/sanosuguru/go-cinema-seat-booking/internal/domain/booking"
	"github.com/sanosuguru/go-cinema-seat-booking/internal/domain/movie"
	"github.com/sanosuguru/go-cinema-seat-booking/internal/domain/payment"
	"github.com/sanosuguru/go-cinema-seat-booking/internal/domain/seat"
)

// statusForError はドメインエラーをHTTPステータスコードへ変換する
func statusForError(err error) int {
	switch {
	case errors.Is(err, movie.ErrMovieNotFound),
		errors.Is(err, booking.ErrSessionNotFound),
		errors.Is(err, payment.ErrAttemptNotFound):
		return http.StatusNotFound
	case errors.Is(err, seat.ErrOutOfBounds),
		errors.Is(err, booking.ErrEmptySelection),
		errors.Is(err, payment.ErrInvalidCardNumber),
		errors.Is(err, payment.ErrInvalidCVV):
		return http.StatusBadRequest
	case errors.Is(err, seat.ErrAlreadyBooked),
		errors.Is(err, seat.ErrConflict),
		errors.Is(err, booking.ErrSessionNotOpen),
		errors.Is(err, booking.ErrSessionNotAwaitingPayment),
		errors.Is(err, booking.ErrSessionClosed),
		errors.Is(err, payment.ErrAttemptInProgress),
		errors.Is(err, payment.ErrAttemptClosed):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
