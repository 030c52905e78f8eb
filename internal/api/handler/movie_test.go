package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sanosuguru/go-cinema-seat-booking/internal/domain/booking"
	"github.com/sanosuguru/go-cinema-seat-booking/internal/domain/movie"
	"github.com/sanosuguru/go-cinema-seat-booking/internal/domain/seat"
)

func TestMovieHandler_List(t *testing.T) {
	e := NewTestEcho()

	t.Run("作品一覧を取得できる", func(t *testing.T) {
		mockCatalog := new(MockCatalogService)
		movies := []*movie.Movie{
			{ID: 1, Title: "Avengers: Endgame", Genre: "Action/Sci-Fi", Price: decimal.RequireFromString("12.00")},
			{ID: 3, Title: "Inception", Genre: "Sci-Fi/Thriller", Price: decimal.RequireFromString("11.50")},
		}
		mockCatalog.On("ListMovies", mock.Anything).Return(movies, nil)

		handler := NewMovieHandler(mockCatalog, new(MockBookingService))

		req := httptest.NewRequest(http.MethodGet, "/movies", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		err := handler.List(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp []MovieResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		require.Len(t, resp, 2)
		assert.Equal(t, "Avengers: Endgame", resp[0].Title)
		assert.Equal(t, "12.00", resp[0].Price)
		assert.Equal(t, "11.50", resp[1].Price)

		mockCatalog.AssertExpectations(t)
	})
}

func TestMovieHandler_GetByID(t *testing.T) {
	e := NewTestEcho()

	t.Run("作品を取得できる", func(t *testing.T) {
		mockCatalog := new(MockCatalogService)
		mockCatalog.On("GetMovie", mock.Anything, 3).Return(&movie.Movie{
			ID:    3,
			Title: "Inception",
			Genre: "Sci-Fi/Thriller",
			Price: decimal.RequireFromString("11.50"),
		}, nil)

		handler := NewMovieHandler(mockCatalog, new(MockBookingService))

		req := httptest.NewRequest(http.MethodGet, "/movies/3", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("3")

		err := handler.GetByID(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp MovieResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 3, resp.ID)
		assert.Equal(t, "11.50", resp.Price)

		mockCatalog.AssertExpectations(t)
	})

	t.Run("存在しない作品で404", func(t *testing.T) {
		mockCatalog := new(MockCatalogService)
		mockCatalog.On("GetMovie", mock.Anything, 99).Return(nil, movie.ErrMovieNotFound)

		handler := NewMovieHandler(mockCatalog, new(MockBookingService))

		req := httptest.NewRequest(http.MethodGet, "/movies/99", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("99")

		err := handler.GetByID(c)

		require.Error(t, err)
		he, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, he.Code)
	})

	t.Run("数値でないIDで400", func(t *testing.T) {
		handler := NewMovieHandler(new(MockCatalogService), new(MockBookingService))

		req := httptest.NewRequest(http.MethodGet, "/movies/abc", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("abc")

		err := handler.GetByID(c)

		require.Error(t, err)
		he, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, he.Code)
	})
}

func TestMovieHandler_SeatMap(t *testing.T) {
	e := NewTestEcho()

	t.Run("座席マップを取得できる", func(t *testing.T) {
		mockBooking := new(MockBookingService)
		booked := seat.NewSet(seat.Coordinate{Row: 2, Col: 2})
		mockBooking.On("SeatMap", mock.Anything, 3).Return(booking.BuildSeatMap(3, booked), nil)

		handler := NewMovieHandler(new(MockCatalogService), mockBooking)

		req := httptest.NewRequest(http.MethodGet, "/movies/3/seats", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("3")

		err := handler.SeatMap(c)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp SeatMapResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, 3, resp.MovieID)
		assert.Equal(t, seat.GridRows, resp.Rows)
		assert.Equal(t, seat.GridCols, resp.Cols)
		require.Len(t, resp.Seats, seat.GridRows*seat.GridCols)

		// 行優先なので C3 は 2*6+2 番目
		cell := resp.Seats[2*seat.GridCols+2]
		assert.Equal(t, "C3", cell.Label)
		assert.Equal(t, "booked", cell.State)
		assert.Equal(t, "available", resp.Seats[0].State)

		mockBooking.AssertExpectations(t)
	})

	t.Run("存在しない作品で404", func(t *testing.T) {
		mockBooking := new(MockBookingService)
		mockBooking.On("SeatMap", mock.Anything, 99).Return(booking.SeatMap{}, movie.ErrMovieNotFound)

		handler := NewMovieHandler(new(MockCatalogService), mockBooking)

		req := httptest.NewRequest(http.MethodGet, "/movies/99/seats", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		c.SetParamNames("id")
		c.SetParamValues("99")

		err := handler.SeatMap(c)

		require.Error(t, err)
		he, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusNotFound, he.Code)
	})
}
