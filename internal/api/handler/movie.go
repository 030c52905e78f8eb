package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-cinema-seat-booking/internal/domain/movie"
)

type MovieHandler struct {
	catalog CatalogServiceInterface
	booking BookingServiceInterface
}

func NewMovieHandler(catalog CatalogServiceInterface, booking BookingServiceInterface) *MovieHandler {
	return &MovieHandler{catalog: catalog, booking: booking}
}

type MovieResponse struct {
	ID          int    `json:"id" example:"3"`
	Title       string `json:"title" example:"Inception"`
	Genre       string `json:"genre" example:"Sci-Fi/Thriller"`
	Price       string `json:"price" example:"11.50"`
	Description string `json:"description"`
}

func toMovieResponse(m *movie.Movie) MovieResponse {
	return MovieResponse{
		ID:          m.ID,
		Title:       m.Title,
		Genre:       m.Genre,
		Price:       m.Price.StringFixed(2),
		Description: m.Description,
	}
}

type SeatCellResponse struct {
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	Label string `json:"label" example:"A1"`
	State string `json:"state" example:"available"`
}

type SeatMapResponse struct {
	MovieID int                `json:"movie_id"`
	Rows    int                `json:"rows"`
	Cols    int                `json:"cols"`
	Seats   []SeatCellResponse `json:"seats"`
}

// List godoc
// @Summary 上映作品一覧を取得
// @Description 予約可能な上映作品の一覧を取得します
// @Tags movies
// @Produce json
// @Success 200 {array} MovieResponse
// @Router /movies [get]
func (h *MovieHandler) List(c echo.Context) error {
	movies, err := h.catalog.ListMovies(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	resp := make([]MovieResponse, len(movies))
	for i, m := range movies {
		resp[i] = toMovieResponse(m)
	}
	return c.JSON(http.StatusOK, resp)
}

// GetByID godoc
// @Summary 上映作品を取得
// @Description 指定IDの上映作品を取得します
// @Tags movies
// @Produce json
// @Param id path int true "作品ID"
// @Success 200 {object} MovieResponse
// @Failure 404 {object} map[string]string
// @Router /movies/{id} [get]
func (h *MovieHandler) GetByID(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "作品IDが不正です")
	}
	m, err := h.catalog.GetMovie(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(statusForError(err), err.Error())
	}
	return c.JSON(http.StatusOK, toMovieResponse(m))
}

// SeatMap godoc
// @Summary 座席マップを取得
// @Description 作品の座席グリッドと販売状況を取得します
// @Tags movies
// @Produce json
// @Param id path int true "作品ID"
// @Success 200 {object} SeatMapResponse
// @Failure 404 {object} map[string]string
// @Router /movies/{id}/seats [get]
func (h *MovieHandler) SeatMap(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "作品IDが不正です")
	}
	m, err := h.booking.SeatMap(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(statusForError(err), err.Error())
	}
	resp := SeatMapResponse{
		MovieID: m.MovieID,
		Rows:    m.Rows,
		Cols:    m.Cols,
		Seats:   make([]SeatCellResponse, len(m.Cells)),
	}
	for i, cell := range m.Cells {
		resp.Seats[i] = SeatCellResponse{
			Row:   cell.Coordinate.Row,
			Col:   cell.Coordinate.Col,
			Label: cell.Label,
			State: string(cell.State),
		}
	}
	return c.JSON(http.StatusOK, resp)
}
