package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-cinema-seat-booking/internal/domain/booking"
	"github.com/sanosuguru/go-cinema-seat-booking/internal/domain/seat"
)

type BookingHandler struct {
	service BookingServiceInterface
}

func NewBookingHandler(s BookingServiceInterface) *BookingHandler {
	return &BookingHandler{service: s}
}

type StartSessionRequest struct {
	MovieID int `json:"movie_id" validate:"required,min=1" example:"3"`
}

type ToggleSeatRequest struct {
	Row int `json:"row" example:"0"`
	Col int `json:"col" example:"0"`
}

type ChosenSeatResponse struct {
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	Label string `json:"label" example:"A1"`
}

type SessionResponse struct {
	ID           string               `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	MovieID      int                  `json:"movie_id" example:"3"`
	MovieTitle   string               `json:"movie_title" example:"Inception"`
	Status       string               `json:"status" example:"open"`
	Seats        []ChosenSeatResponse `json:"seats"`
	PricePerSeat string               `json:"price_per_seat" example:"11.50"`
	Total        string               `json:"total" example:"23.00"`
}

func toSessionResponse(v booking.SessionView) SessionResponse {
	seats := make([]ChosenSeatResponse, len(v.Chosen))
	for i, c := range v.Chosen {
		seats[i] = ChosenSeatResponse{Row: c.Row, Col: c.Col, Label: c.Label()}
	}
	return SessionResponse{
		ID:           v.ID,
		MovieID:      v.MovieID,
		MovieTitle:   v.MovieTitle,
		Status:       string(v.Status),
		Seats:        seats,
		PricePerSeat: v.PricePerSeat.StringFixed(2),
		Total:        v.Total.StringFixed(2),
	}
}

// Start godoc
// @Summary 座席選択セッションを開始
// @Description 作品に対する座席選択セッションを作成します
// @Tags sessions
// @Accept json
// @Produce json
// @Param request body StartSessionRequest true "対象作品"
// @Success 201 {object} SessionResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /sessions [post]
func (h *BookingHandler) Start(c echo.Context) error {
	var req StartSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "無効なリクエスト")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	view, err := h.service.StartSession(c.Request().Context(), req.MovieID)
	if err != nil {
		return echo.NewHTTPError(statusForError(err), err.Error())
	}
	return c.JSON(http.StatusCreated, toSessionResponse(view))
}

// GetByID godoc
// @Summary セッションを取得
// @Description 指定IDのセッション状態を取得します
// @Tags sessions
// @Produce json
// @Param id path string true "セッションID"
// @Success 200 {object} SessionResponse
// @Failure 404 {object} map[string]string
// @Router /sessions/{id} [get]
func (h *BookingHandler) GetByID(c echo.Context) error {
	view, err := h.service.GetSession(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(statusForError(err), err.Error())
	}
	return c.JSON(http.StatusOK, toSessionResponse(view))
}

// ToggleSeat godoc
// @Summary 座席の選択を切り替え
// @Description 未選択の座席は選択し、選択済みの座席は解除します
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "セッションID"
// @Param request body ToggleSeatRequest true "座席座標"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} map[string]string "グリッド範囲外"
// @Failure 409 {object} map[string]string "座席が販売済み"
// @Router /sessions/{id}/seats [post]
func (h *BookingHandler) ToggleSeat(c echo.Context) error {
	var req ToggleSeatRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "無効なリクエスト")
	}
	coord := seat.Coordinate{Row: req.Row, Col: req.Col}
	view, err := h.service.ToggleSeat(c.Request().Context(), c.Param("id"), coord)
	if err != nil {
		return echo.NewHTTPError(statusForError(err), err.Error())
	}
	return c.JSON(http.StatusOK, toSessionResponse(view))
}

// Checkout godoc
// @Summary チェックアウトへ進む
// @Description セッションを支払い待ち状態へ進めます
// @Tags sessions
// @Produce json
// @Param id path string true "セッションID"
// @Success 200 {object} SessionResponse
// @Failure 400 {object} map[string]string "座席未選択"
// @Failure 409 {object} map[string]string
// @Router /sessions/{id}/checkout [post]
func (h *BookingHandler) Checkout(c echo.Context) error {
	view, err := h.service.RequestCheckout(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(statusForError(err), err.Error())
	}
	return c.JSON(http.StatusOK, toSessionResponse(view))
}

// Abandon godoc
// @Summary セッションを破棄
// @Description セッションを破棄します。座席は販売されません
// @Tags sessions
// @Produce json
// @Param id path string true "セッションID"
// @Success 200 {object} SessionResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string "既に終了済み"
// @Router /sessions/{id} [delete]
func (h *BookingHandler) Abandon(c echo.Context) error {
	view, err := h.service.AbandonSession(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(statusForError(err), err.Error())
	}
	return c.JSON(http.StatusOK, toSessionResponse(view))
}
