package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sanosuguru/go-cinema-seat-booking/internal/domain/payment"
)

type PaymentHandler struct {
	service PaymentServiceInterface
}

func NewPaymentHandler(s PaymentServiceInterface) *PaymentHandler {
	return &PaymentHandler{service: s}
}

type StartPaymentRequest struct {
	CardNumber string `json:"card_number" validate:"required,min=16" example:"1234567890123456"`
	Expiry     string `json:"expiry" example:"12/26"`
	CVV        string `json:"cvv" validate:"required,min=3" example:"123"`
}

type AttemptResponse struct {
	ID        string `json:"id" example:"550e8400-e29b-41d4-a716-446655440000"`
	SessionID string `json:"session_id"`
	Amount    string `json:"amount" example:"23.00"`
	Progress  int    `json:"progress" example:"45"`
	Outcome   string `json:"outcome" example:"pending"`
}

func toAttemptResponse(v payment.AttemptView) AttemptResponse {
	return AttemptResponse{
		ID:        v.ID,
		SessionID: v.SessionID,
		Amount:    v.Amount.StringFixed(2),
		Progress:  v.Progress,
		Outcome:   string(v.Outcome),
	}
}

// Start godoc
// @Summary 決済を開始
// @Description カード入力を検証し、模擬オーソリゼーションを開始します
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "セッションID"
// @Param request body StartPaymentRequest true "カード情報"
// @Success 202 {object} AttemptResponse
// @Failure 400 {object} map[string]string "カード入力不正"
// @Failure 409 {object} map[string]string "支払い待ちでない/試行中"
// @Router /sessions/{id}/payment [post]
func (h *PaymentHandler) Start(c echo.Context) error {
	var req StartPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "無効なリクエスト")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}
	card := payment.Card{Number: req.CardNumber, Expiry: req.Expiry, CVV: req.CVV}
	view, err := h.service.StartAuthorization(c.Request().Context(), c.Param("id"), card)
	if err != nil {
		return echo.NewHTTPError(statusForError(err), err.Error())
	}
	return c.JSON(http.StatusAccepted, toAttemptResponse(view))
}

// Progress godoc
// @Summary 決済進捗を取得
// @Description 進行中または完了した決済試行の状態を取得します
// @Tags payments
// @Produce json
// @Param id path string true "セッションID"
// @Success 200 {object} AttemptResponse
// @Failure 404 {object} map[string]string
// @Router /sessions/{id}/payment [get]
func (h *PaymentHandler) Progress(c echo.Context) error {
	view, err := h.service.GetAttempt(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(statusForError(err), err.Error())
	}
	return c.JSON(http.StatusOK, toAttemptResponse(view))
}

// Cancel godoc
// @Summary 決済をキャンセル
// @Description 完了前の決済試行をキャンセルし、セッションを破棄します
// @Tags payments
// @Produce json
// @Param id path string true "セッションID"
// @Success 200 {object} AttemptResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string "既に完了済み"
// @Router /sessions/{id}/payment [delete]
func (h *PaymentHandler) Cancel(c echo.Context) error {
	view, err := h.service.CancelAuthorization(c.Request().Context(), c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(statusForError(err), err.Error())
	}
	return c.JSON(http.StatusOK, toAttemptResponse(view))
}
