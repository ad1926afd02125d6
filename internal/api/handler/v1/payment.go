package v1

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/medicamp-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/medicamp-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/medicamp-api/internal/domain"
	"github.com/vietanh2810/medicamp-api/internal/pkg/payment"
	"github.com/vietanh2810/medicamp-api/internal/service"
)

var errEmailMismatch = errors.New("email does not match the authenticated user")

type PaymentService interface {
	CreateIntent(ctx context.Context, price string) (payment.Intent, error)
	Pay(ctx context.Context, actorEmail, participantID, transactionID string) (domain.PaymentOutcome, error)
	History(ctx context.Context, email string, q domain.ListQuery) ([]domain.PaymentHistoryRow, error)
	CountHistory(ctx context.Context, email, search string) (int64, error)
}

type PaymentHandler struct {
	svc PaymentService
}

func NewPaymentHandler(svc PaymentService) *PaymentHandler {
	return &PaymentHandler{
		svc: svc,
	}
}

// HandleCreatePaymentIntent godoc
// @Summary      Open a card payment
// @Description  price is the camp fee in currency units; it is charged in cents.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      request.CreatePaymentIntentRequest  true  "request body"
// @Success      200      {object}  response.ClientSecretResponse
// @Failure      400      {object}  response.Err
// @Failure      503      {object}  response.Err
// @Router       /create-payment-intent [post]
// @Security BearerAuth
func (h *PaymentHandler) HandleCreatePaymentIntent(ctx *gin.Context) {
	var req request.CreatePaymentIntentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	intent, err := h.svc.CreateIntent(ctx.Request.Context(), req.Price.String())
	if err != nil {
		renderServiceErr(ctx, "v1.HandleCreatePaymentIntent -> h.svc.CreateIntent", err)
		return
	}

	ctx.JSON(http.StatusOK, response.ClientSecretResponse{ClientSecret: intent.ClientSecret})
}

// HandlePay godoc
// @Summary      Record a completed payment
// @Description  Records the payment, marks the registration Paid and finalizes the payment.
// @Description  A failure after the first step returns the outcome with status 500; applied steps are kept.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      request.PaymentRequest  true  "request body"
// @Success      201      {object}  domain.PaymentOutcome
// @Failure      400      {object}  response.Err
// @Failure      403      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      409      {object}  response.Err
// @Failure      500      {object}  domain.PaymentOutcome
// @Router       /payments [post]
// @Security BearerAuth
func (h *PaymentHandler) HandlePay(ctx *gin.Context) {
	email, respErr := emailFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.PaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	setLookupID(ctx, "registration", req.ParticipantID)

	outcome, err := h.svc.Pay(ctx.Request.Context(), email, req.ParticipantID, req.TransactionID)
	if err != nil {
		if errors.Is(err, service.ErrIncomplete) {
			renderIncomplete(ctx, "v1.HandlePay -> h.svc.Pay", err, outcome)
			return
		}

		renderServiceErr(ctx, "v1.HandlePay -> h.svc.Pay", err)
		return
	}

	ctx.JSON(http.StatusCreated, outcome)
}

// HandlePaymentHistory godoc
// @Summary      Payment history of a user
// @Tags         payments
// @Produce      json
// @Param        email   path      string  true   "payer email"
// @Param        search  query     string  false  "search term"
// @Param        page    query     int     false  "page index, from 0"
// @Param        size    query     int     false  "page size"
// @Success      200     {array}   domain.PaymentHistoryRow
// @Failure      403     {object}  response.Err
// @Router       /payment-history/{email} [get]
// @Security BearerAuth
func (h *PaymentHandler) HandlePaymentHistory(ctx *gin.Context) {
	rows, err := h.svc.History(ctx.Request.Context(), ctx.Param("email"), listQueryFromContext(ctx))
	if err != nil {
		renderServiceErr(ctx, "v1.HandlePaymentHistory -> h.svc.History", err)
		return
	}

	ctx.JSON(http.StatusOK, rows)
}

// HandleHistoryCount godoc
// @Summary      Count payment history rows
// @Tags         payments
// @Produce      json
// @Param        email   query     string  true   "payer email, must be the caller"
// @Param        search  query     string  false  "search term"
// @Success      200     {object}  domain.CountResult
// @Failure      403     {object}  response.Err
// @Router       /history-count [get]
// @Security BearerAuth
func (h *PaymentHandler) HandleHistoryCount(ctx *gin.Context) {
	email, respErr := emailFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	if ctx.Query("email") != email {
		response.RenderErr(ctx, response.ErrPermissionDenied(errEmailMismatch))
		return
	}

	count, err := h.svc.CountHistory(ctx.Request.Context(), email, ctx.Query("search"))
	if err != nil {
		renderServiceErr(ctx, "v1.HandleHistoryCount -> h.svc.CountHistory", err)
		return
	}

	ctx.JSON(http.StatusOK, domain.CountResult{Count: count})
}
