package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ticketwise/api/internal/api/handler/v1/request"
	"github.com/ticketwise/api/internal/api/handler/v1/response"
	"github.com/ticketwise/api/internal/domain"
	"github.com/ticketwise/api/internal/service"
)

type PaymentService interface {
	Record(ctx context.Context, payment domain.Payment) (domain.Payment, error)
	List(ctx context.Context, familyID *uint) ([]domain.Payment, error)
	Update(ctx context.Context, payment domain.Payment) (domain.Payment, error)
	Delete(ctx context.Context, id uint) error
}

type PaymentHandler struct {
	svc PaymentService
}

func NewPaymentHandler(svc PaymentService) *PaymentHandler {
	return &PaymentHandler{
		svc: svc,
	}
}

// HandleListPayments godoc
// @Summary      List payments, optionally filtered by family
// @Tags         payments
// @Produce      json
// @Param        family_id  query     int  false "only payments for this family"
// @Success      200  {array}   domain.Payment
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /payments [get]
// @Security BearerAuth
func (h *PaymentHandler) HandleListPayments(ctx *gin.Context) {
	var familyID *uint
	if raw, ok := ctx.GetQuery("family_id"); ok {
		value, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(errors.New("family_id must be a positive integer")))

			return
		}
		id := uint(value)
		familyID = &id
	}

	payments, err := h.svc.List(ctx.Request.Context(), familyID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListPayments -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, payments)
}

// HandleRecordPayment godoc
// @Summary      Record a payment for a family
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request  body      request.PaymentRequest true "request body"
// @Success      201  {object}  domain.Payment
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /payments [post]
// @Security BearerAuth
func (h *PaymentHandler) HandleRecordPayment(ctx *gin.Context) {
	var req request.PaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	paidAt, err := time.Parse(time.RFC3339, req.PaidAt)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid paid_at: %w", err)))

		return
	}

	payment, err := h.svc.Record(ctx.Request.Context(), domain.Payment{
		FamilyID: req.FamilyID,
		Amount:   req.Amount,
		Method:   domain.PaymentMethod(req.Method),
		PaidAt:   paidAt,
		Note:     req.Note,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPaymentMethod):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidPaymentMethod))
		case errors.Is(err, service.ErrFamilyNotFound):
			response.RenderErr(ctx, response.ErrNotFound("family", "ID", req.FamilyID))
		default:
			err = fmt.Errorf("v1.HandleRecordPayment -> h.svc.Record -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusCreated, payment)
}

// HandleUpdatePayment godoc
// @Summary      Update a payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        paymentID  path      int  true "payment ID"
// @Param        request    body      request.PaymentRequest true "request body"
// @Success      200  {object}  domain.Payment
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /payments/{paymentID} [put]
// @Security BearerAuth
func (h *PaymentHandler) HandleUpdatePayment(ctx *gin.Context) {
	paymentID, err := uintParam(ctx, "paymentID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

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

	paidAt, err := time.Parse(time.RFC3339, req.PaidAt)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid paid_at: %w", err)))

		return
	}

	payment, err := h.svc.Update(ctx.Request.Context(), domain.Payment{
		ID:       paymentID,
		FamilyID: req.FamilyID,
		Amount:   req.Amount,
		Method:   domain.PaymentMethod(req.Method),
		PaidAt:   paidAt,
		Note:     req.Note,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPaymentMethod):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidPaymentMethod))
		case errors.Is(err, service.ErrPaymentNotFound):
			response.RenderErr(ctx, response.ErrNotFound("payment", "ID", paymentID))
		default:
			err = fmt.Errorf("v1.HandleUpdatePayment -> h.svc.Update -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, payment)
}

// HandleDeletePayment godoc
// @Summary      Delete a payment
// @Tags         payments
// @Produce      json
// @Param        paymentID  path      int  true "payment ID"
// @Success      204  {string}  string
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /payments/{paymentID} [delete]
// @Security BearerAuth
func (h *PaymentHandler) HandleDeletePayment(ctx *gin.Context) {
	paymentID, err := uintParam(ctx, "paymentID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), paymentID); err != nil {
		if errors.Is(err, service.ErrPaymentNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("payment", "ID", paymentID))

			return
		}

		err = fmt.Errorf("v1.HandleDeletePayment -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}
