package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ticketwise/api/internal/api/handler/v1/request"
	"github.com/ticketwise/api/internal/api/handler/v1/response"
	"github.com/ticketwise/api/internal/domain"
	"github.com/ticketwise/api/internal/service"
)

type TicketService interface {
	ListByFamily(ctx context.Context, familyID uint) ([]domain.Ticket, error)
	Validate(ctx context.Context, familyID uint, codes []string, used bool) (int64, error)
}

type TicketHandler struct {
	svc TicketService
}

func NewTicketHandler(svc TicketService) *TicketHandler {
	return &TicketHandler{
		svc: svc,
	}
}

// HandleListFamilyTickets godoc
// @Summary      List a family's tickets
// @Description  Returns the family's ticket records, materializing them from the assigned sheets on first access.
// @Tags         tickets
// @Produce      json
// @Param        familyID  path      int  true "family ID"
// @Success      200  {array}   domain.Ticket
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /families/{familyID}/tickets [get]
// @Security BearerAuth
func (h *TicketHandler) HandleListFamilyTickets(ctx *gin.Context) {
	familyID, err := uintParam(ctx, "familyID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	tickets, err := h.svc.ListByFamily(ctx.Request.Context(), familyID)
	if err != nil {
		if errors.Is(err, service.ErrFamilyNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("family", "ID", familyID))

			return
		}

		err = fmt.Errorf("v1.HandleListFamilyTickets -> h.svc.ListByFamily -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, tickets)
}

// HandleValidateTickets godoc
// @Summary      Flip the usage flag on a family's tickets
// @Description  Updates only existing tickets; unknown codes are counted but never created.
// @Tags         tickets
// @Accept       json
// @Produce      json
// @Param        familyID  path      int  true "family ID"
// @Param        request   body      request.ValidateTicketsRequest true "request body"
// @Success      200  {object}  response.ValidateTicketsResponse
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /families/{familyID}/tickets/validate [post]
// @Security BearerAuth
func (h *TicketHandler) HandleValidateTickets(ctx *gin.Context) {
	familyID, err := uintParam(ctx, "familyID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.ValidateTicketsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	updated, err := h.svc.Validate(ctx.Request.Context(), familyID, req.Codes, req.Used)
	if err != nil {
		if errors.Is(err, service.ErrFamilyNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("family", "ID", familyID))

			return
		}

		err = fmt.Errorf("v1.HandleValidateTickets -> h.svc.Validate -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.ValidateTicketsResponse{
		Requested: len(req.Codes),
		Updated:   updated,
	})
}
