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

type FamilyService interface {
	Create(ctx context.Context, family domain.Family) (domain.Family, error)
	Get(ctx context.Context, id uint) (domain.Family, error)
	List(ctx context.Context) ([]domain.Family, error)
	Update(ctx context.Context, family domain.Family) (domain.Family, error)
	Delete(ctx context.Context, id uint) error
}

type FamilySheetService interface {
	Assign(ctx context.Context, familyID, sheetID uint) (domain.Sheet, error)
	Unassign(ctx context.Context, familyID, sheetID uint) (domain.Sheet, error)
}

type FamilyHandler struct {
	svc      FamilyService
	sheetSvc FamilySheetService
}

func NewFamilyHandler(svc FamilyService, sheetSvc FamilySheetService) *FamilyHandler {
	return &FamilyHandler{
		svc:      svc,
		sheetSvc: sheetSvc,
	}
}

// HandleListFamilies godoc
// @Summary      List all families
// @Tags         families
// @Produce      json
// @Success      200  {array}   domain.Family
// @Failure      500  {object}  response.Err
// @Router       /families [get]
// @Security BearerAuth
func (h *FamilyHandler) HandleListFamilies(ctx *gin.Context) {
	families, err := h.svc.List(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleListFamilies -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, families)
}

// HandleCreateFamily godoc
// @Summary      Create a family
// @Tags         families
// @Accept       json
// @Produce      json
// @Param        request  body      request.FamilyRequest true "request body"
// @Success      201  {object}  domain.Family
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /families [post]
// @Security BearerAuth
func (h *FamilyHandler) HandleCreateFamily(ctx *gin.Context) {
	var req request.FamilyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	family, err := h.svc.Create(ctx.Request.Context(), domain.Family{
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Notes: req.Notes,
	})
	if err != nil {
		if errors.Is(err, service.ErrFamilyEmailExists) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrFamilyEmailExists))

			return
		}

		err = fmt.Errorf("v1.HandleCreateFamily -> h.svc.Create -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, family)
}

// HandleGetFamily godoc
// @Summary      Get a family by ID
// @Tags         families
// @Produce      json
// @Param        familyID  path      int  true "family ID"
// @Success      200  {object}  domain.Family
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /families/{familyID} [get]
// @Security BearerAuth
func (h *FamilyHandler) HandleGetFamily(ctx *gin.Context) {
	familyID, err := uintParam(ctx, "familyID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	family, err := h.svc.Get(ctx.Request.Context(), familyID)
	if err != nil {
		if errors.Is(err, service.ErrFamilyNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("family", "ID", familyID))

			return
		}

		err = fmt.Errorf("v1.HandleGetFamily -> h.svc.Get -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, family)
}

// HandleUpdateFamily godoc
// @Summary      Update a family
// @Tags         families
// @Accept       json
// @Produce      json
// @Param        familyID  path      int  true "family ID"
// @Param        request   body      request.FamilyRequest true "request body"
// @Success      200  {object}  domain.Family
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /families/{familyID} [put]
// @Security BearerAuth
func (h *FamilyHandler) HandleUpdateFamily(ctx *gin.Context) {
	familyID, err := uintParam(ctx, "familyID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	var req request.FamilyRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	family, err := h.svc.Update(ctx.Request.Context(), domain.Family{
		ID:    familyID,
		Name:  req.Name,
		Email: req.Email,
		Phone: req.Phone,
		Notes: req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFamilyNotFound):
			response.RenderErr(ctx, response.ErrNotFound("family", "ID", familyID))
		case errors.Is(err, service.ErrFamilyEmailExists):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrFamilyEmailExists))
		default:
			err = fmt.Errorf("v1.HandleUpdateFamily -> h.svc.Update -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, family)
}

// HandleDeleteFamily godoc
// @Summary      Delete a family
// @Description  Removes the family and its tickets; assigned sheets return to the unassigned pool.
// @Tags         families
// @Produce      json
// @Param        familyID  path      int  true "family ID"
// @Success      204  {string}  string
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /families/{familyID} [delete]
// @Security BearerAuth
func (h *FamilyHandler) HandleDeleteFamily(ctx *gin.Context) {
	familyID, err := uintParam(ctx, "familyID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), familyID); err != nil {
		if errors.Is(err, service.ErrFamilyNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("family", "ID", familyID))

			return
		}

		err = fmt.Errorf("v1.HandleDeleteFamily -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Status(http.StatusNoContent)
}

// HandleAssignSheet godoc
// @Summary      Assign an unassigned sheet to a family
// @Tags         families
// @Produce      json
// @Param        familyID  path      int  true "family ID"
// @Param        sheetID   path      int  true "sheet ID"
// @Success      200  {object}  domain.Sheet
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /families/{familyID}/sheets/{sheetID}/assign [post]
// @Security BearerAuth
func (h *FamilyHandler) HandleAssignSheet(ctx *gin.Context) {
	familyID, err := uintParam(ctx, "familyID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	sheetID, err := uintParam(ctx, "sheetID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	sheet, err := h.sheetSvc.Assign(ctx.Request.Context(), familyID, sheetID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFamilyNotFound):
			response.RenderErr(ctx, response.ErrNotFound("family", "ID", familyID))
		case errors.Is(err, service.ErrSheetNotFound):
			response.RenderErr(ctx, response.ErrNotFound("sheet", "ID", sheetID))
		case errors.Is(err, service.ErrSheetAlreadyAssigned):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrSheetAlreadyAssigned))
		default:
			err = fmt.Errorf("v1.HandleAssignSheet -> h.sheetSvc.Assign -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, sheet)
}

// HandleUnassignSheet godoc
// @Summary      Return a family's sheet to the unassigned pool
// @Description  Discards the sheet's materialized tickets. Refused once any of them is used.
// @Tags         families
// @Produce      json
// @Param        familyID  path      int  true "family ID"
// @Param        sheetID   path      int  true "sheet ID"
// @Success      200  {object}  domain.Sheet
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /families/{familyID}/sheets/{sheetID}/unassign [post]
// @Security BearerAuth
func (h *FamilyHandler) HandleUnassignSheet(ctx *gin.Context) {
	familyID, err := uintParam(ctx, "familyID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	sheetID, err := uintParam(ctx, "sheetID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	sheet, err := h.sheetSvc.Unassign(ctx.Request.Context(), familyID, sheetID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrSheetNotFound):
			response.RenderErr(ctx, response.ErrNotFound("sheet", "ID", sheetID))
		case errors.Is(err, service.ErrSheetNotAssigned):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrSheetNotAssigned))
		case errors.Is(err, service.ErrSheetHasUsedTickets):
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrSheetHasUsedTickets))
		default:
			err = fmt.Errorf("v1.HandleUnassignSheet -> h.sheetSvc.Unassign -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.JSON(http.StatusOK, sheet)
}
