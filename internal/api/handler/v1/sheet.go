package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ticketwise/api/internal/api/handler/v1/request"
	"github.com/ticketwise/api/internal/api/handler/v1/response"
	"github.com/ticketwise/api/internal/domain"
	"github.com/ticketwise/api/internal/service"
)

type SheetService interface {
	Generate(ctx context.Context, level domain.Level, packSize domain.PackSize, generations int) ([]domain.Sheet, error)
	List(ctx context.Context, assigned *bool, familyID *uint) ([]domain.Sheet, error)
	Get(ctx context.Context, id uint) (domain.Sheet, error)
	Export(ctx context.Context, id uint, barcode bool) (domain.Sheet, []byte, error)
	Delete(ctx context.Context, id uint) error
}

type SheetHandler struct {
	svc SheetService
}

func NewSheetHandler(svc SheetService) *SheetHandler {
	return &SheetHandler{
		svc: svc,
	}
}

// HandleListSheets godoc
// @Summary      List ticket sheets
// @Tags         sheets
// @Produce      json
// @Param        assigned    query     bool  false "filter by assignment state"
// @Param        family_id   query     int   false "filter by owning family"
// @Success      200  {array}   domain.Sheet
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /sheets [get]
// @Security BearerAuth
func (h *SheetHandler) HandleListSheets(ctx *gin.Context) {
	var assigned *bool
	if raw, ok := ctx.GetQuery("assigned"); ok {
		value, err := strconv.ParseBool(raw)
		if err != nil {
			response.RenderErr(ctx, response.ErrBadRequest(errors.New("assigned must be a boolean")))

			return
		}
		assigned = &value
	}

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

	sheets, err := h.svc.List(ctx.Request.Context(), assigned, familyID)
	if err != nil {
		err = fmt.Errorf("v1.HandleListSheets -> h.svc.List -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, sheets)
}

// HandleGenerateSheets godoc
// @Summary      Generate a batch of numbered ticket sheets
// @Description  Allocates the next contiguous serial block for the level and current year and creates the sheets. Fails as a whole if the 4-digit serial space would overflow.
// @Tags         sheets
// @Accept       json
// @Produce      json
// @Param        request  body      request.GenerateSheetsRequest true "request body"
// @Success      201  {array}   domain.Sheet
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /sheets/generate [post]
// @Security BearerAuth
func (h *SheetHandler) HandleGenerateSheets(ctx *gin.Context) {
	var req request.GenerateSheetsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	sheets, err := h.svc.Generate(ctx.Request.Context(), domain.Level(req.Level), domain.PackSize(req.PackSize), req.Generations)
	if err != nil {
		if errors.Is(err, service.ErrSerialSpaceExhausted) ||
			errors.Is(err, service.ErrInvalidLevel) ||
			errors.Is(err, service.ErrInvalidPackSize) ||
			errors.Is(err, service.ErrInvalidGenerations) {
			response.RenderErr(ctx, response.ErrBadRequest(err))

			return
		}

		err = fmt.Errorf("v1.HandleGenerateSheets -> h.svc.Generate -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusCreated, sheets)
}

// HandleGetSheet godoc
// @Summary      Get a sheet by ID
// @Tags         sheets
// @Produce      json
// @Param        sheetID  path      int  true "sheet ID"
// @Success      200  {object}  domain.Sheet
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /sheets/{sheetID} [get]
// @Security BearerAuth
func (h *SheetHandler) HandleGetSheet(ctx *gin.Context) {
	sheetID, err := uintParam(ctx, "sheetID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	sheet, err := h.svc.Get(ctx.Request.Context(), sheetID)
	if err != nil {
		if errors.Is(err, service.ErrSheetNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("sheet", "ID", sheetID))

			return
		}

		err = fmt.Errorf("v1.HandleGetSheet -> h.svc.Get -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, sheet)
}

// HandleExportSheet godoc
// @Summary      Export a sheet as a printable SVG
// @Description  Renders the sheet's ticket grid and offers it as a download. Each successful export increments the sheet's download counter.
// @Tags         sheets
// @Produce      image/svg+xml
// @Param        sheetID  path      int   true  "sheet ID"
// @Param        barcode  query     bool  false "include Code 39 strips"
// @Success      200  {string}  string
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /sheets/{sheetID}/render [get]
// @Security BearerAuth
func (h *SheetHandler) HandleExportSheet(ctx *gin.Context) {
	sheetID, err := uintParam(ctx, "sheetID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	barcode, _ := strconv.ParseBool(ctx.DefaultQuery("barcode", "false"))

	sheet, svg, err := h.svc.Export(ctx.Request.Context(), sheetID, barcode)
	if err != nil {
		if errors.Is(err, service.ErrSheetNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("sheet", "ID", sheetID))

			return
		}

		err = fmt.Errorf("v1.HandleExportSheet -> h.svc.Export -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", sheet.ExportFilename()))
	ctx.Data(http.StatusOK, "image/svg+xml", svg)
}

// HandleDeleteSheet godoc
// @Summary      Delete an unassigned sheet
// @Tags         sheets
// @Produce      json
// @Param        sheetID  path      int  true "sheet ID"
// @Success      204  {string}  string
// @Failure      400  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /sheets/{sheetID} [delete]
// @Security BearerAuth
func (h *SheetHandler) HandleDeleteSheet(ctx *gin.Context) {
	sheetID, err := uintParam(ctx, "sheetID")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), sheetID); err != nil {
		switch {
		case errors.Is(err, service.ErrSheetNotFound):
			response.RenderErr(ctx, response.ErrNotFound("sheet", "ID", sheetID))
		case errors.Is(err, service.ErrSheetAlreadyAssigned):
			response.RenderErr(ctx, response.ErrBadRequest(errors.New("cannot delete an assigned sheet")))
		default:
			err = fmt.Errorf("v1.HandleDeleteSheet -> h.svc.Delete -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))
		}

		return
	}

	ctx.Status(http.StatusNoContent)
}
