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

type SettingsService interface {
	GetLogo(ctx context.Context) (domain.Asset, error)
	SetLogo(ctx context.Context, data string) (domain.Asset, error)
}

type SettingsHandler struct {
	svc SettingsService
}

func NewSettingsHandler(svc SettingsService) *SettingsHandler {
	return &SettingsHandler{
		svc: svc,
	}
}

// HandleGetLogo godoc
// @Summary      Get the logo printed on ticket sheets
// @Tags         settings
// @Produce      json
// @Success      200  {object}  domain.Asset
// @Failure      500  {object}  response.Err
// @Router       /settings/logo [get]
// @Security BearerAuth
func (h *SettingsHandler) HandleGetLogo(ctx *gin.Context) {
	asset, err := h.svc.GetLogo(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("v1.HandleGetLogo -> h.svc.GetLogo -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, asset)
}

// HandleUpdateLogo godoc
// @Summary      Replace the logo printed on ticket sheets
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        request  body      request.UpdateLogoRequest true "request body"
// @Success      200  {object}  domain.Asset
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /settings/logo [put]
// @Security BearerAuth
func (h *SettingsHandler) HandleUpdateLogo(ctx *gin.Context) {
	var req request.UpdateLogoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	asset, err := h.svc.SetLogo(ctx.Request.Context(), req.Data)
	if err != nil {
		if errors.Is(err, service.ErrInvalidImageData) {
			response.RenderErr(ctx, response.ErrBadRequest(service.ErrInvalidImageData))

			return
		}

		err = fmt.Errorf("v1.HandleUpdateLogo -> h.svc.SetLogo -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, asset)
}
