package v1

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ticketwise/api/internal/api/handler/v1/response"
	"github.com/ticketwise/api/internal/api/middleware"
	"github.com/ticketwise/api/internal/domain"
)

var errNotAuthenticated = errors.New("not authenticated")

func getUserFromContext(ctx *gin.Context, svc UserService) (domain.User, *response.Err) {
	value, ok := ctx.Get(middleware.ContextKeyUserID)
	if !ok {
		return domain.User{}, response.ErrWrongCredentials(errNotAuthenticated)
	}

	userID, ok := value.(uint)
	if !ok {
		return domain.User{}, response.ErrWrongCredentials(errNotAuthenticated)
	}

	user, err := svc.GetUser(ctx.Request.Context(), userID)
	if err != nil {
		return domain.User{}, response.ErrInternalServerError(err)
	}

	return user, nil
}

func uintParam(ctx *gin.Context, name string) (uint, error) {
	raw := ctx.Param(name)
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, errors.New(name + " must be a positive integer")
	}

	return uint(parsed), nil
}
