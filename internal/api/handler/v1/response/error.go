package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Err struct {
	StatusCode int    `json:"-"`
	Msg        string `json:"error"`
}

func (e *Err) Error() string {
	return e.Msg
}

func ErrBadRequest(err error) *Err {
	return &Err{
		StatusCode: http.StatusBadRequest,
		Msg:        err.Error(),
	}
}

func ErrWrongCredentials(err error) *Err {
	return &Err{
		StatusCode: http.StatusUnauthorized,
		Msg:        err.Error(),
	}
}

func ErrPermissionDenied(err error) *Err {
	return &Err{
		StatusCode: http.StatusForbidden,
		Msg:        err.Error(),
	}
}

func ErrNotFound(resource, key string, value interface{}) *Err {
	return &Err{
		StatusCode: http.StatusNotFound,
		Msg:        fmt.Sprintf("%v with %v (%v) not found", resource, key, value),
	}
}

// ErrInternalServerError logs the wrapped cause and hides it from the
// client.
func ErrInternalServerError(err error) *Err {
	zap.L().Error("internal server error", zap.Error(err))

	return &Err{
		StatusCode: http.StatusInternalServerError,
		Msg:        "internal server error",
	}
}

func RenderErr(ctx *gin.Context, err *Err) {
	ctx.AbortWithStatusJSON(err.StatusCode, err)
}
