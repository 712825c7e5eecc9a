package response

import (
	"errors"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
	"go.uber.org/zap"

	"github.com/vietanh2810/tcg-tournament-api/internal/pkg/pgerr"
)

const (
	msgValidation     = "Validation failed."
	msgRouteNotFound  = "Requested resource not found/ does not exist"
	msgInternalServer = "Server error occured. Please contact the site administration."
)

// Err is the body of every error response.
type Err struct {
	HTTPStatusCode int               `json:"-"`
	Cause          error             `json:"-"`
	Message        string            `json:"message" example:"Card with id 7 does not exist"`
	Errors         map[string]string `json:"errors,omitempty"`
}

func (e *Err) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}

	return e.Message
}

func (e *Err) Unwrap() error {
	return e.Cause
}

// RenderErr writes e and stops the handler chain. Server faults are logged
// with their cause; client errors only at debug level.
func RenderErr(ctx *gin.Context, e *Err) {
	fields := []zap.Field{
		zap.String("request_id", requestid.Get(ctx)),
		zap.String("method", ctx.Request.Method),
		zap.String("path", ctx.Request.URL.Path),
		zap.Int("status", e.HTTPStatusCode),
		zap.Error(e.Cause),
	}
	if e.HTTPStatusCode >= http.StatusInternalServerError {
		zap.L().Error(e.Message, fields...)
	} else {
		zap.L().Debug(e.Message, fields...)
	}

	ctx.AbortWithStatusJSON(e.HTTPStatusCode, e)
}

func ErrBadRequest(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusBadRequest,
		Cause:          err,
		Message:        err.Error(),
	}
}

// ErrValidation reports field rule failures, one message per field.
// They are answered with 404.
func ErrValidation(err error) *Err {
	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return ErrInternalServerError(err)
	}

	fields := make(map[string]string, len(fieldErrs))
	for field, fieldErr := range fieldErrs {
		fields[field] = fieldErr.Error()
	}

	return &Err{
		HTTPStatusCode: http.StatusNotFound,
		Cause:          err,
		Message:        msgValidation,
		Errors:         fields,
	}
}

func ErrNotFound(message string) *Err {
	return &Err{
		HTTPStatusCode: http.StatusNotFound,
		Message:        message,
	}
}

func ErrRouteNotFound() *Err {
	return ErrNotFound(msgRouteNotFound)
}

// ErrStorage translates a persistence failure. Constraint and data errors
// raised by postgres become 409, anything else is a server fault.
func ErrStorage(err error) *Err {
	v, ok := pgerr.Classify(err)
	if !ok {
		return ErrInternalServerError(err)
	}

	return &Err{
		HTTPStatusCode: http.StatusConflict,
		Cause:          err,
		Message:        v.UserMessage(),
	}
}

func ErrInternalServerError(err error) *Err {
	return &Err{
		HTTPStatusCode: http.StatusInternalServerError,
		Cause:          err,
		Message:        msgInternalServer,
	}
}
