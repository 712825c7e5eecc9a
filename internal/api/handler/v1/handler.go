package v1

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"

	"github.com/vietanh2810/tcg-tournament-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/tcg-tournament-api/internal/service"
)

const msgNoRecords = "No records found. Add a statement to get started."

type validatable interface {
	Validate() error
}

// bindRequest decodes the JSON body into req and runs its field rules.
// It renders the error response itself and reports whether to go on.
func bindRequest(ctx *gin.Context, req interface{}) bool {
	if err := ctx.ShouldBindJSON(req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) && typeErr.Field != "" {
			response.RenderErr(ctx, response.ErrValidation(validation.Errors{
				typeErr.Field: errors.New(typeMessage(typeErr.Type)),
			}))
			return false
		}

		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid request body: %w", err)))
		return false
	}

	if v, ok := req.(validatable); ok {
		if err := v.Validate(); err != nil {
			response.RenderErr(ctx, response.ErrValidation(err))
			return false
		}
	}

	return true
}

func bindFilter(ctx *gin.Context, filter interface{}) bool {
	if err := ctx.ShouldBindQuery(filter); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(fmt.Errorf("invalid query parameter: %w", err)))
		return false
	}

	return true
}

// pathID reads an id segment. A segment that is not an id matches no resource.
func pathID(ctx *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil {
		response.RenderErr(ctx, response.ErrRouteNotFound())
		return 0, false
	}

	return uint(id), true
}

func renderServiceErr(ctx *gin.Context, err error, notFoundMessage string) {
	if errors.Is(err, service.ErrNotFound) {
		response.RenderErr(ctx, response.ErrNotFound(notFoundMessage))
		return
	}

	response.RenderErr(ctx, response.ErrStorage(err))
}

// typeMessage names the JSON type a field expects.
func typeMessage(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "Not a valid integer."
	case reflect.Float32, reflect.Float64:
		return "Not a valid number."
	case reflect.String:
		return "Not a valid string."
	case reflect.Bool:
		return "Not a valid boolean."
	}

	return "Invalid value."
}
