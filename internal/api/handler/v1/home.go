package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/tcg-tournament-api/internal/api/handler/v1/response"
)

const msgWelcome = "Hello mother, hello father, here I am at Camp Granada! For card information please enter '/cards' at the end of the URL."

// HandleWelcome godoc
// @Summary      Welcome message
// @Tags         home
// @Produce      json
// @Success      200  {object}  response.Message
// @Router       / [get]
func HandleWelcome(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, response.Message{Message: msgWelcome})
}

func HandleNoRoute(ctx *gin.Context) {
	response.RenderErr(ctx, response.ErrRouteNotFound())
}

type Pinger interface {
	PingContext(ctx context.Context) error
}

type HealthHandler struct {
	db Pinger
}

func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{
		db: db,
	}
}

// HandleHealthcheck godoc
// @Summary      Liveness and database check
// @Tags         home
// @Produce      json
// @Success      200  {object}  response.Message
// @Failure      500  {object}  response.Err
// @Router       /healthz [get]
func (h *HealthHandler) HandleHealthcheck(ctx *gin.Context) {
	if err := h.db.PingContext(ctx.Request.Context()); err != nil {
		err = fmt.Errorf("HandleHealthcheck -> h.db.PingContext -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.Message{Message: "ok"})
}
