package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vietanh2810/tcg-tournament-api/internal/api/handler/v1/request"
	"github.com/vietanh2810/tcg-tournament-api/internal/api/handler/v1/response"
	"github.com/vietanh2810/tcg-tournament-api/internal/domain"
)

const (
	msgNoPlayers      = "No players found in this database. Add a player to get started."
	msgPlayerNotFound = "Player ID %d does not exist"
	msgPlayerDeleted  = "Player %s deleted successfully."
	paramPlayerID     = "playerID"
)

type PlayerService interface {
	CreatePlayer(ctx context.Context, player domain.Player) (domain.Player, error)
	GetPlayers(ctx context.Context) ([]domain.Player, error)
	GetPlayer(ctx context.Context, id uint) (domain.Player, error)
	UpdatePlayer(ctx context.Context, id uint, changes domain.PlayerChanges) (domain.Player, error)
	DeletePlayer(ctx context.Context, id uint) (domain.Player, error)
}

type PlayerHandler struct {
	svc PlayerService
}

func NewPlayerHandler(svc PlayerService) *PlayerHandler {
	return &PlayerHandler{
		svc: svc,
	}
}

// HandleCreatePlayer godoc
// @Summary      Create a player
// @Tags         players
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreatePlayerRequest  true  "Player details"
// @Success      201    {object}  domain.Player
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err  "Validation failed"
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /players/ [post]
func (h *PlayerHandler) HandleCreatePlayer(ctx *gin.Context) {
	var req request.CreatePlayerRequest
	if !bindRequest(ctx, &req) {
		return
	}

	player, err := h.svc.CreatePlayer(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		err = fmt.Errorf("HandleCreatePlayer -> h.svc.CreatePlayer -> %w", err)
		response.RenderErr(ctx, response.ErrStorage(err))
		return
	}

	ctx.JSON(http.StatusCreated, player)
}

// HandleGetPlayers godoc
// @Summary      List players
// @Tags         players
// @Produce      json
// @Description  An empty table is answered with a message instead of an array.
// @Success      200  {array}   domain.Player
// @Failure      500  {object}  response.Err
// @Router       /players/ [get]
func (h *PlayerHandler) HandleGetPlayers(ctx *gin.Context) {
	players, err := h.svc.GetPlayers(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetPlayers -> h.svc.GetPlayers -> %w", err)
		response.RenderErr(ctx, response.ErrStorage(err))
		return
	}

	if len(players) == 0 {
		ctx.JSON(http.StatusOK, response.Message{Message: msgNoPlayers})
		return
	}

	ctx.JSON(http.StatusOK, players)
}

// HandleGetPlayer godoc
// @Summary      Get a player
// @Tags         players
// @Produce      json
// @Param        playerID  path      int  true  "Player ID"
// @Success      200     {object}  domain.Player
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /players/{playerID} [get]
func (h *PlayerHandler) HandleGetPlayer(ctx *gin.Context) {
	id, ok := pathID(ctx, paramPlayerID)
	if !ok {
		return
	}

	player, err := h.svc.GetPlayer(ctx.Request.Context(), id)
	if err != nil {
		err = fmt.Errorf("HandleGetPlayer -> h.svc.GetPlayer -> %w", err)
		renderServiceErr(ctx, err, fmt.Sprintf(msgPlayerNotFound, id))
		return
	}

	ctx.JSON(http.StatusOK, player)
}

// HandleUpdatePlayer godoc
// @Summary      Update a player
// @Description  Only the fields present in the body are changed, for PUT as well as PATCH.
// @Tags         players
// @Accept       json
// @Produce      json
// @Param        playerID  path      int                        true  "Player ID"
// @Param        input   body      request.UpdatePlayerRequest  true  "Fields to change"
// @Success      200     {object}  domain.Player
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      409     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /players/{playerID} [put]
// @Router       /players/{playerID} [patch]
func (h *PlayerHandler) HandleUpdatePlayer(ctx *gin.Context) {
	id, ok := pathID(ctx, paramPlayerID)
	if !ok {
		return
	}

	var req request.UpdatePlayerRequest
	if !bindRequest(ctx, &req) {
		return
	}

	player, err := h.svc.UpdatePlayer(ctx.Request.Context(), id, req.ToDomain())
	if err != nil {
		err = fmt.Errorf("HandleUpdatePlayer -> h.svc.UpdatePlayer -> %w", err)
		renderServiceErr(ctx, err, fmt.Sprintf(msgPlayerNotFound, id))
		return
	}

	ctx.JSON(http.StatusOK, player)
}

// HandleDeletePlayer godoc
// @Summary      Delete a player
// @Description  The player's collection, registrations and rankings are deleted with them.
// @Tags         players
// @Produce      json
// @Param        playerID  path      int  true  "Player ID"
// @Success      200     {object}  response.Message
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /players/{playerID} [delete]
func (h *PlayerHandler) HandleDeletePlayer(ctx *gin.Context) {
	id, ok := pathID(ctx, paramPlayerID)
	if !ok {
		return
	}

	player, err := h.svc.DeletePlayer(ctx.Request.Context(), id)
	if err != nil {
		err = fmt.Errorf("HandleDeletePlayer -> h.svc.DeletePlayer -> %w", err)
		renderServiceErr(ctx, err, fmt.Sprintf(msgPlayerNotFound, id))
		return
	}

	ctx.JSON(http.StatusOK, response.NewMessage(msgPlayerDeleted, player.Name))
}
