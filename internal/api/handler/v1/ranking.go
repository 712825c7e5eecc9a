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
	msgRankingNotFound = "Player ID %d does not have a ranking at Event ID %d."
	msgRankingRemoved  = "Player ID %d's ranking at Event ID %d has been removed."
)

type RankingService interface {
	CreateRanking(ctx context.Context, ranking domain.Ranking) (domain.Ranking, error)
	GetRankings(ctx context.Context, filter domain.RankingFilter) ([]domain.Ranking, error)
	DeleteRanking(ctx context.Context, playerID, eventID uint) error
}

type RankingHandler struct {
	svc RankingService
}

func NewRankingHandler(svc RankingService) *RankingHandler {
	return &RankingHandler{
		svc: svc,
	}
}

// HandleCreateRanking godoc
// @Summary      Record a player's result at an event
// @Description  points, wins, losses and ties default to 0.
// @Tags         rankings
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateRankingRequest  true  "Ranking"
// @Success      201    {object}  domain.Ranking
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err  "Validation failed"
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /rankings/ [post]
func (h *RankingHandler) HandleCreateRanking(ctx *gin.Context) {
	var req request.CreateRankingRequest
	if !bindRequest(ctx, &req) {
		return
	}

	ranking, err := h.svc.CreateRanking(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		err = fmt.Errorf("HandleCreateRanking -> h.svc.CreateRanking -> %w", err)
		response.RenderErr(ctx, response.ErrStorage(err))
		return
	}

	ctx.JSON(http.StatusCreated, ranking)
}

// HandleGetRankings godoc
// @Summary      List rankings
// @Tags         rankings
// @Produce      json
// @Param        player_id  query     int  false  "Only rankings of this player"
// @Param        event_id   query     int  false  "Only rankings at this event"
// @Success      200        {array}   domain.Ranking
// @Failure      400        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /rankings/ [get]
func (h *RankingHandler) HandleGetRankings(ctx *gin.Context) {
	var filter request.RankingFilter
	if !bindFilter(ctx, &filter) {
		return
	}

	rankings, err := h.svc.GetRankings(ctx.Request.Context(), filter.ToDomain())
	if err != nil {
		err = fmt.Errorf("HandleGetRankings -> h.svc.GetRankings -> %w", err)
		response.RenderErr(ctx, response.ErrStorage(err))
		return
	}

	if len(rankings) == 0 {
		ctx.JSON(http.StatusOK, response.Message{Message: msgNoRecords})
		return
	}

	ctx.JSON(http.StatusOK, rankings)
}

// HandleDeleteRanking godoc
// @Summary      Delete a ranking
// @Tags         rankings
// @Produce      json
// @Param        playerID  path      int  true  "Player ID"
// @Param        eventID   path      int  true  "Event ID"
// @Success      200       {object}  response.Message
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /rankings/{playerID}/{eventID} [delete]
func (h *RankingHandler) HandleDeleteRanking(ctx *gin.Context) {
	playerID, ok := pathID(ctx, paramPlayerID)
	if !ok {
		return
	}
	eventID, ok := pathID(ctx, paramEventID)
	if !ok {
		return
	}

	if err := h.svc.DeleteRanking(ctx.Request.Context(), playerID, eventID); err != nil {
		err = fmt.Errorf("HandleDeleteRanking -> h.svc.DeleteRanking -> %w", err)
		renderServiceErr(ctx, err, fmt.Sprintf(msgRankingNotFound, playerID, eventID))
		return
	}

	ctx.JSON(http.StatusOK, response.NewMessage(msgRankingRemoved, playerID, eventID))
}
