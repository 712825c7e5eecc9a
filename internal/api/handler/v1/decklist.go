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
	msgDecklistNotFound = "Card ID %d does not exist in Deck ID %d."
	msgDecklistRemoved  = "Card ID %d has been removed from Deck ID %d."
)

type DecklistService interface {
	AddCard(ctx context.Context, decklist domain.Decklist) (domain.Decklist, error)
	GetDecklists(ctx context.Context, filter domain.DecklistFilter) ([]domain.Decklist, error)
	RemoveCard(ctx context.Context, deckID, cardID uint) error
}

type DecklistHandler struct {
	svc DecklistService
}

func NewDecklistHandler(svc DecklistService) *DecklistHandler {
	return &DecklistHandler{
		svc: svc,
	}
}

// HandleAddCard godoc
// @Summary      Add a card to a deck
// @Description  card_quantity defaults to 1 and must be at least 1 when given.
// @Tags         decklists
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateDecklistRequest  true  "Decklist entry"
// @Success      201    {object}  domain.Decklist
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err  "Validation failed"
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /decklists/ [post]
func (h *DecklistHandler) HandleAddCard(ctx *gin.Context) {
	var req request.CreateDecklistRequest
	if !bindRequest(ctx, &req) {
		return
	}

	decklist, err := h.svc.AddCard(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		err = fmt.Errorf("HandleAddCard -> h.svc.AddCard -> %w", err)
		response.RenderErr(ctx, response.ErrStorage(err))
		return
	}

	ctx.JSON(http.StatusCreated, decklist)
}

// HandleGetDecklists godoc
// @Summary      List decklist entries
// @Tags         decklists
// @Produce      json
// @Param        deck_id  query     int  false  "Only entries of this deck"
// @Param        card_id  query     int  false  "Only entries of this card"
// @Success      200      {array}   domain.Decklist
// @Failure      400      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /decklists/ [get]
func (h *DecklistHandler) HandleGetDecklists(ctx *gin.Context) {
	var filter request.DecklistFilter
	if !bindFilter(ctx, &filter) {
		return
	}

	decklists, err := h.svc.GetDecklists(ctx.Request.Context(), filter.ToDomain())
	if err != nil {
		err = fmt.Errorf("HandleGetDecklists -> h.svc.GetDecklists -> %w", err)
		response.RenderErr(ctx, response.ErrStorage(err))
		return
	}

	if len(decklists) == 0 {
		ctx.JSON(http.StatusOK, response.Message{Message: msgNoRecords})
		return
	}

	ctx.JSON(http.StatusOK, decklists)
}

// HandleRemoveCard godoc
// @Summary      Remove a card from a deck
// @Tags         decklists
// @Produce      json
// @Param        deckID  path      int  true  "Deck ID"
// @Param        cardID  path      int  true  "Card ID"
// @Success      200     {object}  response.Message
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /decklists/{deckID}/{cardID} [delete]
func (h *DecklistHandler) HandleRemoveCard(ctx *gin.Context) {
	deckID, ok := pathID(ctx, paramDeckID)
	if !ok {
		return
	}
	cardID, ok := pathID(ctx, paramCardID)
	if !ok {
		return
	}

	if err := h.svc.RemoveCard(ctx.Request.Context(), deckID, cardID); err != nil {
		err = fmt.Errorf("HandleRemoveCard -> h.svc.RemoveCard -> %w", err)
		renderServiceErr(ctx, err, fmt.Sprintf(msgDecklistNotFound, cardID, deckID))
		return
	}

	ctx.JSON(http.StatusOK, response.NewMessage(msgDecklistRemoved, cardID, deckID))
}
