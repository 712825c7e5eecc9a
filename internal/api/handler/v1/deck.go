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
	msgNoDecks      = "No decks found in this database. Add a deck to get started."
	msgDeckNotFound = "Deck with id %d does not exist"
	msgDeckDeleted  = "%s deck deleted successfully."
	paramDeckID     = "deckID"
)

type DeckService interface {
	CreateDeck(ctx context.Context, deck domain.Deck) (domain.Deck, error)
	GetDecks(ctx context.Context) ([]domain.Deck, error)
	GetDeck(ctx context.Context, id uint) (domain.Deck, error)
	UpdateDeck(ctx context.Context, id uint, changes domain.DeckChanges) (domain.Deck, error)
	DeleteDeck(ctx context.Context, id uint) (domain.Deck, error)
}

type DeckHandler struct {
	svc DeckService
}

func NewDeckHandler(svc DeckService) *DeckHandler {
	return &DeckHandler{
		svc: svc,
	}
}

// HandleCreateDeck godoc
// @Summary      Create a deck
// @Tags         decks
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateDeckRequest  true  "Deck details"
// @Success      201    {object}  domain.Deck
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err  "Validation failed"
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /decks/ [post]
func (h *DeckHandler) HandleCreateDeck(ctx *gin.Context) {
	var req request.CreateDeckRequest
	if !bindRequest(ctx, &req) {
		return
	}

	deck, err := h.svc.CreateDeck(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		err = fmt.Errorf("HandleCreateDeck -> h.svc.CreateDeck -> %w", err)
		response.RenderErr(ctx, response.ErrStorage(err))
		return
	}

	ctx.JSON(http.StatusCreated, deck)
}

// HandleGetDecks godoc
// @Summary      List decks
// @Tags         decks
// @Produce      json
// @Description  An empty table is answered with a message instead of an array.
// @Success      200  {array}   domain.Deck
// @Failure      500  {object}  response.Err
// @Router       /decks/ [get]
func (h *DeckHandler) HandleGetDecks(ctx *gin.Context) {
	decks, err := h.svc.GetDecks(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetDecks -> h.svc.GetDecks -> %w", err)
		response.RenderErr(ctx, response.ErrStorage(err))
		return
	}

	if len(decks) == 0 {
		ctx.JSON(http.StatusOK, response.Message{Message: msgNoDecks})
		return
	}

	ctx.JSON(http.StatusOK, decks)
}

// HandleGetDeck godoc
// @Summary      Get a deck
// @Tags         decks
// @Produce      json
// @Param        deckID  path      int  true  "Deck ID"
// @Success      200     {object}  domain.Deck
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /decks/{deckID} [get]
func (h *DeckHandler) HandleGetDeck(ctx *gin.Context) {
	id, ok := pathID(ctx, paramDeckID)
	if !ok {
		return
	}

	deck, err := h.svc.GetDeck(ctx.Request.Context(), id)
	if err != nil {
		err = fmt.Errorf("HandleGetDeck -> h.svc.GetDeck -> %w", err)
		renderServiceErr(ctx, err, fmt.Sprintf(msgDeckNotFound, id))
		return
	}

	ctx.JSON(http.StatusOK, deck)
}

// HandleUpdateDeck godoc
// @Summary      Update a deck
// @Description  Only the fields present in the body are changed, for PUT as well as PATCH.
// @Tags         decks
// @Accept       json
// @Produce      json
// @Param        deckID  path      int                        true  "Deck ID"
// @Param        input   body      request.UpdateDeckRequest  true  "Fields to change"
// @Success      200     {object}  domain.Deck
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      409     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /decks/{deckID} [put]
// @Router       /decks/{deckID} [patch]
func (h *DeckHandler) HandleUpdateDeck(ctx *gin.Context) {
	id, ok := pathID(ctx, paramDeckID)
	if !ok {
		return
	}

	var req request.UpdateDeckRequest
	if !bindRequest(ctx, &req) {
		return
	}

	deck, err := h.svc.UpdateDeck(ctx.Request.Context(), id, req.ToDomain())
	if err != nil {
		err = fmt.Errorf("HandleUpdateDeck -> h.svc.UpdateDeck -> %w", err)
		renderServiceErr(ctx, err, fmt.Sprintf(msgDeckNotFound, id))
		return
	}

	ctx.JSON(http.StatusOK, deck)
}

// HandleDeleteDeck godoc
// @Summary      Delete a deck
// @Description  The deck's decklist entries and collection entries are deleted with it.
// @Tags         decks
// @Produce      json
// @Param        deckID  path      int  true  "Deck ID"
// @Success      200     {object}  response.Message
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /decks/{deckID} [delete]
func (h *DeckHandler) HandleDeleteDeck(ctx *gin.Context) {
	id, ok := pathID(ctx, paramDeckID)
	if !ok {
		return
	}

	deck, err := h.svc.DeleteDeck(ctx.Request.Context(), id)
	if err != nil {
		err = fmt.Errorf("HandleDeleteDeck -> h.svc.DeleteDeck -> %w", err)
		renderServiceErr(ctx, err, fmt.Sprintf(msgDeckNotFound, id))
		return
	}

	ctx.JSON(http.StatusOK, response.NewMessage(msgDeckDeleted, deck.Name))
}
