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
	msgCollectionNotFound = "Collection ID %d does not exist in this table."
	msgCollectionRemoved  = "Deck ID %d has been removed from Player ID %d's collection."
	paramCollectionID     = "collectionID"
)

type CollectionService interface {
	AddDeck(ctx context.Context, collection domain.Collection) (domain.Collection, error)
	GetCollections(ctx context.Context, filter domain.CollectionFilter) ([]domain.Collection, error)
	RemoveDeck(ctx context.Context, id uint) (domain.Collection, error)
}

type CollectionHandler struct {
	svc CollectionService
}

func NewCollectionHandler(svc CollectionService) *CollectionHandler {
	return &CollectionHandler{
		svc: svc,
	}
}

// HandleAddDeck godoc
// @Summary      Add a deck to a player's collection
// @Description  A player can hold the same deck only once.
// @Tags         collections
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateCollectionRequest  true  "Collection entry"
// @Success      201    {object}  domain.Collection
// @Failure      400    {object}  response.Err
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /collections/ [post]
func (h *CollectionHandler) HandleAddDeck(ctx *gin.Context) {
	var req request.CreateCollectionRequest
	if !bindRequest(ctx, &req) {
		return
	}

	collection, err := h.svc.AddDeck(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		err = fmt.Errorf("HandleAddDeck -> h.svc.AddDeck -> %w", err)
		response.RenderErr(ctx, response.ErrStorage(err))
		return
	}

	ctx.JSON(http.StatusCreated, collection)
}

// HandleGetCollections godoc
// @Summary      List collection entries
// @Tags         collections
// @Produce      json
// @Param        collection_id  query     int  false  "Collection ID"
// @Param        player_id      query     int  false  "Only decks owned by this player"
// @Param        deck_id        query     int  false  "Only owners of this deck"
// @Success      200            {array}   domain.Collection
// @Failure      400            {object}  response.Err
// @Failure      500            {object}  response.Err
// @Router       /collections/ [get]
func (h *CollectionHandler) HandleGetCollections(ctx *gin.Context) {
	var filter request.CollectionFilter
	if !bindFilter(ctx, &filter) {
		return
	}

	collections, err := h.svc.GetCollections(ctx.Request.Context(), filter.ToDomain())
	if err != nil {
		err = fmt.Errorf("HandleGetCollections -> h.svc.GetCollections -> %w", err)
		response.RenderErr(ctx, response.ErrStorage(err))
		return
	}

	if len(collections) == 0 {
		ctx.JSON(http.StatusOK, response.Message{Message: msgNoRecords})
		return
	}

	ctx.JSON(http.StatusOK, collections)
}

// HandleRemoveDeck godoc
// @Summary      Remove a deck from a player's collection
// @Description  Registrations that named this entry keep existing without a deck.
// @Tags         collections
// @Produce      json
// @Param        collectionID  path      int  true  "Collection ID"
// @Success      200           {object}  response.Message
// @Failure      400           {object}  response.Err
// @Failure      404           {object}  response.Err
// @Failure      500           {object}  response.Err
// @Router       /collections/{collectionID} [delete]
func (h *CollectionHandler) HandleRemoveDeck(ctx *gin.Context) {
	id, ok := pathID(ctx, paramCollectionID)
	if !ok {
		return
	}

	collection, err := h.svc.RemoveDeck(ctx.Request.Context(), id)
	if err != nil {
		err = fmt.Errorf("HandleRemoveDeck -> h.svc.RemoveDeck -> %w", err)
		renderServiceErr(ctx, err, fmt.Sprintf(msgCollectionNotFound, id))
		return
	}

	ctx.JSON(http.StatusOK, response.NewMessage(msgCollectionRemoved, collection.DeckID, collection.PlayerID))
}
