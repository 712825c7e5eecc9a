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
	msgNoCards      = "No cards found in this database. Add a card to get started."
	msgCardNotFound = "Card with id %d does not exist"
	msgCardDeleted  = "Card %s %s deleted successfully."
	paramCardID     = "cardID"
)

type CardService interface {
	CreateCard(ctx context.Context, card domain.Card) (domain.Card, error)
	GetCards(ctx context.Context) ([]domain.Card, error)
	GetCard(ctx context.Context, id uint) (domain.Card, error)
	UpdateCard(ctx context.Context, id uint, changes domain.CardChanges) (domain.Card, error)
	DeleteCard(ctx context.Context, id uint) (domain.Card, error)
}

type CardHandler struct {
	svc CardService
}

func NewCardHandler(svc CardService) *CardHandler {
	return &CardHandler{
		svc: svc,
	}
}

// HandleCreateCard godoc
// @Summary      Create a card
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateCardRequest  true  "Card details"
// @Success      201    {object}  domain.Card
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err  "Validation failed"
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /cards/ [post]
func (h *CardHandler) HandleCreateCard(ctx *gin.Context) {
	var req request.CreateCardRequest
	if !bindRequest(ctx, &req) {
		return
	}

	card, err := h.svc.CreateCard(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		err = fmt.Errorf("HandleCreateCard -> h.svc.CreateCard -> %w", err)
		response.RenderErr(ctx, response.ErrStorage(err))
		return
	}

	ctx.JSON(http.StatusCreated, card)
}

// HandleGetCards godoc
// @Summary      List cards
// @Tags         cards
// @Produce      json
// @Description  An empty table is answered with a message instead of an array.
// @Success      200  {array}   domain.Card
// @Failure      500  {object}  response.Err
// @Router       /cards/ [get]
func (h *CardHandler) HandleGetCards(ctx *gin.Context) {
	cards, err := h.svc.GetCards(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetCards -> h.svc.GetCards -> %w", err)
		response.RenderErr(ctx, response.ErrStorage(err))
		return
	}

	if len(cards) == 0 {
		ctx.JSON(http.StatusOK, response.Message{Message: msgNoCards})
		return
	}

	ctx.JSON(http.StatusOK, cards)
}

// HandleGetCard godoc
// @Summary      Get a card
// @Tags         cards
// @Produce      json
// @Param        cardID  path      int  true  "Card ID"
// @Success      200     {object}  domain.Card
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /cards/{cardID} [get]
func (h *CardHandler) HandleGetCard(ctx *gin.Context) {
	id, ok := pathID(ctx, paramCardID)
	if !ok {
		return
	}

	card, err := h.svc.GetCard(ctx.Request.Context(), id)
	if err != nil {
		err = fmt.Errorf("HandleGetCard -> h.svc.GetCard -> %w", err)
		renderServiceErr(ctx, err, fmt.Sprintf(msgCardNotFound, id))
		return
	}

	ctx.JSON(http.StatusOK, card)
}

// HandleUpdateCard godoc
// @Summary      Update a card
// @Description  Only the fields present in the body are changed, for PUT as well as PATCH.
// @Tags         cards
// @Accept       json
// @Produce      json
// @Param        cardID  path      int                        true  "Card ID"
// @Param        input   body      request.UpdateCardRequest  true  "Fields to change"
// @Success      200     {object}  domain.Card
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      409     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /cards/{cardID} [put]
// @Router       /cards/{cardID} [patch]
func (h *CardHandler) HandleUpdateCard(ctx *gin.Context) {
	id, ok := pathID(ctx, paramCardID)
	if !ok {
		return
	}

	var req request.UpdateCardRequest
	if !bindRequest(ctx, &req) {
		return
	}

	card, err := h.svc.UpdateCard(ctx.Request.Context(), id, req.ToDomain())
	if err != nil {
		err = fmt.Errorf("HandleUpdateCard -> h.svc.UpdateCard -> %w", err)
		renderServiceErr(ctx, err, fmt.Sprintf(msgCardNotFound, id))
		return
	}

	ctx.JSON(http.StatusOK, card)
}

// HandleDeleteCard godoc
// @Summary      Delete a card
// @Description  The card's decklist entries are deleted with it.
// @Tags         cards
// @Produce      json
// @Param        cardID  path      int  true  "Card ID"
// @Success      200     {object}  response.Message
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /cards/{cardID} [delete]
func (h *CardHandler) HandleDeleteCard(ctx *gin.Context) {
	id, ok := pathID(ctx, paramCardID)
	if !ok {
		return
	}

	card, err := h.svc.DeleteCard(ctx.Request.Context(), id)
	if err != nil {
		err = fmt.Errorf("HandleDeleteCard -> h.svc.DeleteCard -> %w", err)
		renderServiceErr(ctx, err, fmt.Sprintf(msgCardNotFound, id))
		return
	}

	ctx.JSON(http.StatusOK, response.NewMessage(msgCardDeleted, card.Number, card.Name))
}
