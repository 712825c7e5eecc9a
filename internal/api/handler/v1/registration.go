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
	msgRegistrationNotFound = "Player ID %d's registration to Event ID %d does not exist."
	msgRegistrationRemoved  = "Player ID %d's registration to Event ID %d has been removed."
)

type RegistrationService interface {
	Register(ctx context.Context, registration domain.Registration) (domain.Registration, error)
	GetRegistrations(ctx context.Context, filter domain.RegistrationFilter) ([]domain.Registration, error)
	Unregister(ctx context.Context, eventID, playerID uint) error
}

type RegistrationHandler struct {
	svc RegistrationService
}

func NewRegistrationHandler(svc RegistrationService) *RegistrationHandler {
	return &RegistrationHandler{
		svc: svc,
	}
}

// HandleRegister godoc
// @Summary      Register a player for an event
// @Description  registered_deck is a collection ID and may be left out. registration_date defaults to today.
// @Tags         registrations
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateRegistrationRequest  true  "Registration"
// @Success      201    {object}  domain.Registration
// @Failure      400    {object}  response.Err
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /registrations/ [post]
func (h *RegistrationHandler) HandleRegister(ctx *gin.Context) {
	var req request.CreateRegistrationRequest
	if !bindRequest(ctx, &req) {
		return
	}

	registration, err := h.svc.Register(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		err = fmt.Errorf("HandleRegister -> h.svc.Register -> %w", err)
		response.RenderErr(ctx, response.ErrStorage(err))
		return
	}

	ctx.JSON(http.StatusCreated, registration)
}

// HandleGetRegistrations godoc
// @Summary      List registrations
// @Tags         registrations
// @Produce      json
// @Param        event_id   query     int  false  "Only registrations to this event"
// @Param        player_id  query     int  false  "Only registrations of this player"
// @Success      200        {array}   domain.Registration
// @Failure      400        {object}  response.Err
// @Failure      500        {object}  response.Err
// @Router       /registrations/ [get]
func (h *RegistrationHandler) HandleGetRegistrations(ctx *gin.Context) {
	var filter request.RegistrationFilter
	if !bindFilter(ctx, &filter) {
		return
	}

	registrations, err := h.svc.GetRegistrations(ctx.Request.Context(), filter.ToDomain())
	if err != nil {
		err = fmt.Errorf("HandleGetRegistrations -> h.svc.GetRegistrations -> %w", err)
		response.RenderErr(ctx, response.ErrStorage(err))
		return
	}

	if len(registrations) == 0 {
		ctx.JSON(http.StatusOK, response.Message{Message: msgNoRecords})
		return
	}

	ctx.JSON(http.StatusOK, registrations)
}

// HandleUnregister godoc
// @Summary      Cancel a registration
// @Tags         registrations
// @Produce      json
// @Param        eventID   path      int  true  "Event ID"
// @Param        playerID  path      int  true  "Player ID"
// @Success      200       {object}  response.Message
// @Failure      400       {object}  response.Err
// @Failure      404       {object}  response.Err
// @Failure      500       {object}  response.Err
// @Router       /registrations/{eventID}/{playerID} [delete]
func (h *RegistrationHandler) HandleUnregister(ctx *gin.Context) {
	eventID, ok := pathID(ctx, paramEventID)
	if !ok {
		return
	}
	playerID, ok := pathID(ctx, paramPlayerID)
	if !ok {
		return
	}

	if err := h.svc.Unregister(ctx.Request.Context(), eventID, playerID); err != nil {
		err = fmt.Errorf("HandleUnregister -> h.svc.Unregister -> %w", err)
		renderServiceErr(ctx, err, fmt.Sprintf(msgRegistrationNotFound, playerID, eventID))
		return
	}

	ctx.JSON(http.StatusOK, response.NewMessage(msgRegistrationRemoved, playerID, eventID))
}
