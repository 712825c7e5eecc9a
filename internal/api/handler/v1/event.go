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
	msgEventNotFound = "Event ID %d does not exist in this table."
	msgEventRemoved  = "Event ID %d has been removed."
	paramEventID     = "eventID"
)

type EventService interface {
	CreateEvent(ctx context.Context, event domain.Event) (domain.Event, error)
	GetEvents(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error)
	DeleteEvent(ctx context.Context, id uint) (domain.Event, error)
}

type EventHandler struct {
	svc EventService
}

func NewEventHandler(svc EventService) *EventHandler {
	return &EventHandler{
		svc: svc,
	}
}

// HandleCreateEvent godoc
// @Summary      Create an event
// @Description  event_date defaults to today and event_status to Planned.
// @Tags         events
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateEventRequest  true  "Event details"
// @Success      201    {object}  domain.Event
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err  "Validation failed"
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /events/ [post]
func (h *EventHandler) HandleCreateEvent(ctx *gin.Context) {
	var req request.CreateEventRequest
	if !bindRequest(ctx, &req) {
		return
	}

	event, err := h.svc.CreateEvent(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		err = fmt.Errorf("HandleCreateEvent -> h.svc.CreateEvent -> %w", err)
		response.RenderErr(ctx, response.ErrStorage(err))
		return
	}

	ctx.JSON(http.StatusCreated, event)
}

// HandleGetEvents godoc
// @Summary      List events
// @Tags         events
// @Produce      json
// @Param        event_id      query     int  false  "Event ID"
// @Param        organiser_id  query     int  false  "Only events hosted by this organiser"
// @Param        venue_id      query     int  false  "Only events held at this venue"
// @Success      200           {array}   domain.Event
// @Failure      400           {object}  response.Err
// @Failure      500           {object}  response.Err
// @Router       /events/ [get]
func (h *EventHandler) HandleGetEvents(ctx *gin.Context) {
	var filter request.EventFilter
	if !bindFilter(ctx, &filter) {
		return
	}

	events, err := h.svc.GetEvents(ctx.Request.Context(), filter.ToDomain())
	if err != nil {
		err = fmt.Errorf("HandleGetEvents -> h.svc.GetEvents -> %w", err)
		response.RenderErr(ctx, response.ErrStorage(err))
		return
	}

	if len(events) == 0 {
		ctx.JSON(http.StatusOK, response.Message{Message: msgNoRecords})
		return
	}

	ctx.JSON(http.StatusOK, events)
}

// HandleDeleteEvent godoc
// @Summary      Delete an event
// @Description  The event's registrations and rankings are deleted with it.
// @Tags         events
// @Produce      json
// @Param        eventID  path      int  true  "Event ID"
// @Success      200      {object}  response.Message
// @Failure      400      {object}  response.Err
// @Failure      404      {object}  response.Err
// @Failure      500      {object}  response.Err
// @Router       /events/{eventID} [delete]
func (h *EventHandler) HandleDeleteEvent(ctx *gin.Context) {
	id, ok := pathID(ctx, paramEventID)
	if !ok {
		return
	}

	if _, err := h.svc.DeleteEvent(ctx.Request.Context(), id); err != nil {
		err = fmt.Errorf("HandleDeleteEvent -> h.svc.DeleteEvent -> %w", err)
		renderServiceErr(ctx, err, fmt.Sprintf(msgEventNotFound, id))
		return
	}

	ctx.JSON(http.StatusOK, response.NewMessage(msgEventRemoved, id))
}
