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
	msgNoVenues      = "No venues found in this database. Add a venue to get started."
	msgVenueNotFound = "Venue ID %d does not exist"
	msgVenueDeleted  = "The %s venue has been deleted successfully."
	paramVenueID     = "venueID"
)

type VenueService interface {
	CreateVenue(ctx context.Context, venue domain.Venue) (domain.Venue, error)
	GetVenues(ctx context.Context) ([]domain.Venue, error)
	GetVenue(ctx context.Context, id uint) (domain.Venue, error)
	UpdateVenue(ctx context.Context, id uint, changes domain.VenueChanges) (domain.Venue, error)
	DeleteVenue(ctx context.Context, id uint) (domain.Venue, error)
}

type VenueHandler struct {
	svc VenueService
}

func NewVenueHandler(svc VenueService) *VenueHandler {
	return &VenueHandler{
		svc: svc,
	}
}

// HandleCreateVenue godoc
// @Summary      Create a venue
// @Tags         venues
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateVenueRequest  true  "Venue details"
// @Success      201    {object}  domain.Venue
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err  "Validation failed"
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /venues/ [post]
func (h *VenueHandler) HandleCreateVenue(ctx *gin.Context) {
	var req request.CreateVenueRequest
	if !bindRequest(ctx, &req) {
		return
	}

	venue, err := h.svc.CreateVenue(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		err = fmt.Errorf("HandleCreateVenue -> h.svc.CreateVenue -> %w", err)
		response.RenderErr(ctx, response.ErrStorage(err))
		return
	}

	ctx.JSON(http.StatusCreated, venue)
}

// HandleGetVenues godoc
// @Summary      List venues
// @Tags         venues
// @Produce      json
// @Description  An empty table is answered with a message instead of an array.
// @Success      200  {array}   domain.Venue
// @Failure      500  {object}  response.Err
// @Router       /venues/ [get]
func (h *VenueHandler) HandleGetVenues(ctx *gin.Context) {
	venues, err := h.svc.GetVenues(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetVenues -> h.svc.GetVenues -> %w", err)
		response.RenderErr(ctx, response.ErrStorage(err))
		return
	}

	if len(venues) == 0 {
		ctx.JSON(http.StatusOK, response.Message{Message: msgNoVenues})
		return
	}

	ctx.JSON(http.StatusOK, venues)
}

// HandleGetVenue godoc
// @Summary      Get a venue
// @Tags         venues
// @Produce      json
// @Param        venueID  path      int  true  "Venue ID"
// @Success      200     {object}  domain.Venue
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /venues/{venueID} [get]
func (h *VenueHandler) HandleGetVenue(ctx *gin.Context) {
	id, ok := pathID(ctx, paramVenueID)
	if !ok {
		return
	}

	venue, err := h.svc.GetVenue(ctx.Request.Context(), id)
	if err != nil {
		err = fmt.Errorf("HandleGetVenue -> h.svc.GetVenue -> %w", err)
		renderServiceErr(ctx, err, fmt.Sprintf(msgVenueNotFound, id))
		return
	}

	ctx.JSON(http.StatusOK, venue)
}

// HandleUpdateVenue godoc
// @Summary      Update a venue
// @Description  Only the fields present in the body are changed, for PUT as well as PATCH.
// @Tags         venues
// @Accept       json
// @Produce      json
// @Param        venueID  path      int                        true  "Venue ID"
// @Param        input   body      request.UpdateVenueRequest  true  "Fields to change"
// @Success      200     {object}  domain.Venue
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      409     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /venues/{venueID} [put]
// @Router       /venues/{venueID} [patch]
func (h *VenueHandler) HandleUpdateVenue(ctx *gin.Context) {
	id, ok := pathID(ctx, paramVenueID)
	if !ok {
		return
	}

	var req request.UpdateVenueRequest
	if !bindRequest(ctx, &req) {
		return
	}

	venue, err := h.svc.UpdateVenue(ctx.Request.Context(), id, req.ToDomain())
	if err != nil {
		err = fmt.Errorf("HandleUpdateVenue -> h.svc.UpdateVenue -> %w", err)
		renderServiceErr(ctx, err, fmt.Sprintf(msgVenueNotFound, id))
		return
	}

	ctx.JSON(http.StatusOK, venue)
}

// HandleDeleteVenue godoc
// @Summary      Delete a venue
// @Description  Events held at the venue are kept with no venue.
// @Tags         venues
// @Produce      json
// @Param        venueID  path      int  true  "Venue ID"
// @Success      200     {object}  response.Message
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /venues/{venueID} [delete]
func (h *VenueHandler) HandleDeleteVenue(ctx *gin.Context) {
	id, ok := pathID(ctx, paramVenueID)
	if !ok {
		return
	}

	venue, err := h.svc.DeleteVenue(ctx.Request.Context(), id)
	if err != nil {
		err = fmt.Errorf("HandleDeleteVenue -> h.svc.DeleteVenue -> %w", err)
		renderServiceErr(ctx, err, fmt.Sprintf(msgVenueNotFound, id))
		return
	}

	ctx.JSON(http.StatusOK, response.NewMessage(msgVenueDeleted, venue.Name))
}
