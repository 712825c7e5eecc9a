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
	msgNoOrganisers      = "No organisers found in this database. Add a organiser to get started."
	msgOrganiserNotFound = "Organiser ID %d does not exist"
	msgOrganiserDeleted  = "Organiser %s deleted successfully."
	paramOrganiserID     = "organiserID"
)

type OrganiserService interface {
	CreateOrganiser(ctx context.Context, organiser domain.Organiser) (domain.Organiser, error)
	GetOrganisers(ctx context.Context) ([]domain.Organiser, error)
	GetOrganiser(ctx context.Context, id uint) (domain.Organiser, error)
	UpdateOrganiser(ctx context.Context, id uint, changes domain.OrganiserChanges) (domain.Organiser, error)
	DeleteOrganiser(ctx context.Context, id uint) (domain.Organiser, error)
}

type OrganiserHandler struct {
	svc OrganiserService
}

func NewOrganiserHandler(svc OrganiserService) *OrganiserHandler {
	return &OrganiserHandler{
		svc: svc,
	}
}

// HandleCreateOrganiser godoc
// @Summary      Create an organiser
// @Tags         organisers
// @Accept       json
// @Produce      json
// @Param        input  body      request.CreateOrganiserRequest  true  "Organiser details"
// @Success      201    {object}  domain.Organiser
// @Failure      400    {object}  response.Err
// @Failure      404    {object}  response.Err  "Validation failed"
// @Failure      409    {object}  response.Err
// @Failure      500    {object}  response.Err
// @Router       /organisers/ [post]
func (h *OrganiserHandler) HandleCreateOrganiser(ctx *gin.Context) {
	var req request.CreateOrganiserRequest
	if !bindRequest(ctx, &req) {
		return
	}

	organiser, err := h.svc.CreateOrganiser(ctx.Request.Context(), req.ToDomain())
	if err != nil {
		err = fmt.Errorf("HandleCreateOrganiser -> h.svc.CreateOrganiser -> %w", err)
		response.RenderErr(ctx, response.ErrStorage(err))
		return
	}

	ctx.JSON(http.StatusCreated, organiser)
}

// HandleGetOrganisers godoc
// @Summary      List organisers
// @Tags         organisers
// @Produce      json
// @Description  An empty table is answered with a message instead of an array.
// @Success      200  {array}   domain.Organiser
// @Failure      500  {object}  response.Err
// @Router       /organisers/ [get]
func (h *OrganiserHandler) HandleGetOrganisers(ctx *gin.Context) {
	organisers, err := h.svc.GetOrganisers(ctx.Request.Context())
	if err != nil {
		err = fmt.Errorf("HandleGetOrganisers -> h.svc.GetOrganisers -> %w", err)
		response.RenderErr(ctx, response.ErrStorage(err))
		return
	}

	if len(organisers) == 0 {
		ctx.JSON(http.StatusOK, response.Message{Message: msgNoOrganisers})
		return
	}

	ctx.JSON(http.StatusOK, organisers)
}

// HandleGetOrganiser godoc
// @Summary      Get an organiser
// @Tags         organisers
// @Produce      json
// @Param        organiserID  path      int  true  "Organiser ID"
// @Success      200     {object}  domain.Organiser
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /organisers/{organiserID} [get]
func (h *OrganiserHandler) HandleGetOrganiser(ctx *gin.Context) {
	id, ok := pathID(ctx, paramOrganiserID)
	if !ok {
		return
	}

	organiser, err := h.svc.GetOrganiser(ctx.Request.Context(), id)
	if err != nil {
		err = fmt.Errorf("HandleGetOrganiser -> h.svc.GetOrganiser -> %w", err)
		renderServiceErr(ctx, err, fmt.Sprintf(msgOrganiserNotFound, id))
		return
	}

	ctx.JSON(http.StatusOK, organiser)
}

// HandleUpdateOrganiser godoc
// @Summary      Update an organiser
// @Description  Only the fields present in the body are changed, for PUT as well as PATCH.
// @Tags         organisers
// @Accept       json
// @Produce      json
// @Param        organiserID  path      int                        true  "Organiser ID"
// @Param        input   body      request.UpdateOrganiserRequest  true  "Fields to change"
// @Success      200     {object}  domain.Organiser
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      409     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /organisers/{organiserID} [put]
// @Router       /organisers/{organiserID} [patch]
func (h *OrganiserHandler) HandleUpdateOrganiser(ctx *gin.Context) {
	id, ok := pathID(ctx, paramOrganiserID)
	if !ok {
		return
	}

	var req request.UpdateOrganiserRequest
	if !bindRequest(ctx, &req) {
		return
	}

	organiser, err := h.svc.UpdateOrganiser(ctx.Request.Context(), id, req.ToDomain())
	if err != nil {
		err = fmt.Errorf("HandleUpdateOrganiser -> h.svc.UpdateOrganiser -> %w", err)
		renderServiceErr(ctx, err, fmt.Sprintf(msgOrganiserNotFound, id))
		return
	}

	ctx.JSON(http.StatusOK, organiser)
}

// HandleDeleteOrganiser godoc
// @Summary      Delete an organiser
// @Description  Events hosted by the organiser are kept with no organiser.
// @Tags         organisers
// @Produce      json
// @Param        organiserID  path      int  true  "Organiser ID"
// @Success      200     {object}  response.Message
// @Failure      400     {object}  response.Err
// @Failure      404     {object}  response.Err
// @Failure      500     {object}  response.Err
// @Router       /organisers/{organiserID} [delete]
func (h *OrganiserHandler) HandleDeleteOrganiser(ctx *gin.Context) {
	id, ok := pathID(ctx, paramOrganiserID)
	if !ok {
		return
	}

	organiser, err := h.svc.DeleteOrganiser(ctx.Request.Context(), id)
	if err != nil {
		err = fmt.Errorf("HandleDeleteOrganiser -> h.svc.DeleteOrganiser -> %w", err)
		renderServiceErr(ctx, err, fmt.Sprintf(msgOrganiserNotFound, id))
		return
	}

	ctx.JSON(http.StatusOK, response.NewMessage(msgOrganiserDeleted, organiser.Name))
}
