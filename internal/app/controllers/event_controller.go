package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/devkip/clubhub/internal/app/models"
	"github.com/devkip/clubhub/internal/app/models/dto"
	"github.com/devkip/clubhub/internal/app/services"
	"github.com/devkip/clubhub/internal/middleware"
)

// EventController handles event and registration endpoints
type EventController struct {
	eventService services.EventService
	logger       zerolog.Logger
}

// NewEventController creates a new EventController
func NewEventController(eventService services.EventService, logger zerolog.Logger) *EventController {
	return &EventController{
		eventService: eventService,
		logger:       logger,
	}
}

// List returns all events
// @Summary List events
// @Description Events ordered soonest first, each flagged past or upcoming
// @Tags events
// @Produce json
// @Success 200 {object} dto.APIResponse{data=dto.EventListResponse}
// @Router /events [get]
func (c *EventController) List(ctx *gin.Context) {
	events, err := c.eventService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.EventListResponse{Events: events, Count: len(events)}))
}

// Get returns one event
// @Summary Get an event
// @Tags events
// @Produce json
// @Param id path string true "Event id"
// @Success 200 {object} dto.APIResponse{data=models.Event}
// @Failure 404 {object} dto.ErrorResponse "Unknown event"
// @Router /events/{id} [get]
func (c *EventController) Get(ctx *gin.Context) {
	event, err := c.eventService.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(event))
}

// Create creates an event
// @Summary Create an event (admin)
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateEventRequest true "Event"
// @Success 201 {object} dto.APIResponse{data=models.Event}
// @Router /admin/events [post]
func (c *EventController) Create(ctx *gin.Context) {
	var req dto.CreateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	event, err := c.eventService.Create(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(event))
}

// Update edits an event
// @Summary Update an event (admin)
// @Description Registrations keep the snapshot taken when they were made
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event id"
// @Param request body dto.UpdateEventRequest true "Partial edits"
// @Success 200 {object} dto.APIResponse{data=models.Event}
// @Router /admin/events/{id} [put]
func (c *EventController) Update(ctx *gin.Context) {
	var req dto.UpdateEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	event, err := c.eventService.Update(ctx.Request.Context(), ctx.Param("id"), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(event))
}

// Delete removes an event and its registrations
// @Summary Delete an event (admin)
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event id"
// @Success 200 {object} dto.APIResponse
// @Router /admin/events/{id} [delete]
func (c *EventController) Delete(ctx *gin.Context) {
	if err := c.eventService.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Event deleted"))
}

// Register registers the caller for an event
// @Summary Register for an event
// @Description One registration per member per event; a second attempt is a conflict
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event id"
// @Success 201 {object} dto.APIResponse{data=models.Registration}
// @Failure 404 {object} dto.ErrorResponse "Unknown event"
// @Failure 409 {object} dto.ErrorResponse "Already registered"
// @Router /events/{id}/register [post]
func (c *EventController) Register(ctx *gin.Context) {
	userID, _ := middleware.CurrentUserID(ctx)
	email, _ := middleware.CurrentEmail(ctx)

	registration, err := c.eventService.Register(ctx.Request.Context(), ctx.Param("id"), &models.User{
		ID:    userID,
		Email: email,
	})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(registration))
}

// CheckRegistration reports whether the caller is registered
// @Summary Check own registration
// @Description Answers for any event id, including deleted events. Auth is optional: anonymous callers are simply not registered.
// @Tags events
// @Produce json
// @Param id path string true "Event id"
// @Success 200 {object} dto.APIResponse{data=dto.CheckRegistrationResponse}
// @Router /events/{id}/registration [get]
func (c *EventController) CheckRegistration(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		ctx.JSON(http.StatusOK, dto.NewSuccessResponse(&dto.CheckRegistrationResponse{IsRegistered: false}))
		return
	}

	check := c.eventService.CheckRegistration(ctx.Request.Context(), ctx.Param("id"), userID)
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(check))
}

// ListRegistrations returns the attendance manifest of an event
// @Summary List event registrations (admin)
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event id"
// @Success 200 {object} dto.APIResponse{data=dto.RegistrationListResponse}
// @Router /admin/events/{id}/registrations [get]
func (c *EventController) ListRegistrations(ctx *gin.Context) {
	registrations, err := c.eventService.ListRegistrations(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.RegistrationListResponse{
		Registrations: registrations,
		Count:         len(registrations),
	}))
}
