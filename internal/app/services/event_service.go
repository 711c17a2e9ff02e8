package services

import (
	"context"
	"encoding/json"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/devkip/clubhub/internal/app/models"
	"github.com/devkip/clubhub/internal/app/models/dto"
	"github.com/devkip/clubhub/internal/app/repositories"
	"github.com/devkip/clubhub/internal/cache"
	"github.com/devkip/clubhub/internal/pkg/apperrors"
	"github.com/devkip/clubhub/internal/pkg/helpers"
)

const (
	eventsCacheKey = "cache:events"
	eventsCacheTTL = 2 * time.Minute
)

// EventService manages events and their registration ledger. A registration
// lives at a key composed of the event id and the user id, so creating it
// with a set-if-absent write is what enforces one registration per member.
type EventService interface {
	List(ctx context.Context) ([]dto.EventResponse, error)
	Get(ctx context.Context, id string) (*models.Event, error)
	Create(ctx context.Context, req *dto.CreateEventRequest) (*models.Event, error)
	Update(ctx context.Context, id string, req *dto.UpdateEventRequest) (*models.Event, error)
	Delete(ctx context.Context, id string) error
	Register(ctx context.Context, eventID string, user *models.User) (*models.Registration, error)
	CheckRegistration(ctx context.Context, eventID string, userID int64) *dto.CheckRegistrationResponse
	ListRegistrations(ctx context.Context, eventID string) ([]models.Registration, error)
}

// eventServiceImpl implements EventService
type eventServiceImpl struct {
	records repositories.RecordStore
	cache   *cache.Client
	logger  zerolog.Logger
	now     func() time.Time
}

// NewEventService creates a new EventService
func NewEventService(records repositories.RecordStore, cacheClient *cache.Client, logger zerolog.Logger) EventService {
	return &eventServiceImpl{
		records: records,
		cache:   cacheClient,
		logger:  logger,
		now:     time.Now,
	}
}

// List returns all events ordered soonest first, each flagged with whether
// its date has already passed
func (s *eventServiceImpl) List(ctx context.Context) ([]dto.EventResponse, error) {
	events, err := s.listEvents(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	responses := make([]dto.EventResponse, 0, len(events))
	for _, event := range events {
		instant, ok := helpers.EventInstant(event.Date, event.Time)
		responses = append(responses, dto.EventResponse{
			Event:  event,
			IsPast: ok && instant.Before(now),
		})
	}

	return responses, nil
}

// Get returns a single event by id
func (s *eventServiceImpl) Get(ctx context.Context, id string) (*models.Event, error) {
	raw, err := s.records.Get(ctx, models.EventKey(id))
	if err != nil {
		if errors.Is(err, apperrors.ErrResourceNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	var event models.Event
	if err := json.Unmarshal(raw, &event); err != nil {
		return nil, err
	}
	return &event, nil
}

// Create creates a new event
func (s *eventServiceImpl) Create(ctx context.Context, req *dto.CreateEventRequest) (*models.Event, error) {
	now := s.now()
	event := &models.Event{
		ID:          uuid.New().String(),
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
		Time:        req.Time,
		Location:    req.Location,
		Image:       req.Image,
		Category:    req.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.records.Set(ctx, models.EventKey(event.ID), event); err != nil {
		return nil, err
	}

	s.logger.Info().Str("eventId", event.ID).Str("title", event.Title).Msg("Event created")
	s.cache.Delete(ctx, eventsCacheKey)
	return event, nil
}

// Update edits an existing event. Registrations already taken keep their
// snapshot of the old title.
func (s *eventServiceImpl) Update(ctx context.Context, id string, req *dto.UpdateEventRequest) (*models.Event, error) {
	event, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Date != nil {
		event.Date = *req.Date
	}
	if req.Time != nil {
		event.Time = *req.Time
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.Image != nil {
		event.Image = *req.Image
	}
	if req.Category != nil {
		event.Category = *req.Category
	}
	event.UpdatedAt = s.now()

	if err := s.records.Set(ctx, models.EventKey(id), event); err != nil {
		return nil, err
	}

	s.cache.Delete(ctx, eventsCacheKey)
	return event, nil
}

// Delete removes an event together with every registration taken for it
func (s *eventServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}

	registrations, err := s.ListRegistrations(ctx, id)
	if err != nil {
		return err
	}
	for _, reg := range registrations {
		if err := s.records.Delete(ctx, models.RegistrationKey(id, reg.UserID)); err != nil {
			s.logger.Error().Err(err).Str("eventId", id).Int64("userId", reg.UserID).Msg("Failed to remove registration during event delete")
		}
	}

	if err := s.records.Delete(ctx, models.EventKey(id)); err != nil {
		return err
	}

	s.logger.Info().Str("eventId", id).Int("registrationsRemoved", len(registrations)).Msg("Event deleted")
	s.cache.Delete(ctx, eventsCacheKey)
	return nil
}

// Register records the user for the event. The registration snapshots the
// event title and the user's identity as they are right now. Registering
// twice returns apperrors.ErrAlreadyRegistered.
func (s *eventServiceImpl) Register(ctx context.Context, eventID string, user *models.User) (*models.Registration, error) {
	event, err := s.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}

	name := user.Name
	studentID := user.StudentID
	if raw, err := s.records.Get(ctx, models.ProfileKey(user.ID)); err == nil {
		var profile models.Profile
		if json.Unmarshal(raw, &profile) == nil {
			if profile.Name != "" {
				name = profile.Name
			}
			if profile.StudentID != "" {
				studentID = profile.StudentID
			}
		}
	}

	registration := &models.Registration{
		ID:           uuid.New().String(),
		EventID:      eventID,
		EventTitle:   event.Title,
		UserID:       user.ID,
		UserName:     name,
		UserEmail:    user.Email,
		StudentID:    studentID,
		RegisteredAt: s.now(),
	}

	created, err := s.records.SetIfAbsent(ctx, models.RegistrationKey(eventID, user.ID), registration)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, apperrors.ErrAlreadyRegistered
	}

	s.logger.Info().Str("eventId", eventID).Int64("userId", user.ID).Msg("Event registration recorded")
	return registration, nil
}

// CheckRegistration reports whether the user holds a registration for the
// event. It is a pure probe: any event id is answerable, including ones
// that no longer exist, and store or decode trouble reads as "not
// registered" rather than failing the request.
func (s *eventServiceImpl) CheckRegistration(ctx context.Context, eventID string, userID int64) *dto.CheckRegistrationResponse {
	notRegistered := &dto.CheckRegistrationResponse{IsRegistered: false}

	raw, err := s.records.Get(ctx, models.RegistrationKey(eventID, userID))
	if err != nil {
		if !errors.Is(err, apperrors.ErrResourceNotFound) {
			s.logger.Warn().Err(err).Str("eventId", eventID).Int64("userId", userID).Msg("Registration check degraded to not-registered")
		}
		return notRegistered
	}

	var registration models.Registration
	if err := json.Unmarshal(raw, &registration); err != nil {
		s.logger.Warn().Err(err).Str("eventId", eventID).Int64("userId", userID).Msg("Registration check degraded to not-registered")
		return notRegistered
	}

	return &dto.CheckRegistrationResponse{IsRegistered: true, Registration: &registration}
}

// ListRegistrations returns every registration taken for the event
func (s *eventServiceImpl) ListRegistrations(ctx context.Context, eventID string) ([]models.Registration, error) {
	raws, err := s.records.GetByPrefix(ctx, models.EventRegistrationsPrefix(eventID))
	if err != nil {
		return nil, err
	}

	registrations := make([]models.Registration, 0, len(raws))
	for _, raw := range raws {
		var registration models.Registration
		if err := json.Unmarshal(raw, &registration); err != nil {
			s.logger.Warn().Err(err).Str("eventId", eventID).Msg("Skipping malformed registration record")
			continue
		}
		registrations = append(registrations, registration)
	}

	sort.Slice(registrations, func(i, j int) bool {
		return registrations[i].RegisteredAt.Before(registrations[j].RegisteredAt)
	})

	return registrations, nil
}

func (s *eventServiceImpl) listEvents(ctx context.Context) ([]models.Event, error) {
	if cached, _ := s.cache.Get(ctx, eventsCacheKey); cached != nil {
		var events []models.Event
		if err := json.Unmarshal(cached, &events); err == nil {
			return events, nil
		}
	}

	raws, err := s.records.GetByPrefix(ctx, models.EventKeyPrefix)
	if err != nil {
		return nil, err
	}

	events := make([]models.Event, 0, len(raws))
	for _, raw := range raws {
		var event models.Event
		if err := json.Unmarshal(raw, &event); err != nil {
			s.logger.Warn().Err(err).Msg("Skipping malformed event record")
			continue
		}
		events = append(events, event)
	}

	sort.Slice(events, func(i, j int) bool {
		left, okL := helpers.EventInstant(events[i].Date, events[i].Time)
		right, okR := helpers.EventInstant(events[j].Date, events[j].Time)
		if okL != okR {
			return okL
		}
		return left.Before(right)
	})

	if data, err := json.Marshal(events); err == nil {
		s.cache.Set(ctx, eventsCacheKey, data, eventsCacheTTL)
	}

	return events, nil
}
