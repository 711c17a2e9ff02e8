package dto

import "github.com/devkip/clubhub/internal/app/models"

// CreateEventRequest is an admin-created event
type CreateEventRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Date        string `json:"date" binding:"required" example:"2025-09-12"`
	Time        string `json:"time" binding:"required" example:"17:30"`
	Location    string `json:"location" binding:"required"`
	Image       string `json:"image"`
	Category    string `json:"category"`
}

// UpdateEventRequest carries partial edits; omitted fields keep stored values
type UpdateEventRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	Location    *string `json:"location"`
	Image       *string `json:"image"`
	Category    *string `json:"category"`
}

// EventResponse is an event plus its computed past/upcoming classification
type EventResponse struct {
	models.Event
	IsPast bool `json:"isPast"`
}

// EventListResponse is a list of events with classification applied
type EventListResponse struct {
	Events []EventResponse `json:"events"`
	Count  int             `json:"count"`
}

// CheckRegistrationResponse answers the UI-convenience registration query
type CheckRegistrationResponse struct {
	IsRegistered bool                 `json:"isRegistered"`
	Registration *models.Registration `json:"registration,omitempty"`
}

// RegistrationListResponse is the admin manifest for one event
type RegistrationListResponse struct {
	Registrations []models.Registration `json:"registrations"`
	Count         int                   `json:"count"`
}
