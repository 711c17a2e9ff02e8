package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devkip/clubhub/internal/app/models"
	"github.com/devkip/clubhub/internal/app/models/dto"
	"github.com/devkip/clubhub/internal/pkg/apperrors"
)

func newEventService(store *fakeRecordStore, now time.Time) EventService {
	service := NewEventService(store, nil, zerolog.Nop()).(*eventServiceImpl)
	if !now.IsZero() {
		service.now = func() time.Time { return now }
	}
	return service
}

func testUser() *models.User {
	return &models.User{ID: 9, Email: "grace@club.test", Name: "Grace", StudentID: "CS/2024/001"}
}

func TestEventListClassifiesPast(t *testing.T) {
	ctx := context.Background()
	store := newFakeRecordStore()
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	service := newEventService(store, now)

	_, err := service.Create(ctx, &dto.CreateEventRequest{Title: "past meetup", Date: "2026-03-01", Time: "18:00", Location: "Lab"})
	require.NoError(t, err)
	_, err = service.Create(ctx, &dto.CreateEventRequest{Title: "upcoming hackathon", Date: "2026-04-01", Time: "09:00", Location: "Hall"})
	require.NoError(t, err)

	events, err := service.List(ctx)
	require.NoError(t, err)
	require.Len(t, events, 2)

	// ordered soonest first
	assert.Equal(t, "past meetup", events[0].Title)
	assert.True(t, events[0].IsPast)
	assert.Equal(t, "upcoming hackathon", events[1].Title)
	assert.False(t, events[1].IsPast)
}

func TestRegisterOncePerMember(t *testing.T) {
	ctx := context.Background()
	store := newFakeRecordStore()
	service := newEventService(store, time.Time{})

	event, err := service.Create(ctx, &dto.CreateEventRequest{Title: "Go Night", Date: "2026-05-01", Time: "19:00", Location: "Room 12"})
	require.NoError(t, err)

	registration, err := service.Register(ctx, event.ID, testUser())
	require.NoError(t, err)
	assert.Equal(t, "Go Night", registration.EventTitle)
	assert.Equal(t, "grace@club.test", registration.UserEmail)

	_, err = service.Register(ctx, event.ID, testUser())
	assert.ErrorIs(t, err, apperrors.ErrAlreadyRegistered)
}

func TestRegisterUnknownEvent(t *testing.T) {
	service := newEventService(newFakeRecordStore(), time.Time{})

	_, err := service.Register(context.Background(), "no-such-event", testUser())
	assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
}

func TestRegisterSnapshotsProfile(t *testing.T) {
	ctx := context.Background()
	store := newFakeRecordStore()
	service := newEventService(store, time.Time{})

	require.NoError(t, store.Set(ctx, models.ProfileKey(9), &models.Profile{Name: "Grace Hopper", StudentID: "ENG/2023/777"}))

	event, err := service.Create(ctx, &dto.CreateEventRequest{Title: "Go Night", Date: "2026-05-01", Time: "19:00", Location: "Room 12"})
	require.NoError(t, err)

	registration, err := service.Register(ctx, event.ID, testUser())
	require.NoError(t, err)
	assert.Equal(t, "Grace Hopper", registration.UserName)
	assert.Equal(t, "ENG/2023/777", registration.StudentID)

	// renaming the event afterwards does not rewrite the snapshot
	title := "Rust Night"
	_, err = service.Update(ctx, event.ID, &dto.UpdateEventRequest{Title: &title})
	require.NoError(t, err)

	check := service.CheckRegistration(ctx, event.ID, 9)
	require.True(t, check.IsRegistered)
	assert.Equal(t, "Go Night", check.Registration.EventTitle)
}

func TestCheckRegistrationNeverFails(t *testing.T) {
	service := newEventService(newFakeRecordStore(), time.Time{})

	check := service.CheckRegistration(context.Background(), "ghost-event", 1)
	assert.False(t, check.IsRegistered)
	assert.Nil(t, check.Registration)
}

func TestCheckRegistrationDegradesStoreTrouble(t *testing.T) {
	ctx := context.Background()
	store := newFakeRecordStore()
	service := newEventService(store, time.Time{})

	// a corrupt record reads as not-registered, not as a failure
	store.mu.Lock()
	store.records[models.RegistrationKey("evt-1", 9)] = []byte("{not json")
	store.mu.Unlock()

	check := service.CheckRegistration(ctx, "evt-1", 9)
	assert.False(t, check.IsRegistered)

	// so does a store that errors outright
	failing := &failingRecordStore{fakeRecordStore: store, getErr: errors.New("connection refused")}
	check = NewEventService(failing, nil, zerolog.Nop()).CheckRegistration(ctx, "evt-1", 9)
	assert.False(t, check.IsRegistered)
	assert.Nil(t, check.Registration)
}

func TestDeleteEventCascadesRegistrations(t *testing.T) {
	ctx := context.Background()
	store := newFakeRecordStore()
	service := newEventService(store, time.Time{})

	event, err := service.Create(ctx, &dto.CreateEventRequest{Title: "Workshop", Date: "2026-06-01", Time: "10:00", Location: "Lab"})
	require.NoError(t, err)

	_, err = service.Register(ctx, event.ID, testUser())
	require.NoError(t, err)
	_, err = service.Register(ctx, event.ID, &models.User{ID: 10, Email: "alan@club.test", Name: "Alan"})
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, event.ID))

	_, err = service.Get(ctx, event.ID)
	assert.ErrorIs(t, err, apperrors.ErrEventNotFound)

	check := service.CheckRegistration(ctx, event.ID, 9)
	assert.False(t, check.IsRegistered)
}

func TestListRegistrationsOrdered(t *testing.T) {
	ctx := context.Background()
	store := newFakeRecordStore()
	service := newEventService(store, time.Time{})

	event, err := service.Create(ctx, &dto.CreateEventRequest{Title: "Demo Day", Date: "2026-07-01", Time: "14:00", Location: "Aud"})
	require.NoError(t, err)

	_, err = service.Register(ctx, event.ID, &models.User{ID: 1, Email: "first@club.test"})
	require.NoError(t, err)
	_, err = service.Register(ctx, event.ID, &models.User{ID: 2, Email: "second@club.test"})
	require.NoError(t, err)

	registrations, err := service.ListRegistrations(ctx, event.ID)
	require.NoError(t, err)
	require.Len(t, registrations, 2)
	assert.Equal(t, int64(1), registrations[0].UserID)
	assert.Equal(t, int64(2), registrations[1].UserID)
}
