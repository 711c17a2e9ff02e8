package models

import "fmt"

// Record key prefixes. Keys double as identity: a registration's key is the
// composite of its event and user, which makes existence-at-key the
// one-registration-per-member invariant.
const (
	BlogKeyPrefix         = "blog:"
	EventKeyPrefix        = "event:"
	PhotoKeyPrefix        = "photo:"
	ProfileKeyPrefix      = "profile:"
	RegistrationKeyPrefix = "registration:"
)

// BlogKey returns the record key for a blog post id
func BlogKey(id string) string { return BlogKeyPrefix + id }

// EventKey returns the record key for an event id
func EventKey(id string) string { return EventKeyPrefix + id }

// PhotoKey returns the record key for a gallery photo id
func PhotoKey(id string) string { return PhotoKeyPrefix + id }

// ProfileKey returns the record key for a user's profile
func ProfileKey(userID int64) string { return fmt.Sprintf("%s%d", ProfileKeyPrefix, userID) }

// RegistrationKey returns the composite record key for an (event, user) pair
func RegistrationKey(eventID string, userID int64) string {
	return fmt.Sprintf("%s%s:%d", RegistrationKeyPrefix, eventID, userID)
}

// EventRegistrationsPrefix returns the key prefix covering every
// registration of the given event
func EventRegistrationsPrefix(eventID string) string {
	return RegistrationKeyPrefix + eventID + ":"
}
