// Package kvstore implements the repository ports over the generic key-value
// port. Every entity is a JSON document under a typed key prefix; lists
// (bookings, comments, saved ids) are stored whole and rewritten on mutation.
package kvstore

import (
	"strings"

	"github.com/google/uuid"
)

const (
	destinationPrefix = "destination:"
	bookingsPrefix    = "bookings:"
	commentsPrefix    = "comments:"
	savedPrefix       = "saved:"
	profilePrefix     = "profile:"
	userPrefix        = "user:"
	userEmailPrefix   = "user:email:"
	sessionPrefix     = "session:"
)

func destinationKey(id string) string { return destinationPrefix + id }

func bookingsKey(userID uuid.UUID) string { return bookingsPrefix + userID.String() }

func commentsKey(destinationID string) string { return commentsPrefix + destinationID }

func savedKey(userID uuid.UUID) string { return savedPrefix + userID.String() }

func profileKey(userID uuid.UUID) string { return profilePrefix + userID.String() }

func userKey(id uuid.UUID) string { return userPrefix + id.String() }

func sessionKey(id uuid.UUID) string { return sessionPrefix + id.String() }

func userEmailKey(email string) string {
	return userEmailPrefix + strings.ToLower(strings.TrimSpace(email))
}
