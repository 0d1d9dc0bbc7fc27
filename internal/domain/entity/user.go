// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account able to own listings and author reviews.
type User struct {
	ID        uuid.UUID // The Global Unique Identifier (GUID) for the user.
	Username  string    // Unique login name shown next to listings and reviews.
	Email     string    // Unique contact email.
	CreatedAt time.Time // Timestamp of when this user account was created.
	UpdatedAt time.Time // Timestamp of the last modification to this user's data.
}
