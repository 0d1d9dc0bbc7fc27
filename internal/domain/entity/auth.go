package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderTypeLocal marks a username/password credential.
const ProviderTypeLocal = "local"

// Authentication represents a single method of logging in (a credential).
type Authentication struct {
	ID             uuid.UUID // The unique ID for this authentication record.
	UserID         uuid.UUID // Links this authentication method to the User it belongs to.
	Provider       string    // The authentication provider, currently always "local".
	ProviderUserID string    // The login identifier within the provider, the username for "local".
	PasswordHash   string    // bcrypt hash of the password.
	CreatedAt      time.Time
}
