package types

import "github.com/google/uuid"

// TokenClaims represents the claims carried by a session token. A claims
// value is the whole of the session state: it is created at login, attached
// to each request by the auth middleware, and discarded at logout.
type TokenClaims struct {
	UserID   uuid.UUID `json:"user_id"`
	Username string    `json:"username"`
}
