package model

import "github.com/google/uuid"

// TokenManager issues and verifies stateless bearer tokens. Parse returns an
// error for any malformed, tampered or expired token; it never yields a
// partial identity.
type TokenManager interface {
	Issue(userID uuid.UUID) (string, error)
	Parse(token string) (uuid.UUID, error)
}
