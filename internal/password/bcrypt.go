package password

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/algoroadmap/roadmap-server/internal/model"
)

// Bcrypt implements PasswordHasher backed by bcrypt. Every hash carries its
// own salt and cost, so Verify needs no configuration beyond the hash itself.
type Bcrypt struct {
	cost int
}

// NewBcrypt creates a bcrypt hasher with the provided cost. A cost outside
// the valid bcrypt range falls back to the library default.
func NewBcrypt(cost int) model.PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Bcrypt{cost: cost}
}

// Hash produces a salted one-way hash of the password.
func (b *Bcrypt) Hash(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), b.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(bytes), nil
}

// Verify reports whether password matches the stored hash. A malformed hash
// verifies as false rather than failing.
func (b *Bcrypt) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
