package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/algoroadmap/roadmap-server/internal/logger"
	"github.com/algoroadmap/roadmap-server/internal/model"
)

// TokenVerifier resolves the user ID carried by a bearer token.
type TokenVerifier interface {
	Parse(token string) (uuid.UUID, error)
}

var (
	errMissingToken = errors.New("missing authorization token")
	errInvalidToken = errors.New("invalid authorization token")
)

// Authenticate validates bearer tokens and injects the user ID into the
// request context.
type Authenticate struct {
	tokens         TokenVerifier
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(tokens TokenVerifier, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{tokens: tokens, contextManager: contextManager, logger: logger}
}

// Handle parses the Authorization header, validates the token and passes the
// request on with the user ID in context. Requests without a valid token get
// a 401 and never reach the wrapped handler.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := m.authenticateRequest(r)
		if err != nil {
			m.logger.Info("authentication failed",
				"path", r.URL.Path,
				"error", err.Error())
			writeUnauthorized(w, err)
			return
		}

		ctx := m.contextManager.SetUserIDToContext(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Authenticate) authenticateRequest(r *http.Request) (uuid.UUID, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return uuid.Nil, errMissingToken
	}

	tokenString := strings.TrimPrefix(header, "Bearer ")
	if tokenString == header || tokenString == "" {
		return uuid.Nil, errInvalidToken
	}

	userID, err := m.tokens.Parse(tokenString)
	if err != nil {
		return uuid.Nil, errInvalidToken
	}
	if userID == uuid.Nil {
		return uuid.Nil, errInvalidToken
	}

	return userID, nil
}

func writeUnauthorized(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": err.Error()})
}
