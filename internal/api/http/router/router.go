// Package router wires handlers and middleware into the HTTP route table.
package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/algoroadmap/roadmap-server/internal/api/http/handler"
	"github.com/algoroadmap/roadmap-server/internal/api/http/middleware"
	"github.com/algoroadmap/roadmap-server/internal/logger"
	"github.com/algoroadmap/roadmap-server/internal/model"
)

// Router registers HTTP routes and middleware for the API.
type Router struct {
	authService    handler.AuthService
	noteService    handler.NoteService
	catalog        handler.ChapterCatalog
	db             handler.Pinger
	tokens         middleware.TokenVerifier
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates a new Router instance.
func New(
	authService handler.AuthService,
	noteService handler.NoteService,
	catalog handler.ChapterCatalog,
	db handler.Pinger,
	tokens middleware.TokenVerifier,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:    authService,
		noteService:    noteService,
		catalog:        catalog,
		db:             db,
		tokens:         tokens,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register builds the route table. Everything under /notes requires a valid
// bearer token; the rest is public.
func (r *Router) Register() *mux.Router {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokens, r.contextManager, r.logger)

	authHandler := handler.NewAuth(r.authService, r.logger)
	noteHandler := handler.NewNote(r.noteService, r.contextManager, r.logger)
	chapterHandler := handler.NewChapter(r.catalog, r.logger)
	healthHandler := handler.NewHealth(r.db, r.logger)

	m := mux.NewRouter()
	m.Use(logging.Handle)

	m.HandleFunc("/", healthHandler.Root).Methods(http.MethodGet)
	m.HandleFunc("/ping", healthHandler.Ping).Methods(http.MethodGet)

	m.HandleFunc("/auth/register", authHandler.Register).Methods(http.MethodPost)
	m.HandleFunc("/auth/login", authHandler.Login).Methods(http.MethodPost)

	m.HandleFunc("/chapters", chapterHandler.List).Methods(http.MethodGet)
	m.HandleFunc("/chapters/{id}", chapterHandler.Get).Methods(http.MethodGet)

	notes := m.PathPrefix("/notes").Subrouter()
	notes.Use(authenticate.Handle)
	notes.HandleFunc("", noteHandler.List).Methods(http.MethodGet)
	notes.HandleFunc("", noteHandler.Create).Methods(http.MethodPost)
	notes.HandleFunc("/{id}", noteHandler.Update).Methods(http.MethodPut)
	notes.HandleFunc("/{id}", noteHandler.Delete).Methods(http.MethodDelete)

	return m
}
