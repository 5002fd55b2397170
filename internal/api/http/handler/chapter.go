package handler

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/algoroadmap/roadmap-server/internal/logger"
	"github.com/algoroadmap/roadmap-server/internal/model"
)

// ChapterCatalog serves the read-only chapter catalog.
type ChapterCatalog interface {
	List() []model.ChapterPreview
	Get(id string) (model.Chapter, error)
}

// Chapter handles HTTP endpoints for the chapter catalog.
type Chapter struct {
	catalog ChapterCatalog
	logger  *logger.Logger
}

// NewChapter creates a new Chapter handler.
func NewChapter(catalog ChapterCatalog, logger *logger.Logger) *Chapter {
	return &Chapter{
		catalog: catalog,
		logger:  logger,
	}
}

// List returns previews for every chapter.
func (h *Chapter) List(w http.ResponseWriter, r *http.Request) {
	previews := h.catalog.List()

	out := make([]chapterPreviewResponse, 0, len(previews))
	for _, p := range previews {
		out = append(out, chapterPreviewResponse{
			ID:      p.ID,
			Title:   p.Title,
			Preview: p.Preview,
		})
	}

	writeJSON(w, http.StatusOK, out)
}

// Get returns the full content of a single chapter.
func (h *Chapter) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	chapter, err := h.catalog.Get(id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse{Error: "Chapter not found"})
			return
		}
		h.logger.Error("Chapter handler: failed to get chapter",
			"chapter_id", id,
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, chapterResponse{
		ID:      chapter.ID,
		Title:   chapter.Title,
		Preview: chapter.Preview,
		Content: chapter.Content,
	})
}
