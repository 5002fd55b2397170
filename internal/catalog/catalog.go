// Package catalog serves the read-only chapter catalog embedded into the
// binary.
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/algoroadmap/roadmap-server/internal/model"
)

//go:embed chapters.yaml
var chaptersYAML []byte

// Catalog holds the chapter list in declaration order and an index by id.
type Catalog struct {
	chapters []model.Chapter
	byID     map[string]model.Chapter
}

// New parses the embedded chapter catalog.
func New() (*Catalog, error) {
	var doc struct {
		Chapters []model.Chapter `yaml:"chapters"`
	}
	if err := yaml.Unmarshal(chaptersYAML, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse chapter catalog: %w", err)
	}

	byID := make(map[string]model.Chapter, len(doc.Chapters))
	for _, ch := range doc.Chapters {
		byID[ch.ID] = ch
	}

	return &Catalog{
		chapters: doc.Chapters,
		byID:     byID,
	}, nil
}

// List returns previews for every chapter in catalog order.
func (c *Catalog) List() []model.ChapterPreview {
	previews := make([]model.ChapterPreview, 0, len(c.chapters))
	for _, ch := range c.chapters {
		previews = append(previews, model.ChapterPreview{
			ID:      ch.ID,
			Title:   ch.Title,
			Preview: ch.Preview,
		})
	}
	return previews
}

// Get returns the full chapter with the given id.
func (c *Catalog) Get(id string) (model.Chapter, error) {
	ch, ok := c.byID[id]
	if !ok {
		return model.Chapter{}, fmt.Errorf("chapter %q: %w", id, model.ErrNotFound)
	}
	return ch, nil
}
