package model

// Chapter is an entry of the static chapter catalog.
type Chapter struct {
	ID      string `yaml:"id"`
	Title   string `yaml:"title"`
	Preview string `yaml:"preview"`
	Content string `yaml:"content"`
}

// ChapterPreview is the listing projection of a chapter, without content.
type ChapterPreview struct {
	ID      string
	Title   string
	Preview string
}
