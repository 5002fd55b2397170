package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/algoroadmap/roadmap-server/internal/catalog"
	"github.com/algoroadmap/roadmap-server/internal/model"
)

func TestCatalog_List(t *testing.T) {
	t.Parallel()

	c, err := catalog.New()
	require.NoError(t, err)

	previews := c.List()
	require.Len(t, previews, 11)

	assert.Equal(t, "1", previews[0].ID)
	assert.Equal(t, "Introduction to Algorithms", previews[0].Title)
	assert.NotEmpty(t, previews[0].Preview)
	assert.Equal(t, "11", previews[10].ID)
}

func TestCatalog_Get(t *testing.T) {
	t.Parallel()

	c, err := catalog.New()
	require.NoError(t, err)

	t.Run("existing chapter", func(t *testing.T) {
		t.Parallel()

		ch, err := c.Get("3")
		require.NoError(t, err)
		assert.Equal(t, "Recursion", ch.Title)
		assert.NotEmpty(t, ch.Content)
	})

	t.Run("unknown chapter", func(t *testing.T) {
		t.Parallel()

		_, err := c.Get("42")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})
}
