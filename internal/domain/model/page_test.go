package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPage(t *testing.T) {
	t.Run("middle page", func(t *testing.T) {
		page := NewPage([]string{"a", "b"}, 1, 2, 5)

		assert.Equal(t, 3, page.TotalPages)
		assert.Equal(t, 2, page.NumberOfElements)
		assert.False(t, page.First)
		assert.False(t, page.Last)
	})

	t.Run("last page", func(t *testing.T) {
		page := NewPage([]string{"e"}, 2, 2, 5)

		assert.True(t, page.Last)
	})

	t.Run("empty result", func(t *testing.T) {
		page := NewPage[string](nil, 0, 10, 0)

		assert.NotNil(t, page.Content)
		assert.Equal(t, 0, page.TotalPages)
		assert.True(t, page.First)
		assert.True(t, page.Last)
	})

	t.Run("zero size", func(t *testing.T) {
		page := NewPage([]string{}, 0, 0, 7)

		assert.Equal(t, 0, page.TotalPages)
	})
}
