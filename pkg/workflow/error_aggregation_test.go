//go:build !integration

package workflow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCollector(t *testing.T) {
	t.Run("empty collector", func(t *testing.T) {
		c := NewErrorCollector()
		assert.Equal(t, 0, c.Count())
		assert.NoError(t, c.Error())
	})

	t.Run("nil errors are ignored", func(t *testing.T) {
		c := NewErrorCollector()
		c.Add(nil)
		assert.Equal(t, 0, c.Count())
	})

	t.Run("single error returned as is", func(t *testing.T) {
		c := NewErrorCollector()
		first := errors.New("a.yml: SyntaxError: bad")
		c.Add(first)
		assert.Equal(t, 1, c.Count())
		assert.Same(t, first, c.Error())
	})

	t.Run("multiple errors are joined", func(t *testing.T) {
		c := NewErrorCollector()
		first := errors.New("a.yml: bad")
		second := errors.New("b.yml: bad")
		c.Add(first)
		c.Add(second)

		err := c.Error()
		require.Error(t, err)
		assert.Equal(t, 2, c.Count())
		assert.ErrorIs(t, err, first)
		assert.ErrorIs(t, err, second)
		assert.Equal(t, "a.yml: bad\nb.yml: bad", err.Error())
	})
}
