package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tristan-mcinnis/AI-Spreadsheets/contracts"
)

func _makeResolverTestGrid() contracts.Grid {
	return contracts.Grid{
		{"hello", "world", "foo"},
		{"1", "2", "3"},
		{"", "x", "y"},
	}
}

func TestReferenceResolver_Resolve(t *testing.T) {
	resolver := NewReferenceResolver(NewColumnCodec())

	t.Run("in range references", func(t *testing.T) {
		grid := _makeResolverTestGrid()

		assert.Equal(t, "hello", resolver.Resolve("A1", grid))
		assert.Equal(t, "world", resolver.Resolve("B1", grid))
		assert.Equal(t, "1", resolver.Resolve("A2", grid))
		assert.Equal(t, "y", resolver.Resolve("C3", grid))
	})

	t.Run("token is trimmed", func(t *testing.T) {
		grid := _makeResolverTestGrid()

		assert.Equal(t, "hello", resolver.Resolve("  A1  ", grid))
	})

	t.Run("out of range resolves to empty string", func(t *testing.T) {
		grid := _makeResolverTestGrid()

		assert.Equal(t, "", resolver.Resolve("Z99", grid))
		assert.Equal(t, "", resolver.Resolve("A99", grid))
		assert.Equal(t, "", resolver.Resolve("D1", grid))
	})

	t.Run("empty cell resolves to empty string", func(t *testing.T) {
		grid := _makeResolverTestGrid()

		assert.Equal(t, "", resolver.Resolve("A3", grid))
	})

	t.Run("non-reference token returned as literal", func(t *testing.T) {
		grid := _makeResolverTestGrid()

		assert.Equal(t, "notaref", resolver.Resolve("notaref", grid))
		assert.Equal(t, "some inline text", resolver.Resolve("some inline text", grid))
		// references are case-sensitive
		assert.Equal(t, "a1", resolver.Resolve("a1", grid))
		assert.Equal(t, "1A", resolver.Resolve("1A", grid))
		assert.Equal(t, "A1B", resolver.Resolve("A1B", grid))
	})

	t.Run("ragged rows bound independently", func(t *testing.T) {
		grid := contracts.Grid{
			{"a"},
			{"b", "c"},
		}

		assert.Equal(t, "c", resolver.Resolve("B2", grid))
		assert.Equal(t, "", resolver.Resolve("B1", grid))
	})

	t.Run("row number overflow resolves to empty string", func(t *testing.T) {
		grid := _makeResolverTestGrid()

		assert.Equal(t, "", resolver.Resolve("A99999999999999999999", grid))
	})
}
