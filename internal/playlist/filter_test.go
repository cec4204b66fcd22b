package playlist

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileMatch(t *testing.T) {
	t.Run("CaseInsensitive", func(t *testing.T) {
		p, err := CompileMatch("^live")
		require.NoError(t, err)

		assert.True(t, p.Match("live1.mp3"))
		assert.True(t, p.Match("LIVE at Wembley.flac"))
		assert.False(t, p.Match("studio1.mp3"))
		assert.False(t, p.Match("not live.mp3"))
		assert.Equal(t, "^live", p.String())
	})

	t.Run("ExtendedSyntax", func(t *testing.T) {
		p, err := CompileMatch("(intro|outro)[0-9]+")
		require.NoError(t, err)

		assert.True(t, p.Match("Album - Outro12.ogg"))
		assert.False(t, p.Match("interlude.ogg"))
	})

	t.Run("EmptyPatternMatchesEverything", func(t *testing.T) {
		p, err := CompileMatch("")
		require.NoError(t, err)
		assert.True(t, p.Match("anything.mp3"))
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := CompileMatch("(unclosed")
		var patternErr *PatternError
		require.True(t, errors.As(err, &patternErr))
		assert.Equal(t, "(unclosed", patternErr.Pattern)
		assert.Contains(t, err.Error(), "(unclosed")
	})

	t.Run("PerlSyntaxRejected", func(t *testing.T) {
		_, err := CompileMatch(`(?i)\d+`)
		assert.Error(t, err)
	})
}

func TestFuzzyFilter(t *testing.T) {
	f := NewFuzzyFilter("abbyrd")
	assert.True(t, f.Match("Abbey Road - Come Together.flac"))
	assert.False(t, f.Match("Revolver - Taxman.flac"))
}

func TestAllOf(t *testing.T) {
	t.Run("NoFilters", func(t *testing.T) {
		var nilPattern *Pattern
		assert.Nil(t, AllOf())
		assert.Nil(t, AllOf(nil, nilPattern))
	})

	t.Run("SingleFilterReturnedAsIs", func(t *testing.T) {
		f := NewFuzzyFilter("x")
		assert.Same(t, f, AllOf(nil, f))
	})

	t.Run("EveryFilterMustMatch", func(t *testing.T) {
		p, err := CompileMatch("^live")
		require.NoError(t, err)
		combined := AllOf(p, NewFuzzyFilter("wmb"))

		assert.True(t, combined.Match("Live at Wembley.mp3"))
		assert.False(t, combined.Match("Live in Tokyo.mp3"))
		assert.False(t, combined.Match("Wembley rehearsal.mp3"))
	})
}
