package playlist

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeDir(t *testing.T, names ...string) string {
	t.Helper()
	dir := t.TempDir()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0600); err != nil {
			t.Fatalf("Failed to create %s: %v", name, err)
		}
	}
	return dir
}

// rawOrder lists dir the same way the builder does, without sorting
func rawOrder(t *testing.T, dir string) []string {
	t.Helper()
	f, err := os.Open(dir)
	require.NoError(t, err)
	defer f.Close()
	names, err := f.Readdirnames(-1)
	require.NoError(t, err)
	return names
}

func TestIsMusicFile(t *testing.T) {
	p := &Playlist{}
	cases := map[string]bool{
		"a.mp3":          true,
		"a.flac":         true,
		"a.wav":          true,
		"a.ogg":          true,
		".mp3":           true,
		"a.tar.ogg":      true,
		"a.MP3":          false,
		"a.mp3.txt":      false,
		"mp3":            false,
		"a.opus":         false,
		"cover.jpg":      false,
		"dir.mp3/readme": false,
		"":               false,
	}

	for name, want := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, want, p.IsMusicFile(name))
		})
	}

	t.Run("ConfiguredExtensions", func(t *testing.T) {
		custom := New([]string{".opus"})
		assert.True(t, custom.IsMusicFile("a.opus"))
		assert.False(t, custom.IsMusicFile("a.mp3"))
	})
}

func TestAppendGrowth(t *testing.T) {
	p := &Playlist{}
	assert.Equal(t, 0, p.Cap())

	p.Append("0")
	assert.Equal(t, InitialCapacity, p.Cap())

	for i := 1; i < InitialCapacity; i++ {
		p.Append(fmt.Sprint(i))
	}
	assert.Equal(t, InitialCapacity, p.Cap())

	p.Append("overflow")
	assert.Equal(t, 2*InitialCapacity, p.Cap())
	assert.Equal(t, InitialCapacity+1, p.Len())
	assert.Equal(t, "0", p.Songs()[0])
	assert.Equal(t, "overflow", p.Songs()[InitialCapacity])
}

func TestSongsReturnsCopy(t *testing.T) {
	p := playlistOf("a", "b")
	songs := p.Songs()
	songs[0] = "changed"
	assert.Equal(t, []string{"a", "b"}, p.Songs())

	var iterated []string
	for _, song := range p.All() {
		iterated = append(iterated, song)
	}
	assert.Equal(t, []string{"a", "b"}, iterated)
}

func TestAppendFromDirectory(t *testing.T) {
	t.Run("ExtensionsOnly", func(t *testing.T) {
		dir := makeDir(t, "a.mp3", "b.txt", "c.flac")
		p := &Playlist{}

		n, err := p.AppendFromDirectory(dir, nil)
		require.NoError(t, err)

		assert.Equal(t, 2, n)
		assert.ElementsMatch(t, []string{dir + "/a.mp3", dir + "/c.flac"}, p.Songs())
	})

	t.Run("MatchPattern", func(t *testing.T) {
		dir := makeDir(t, "live1.mp3", "studio1.mp3", "Live2.ogg", "live3.txt")
		pattern, err := CompileMatch("^live")
		require.NoError(t, err)
		p := &Playlist{}

		n, err := p.AppendFromDirectory(dir, pattern)
		require.NoError(t, err)

		assert.Equal(t, 2, n)
		assert.ElementsMatch(t, []string{dir + "/live1.mp3", dir + "/Live2.ogg"}, p.Songs())
	})

	t.Run("PatternSeesOnlyFileName", func(t *testing.T) {
		dir := makeDir(t, "song.mp3")
		pattern, err := CompileMatch("^/")
		require.NoError(t, err)
		p := &Playlist{}

		n, err := p.AppendFromDirectory(dir, pattern)
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("PreservesEnumerationOrder", func(t *testing.T) {
		dir := makeDir(t, "z.mp3", "m.ogg", "a.wav", "q.flac", "notes.md", "k.mp3")
		p := &Playlist{}

		_, err := p.AppendFromDirectory(dir, nil)
		require.NoError(t, err)

		var want []string
		for _, name := range rawOrder(t, dir) {
			if p.IsMusicFile(name) {
				want = append(want, dir+"/"+name)
			}
		}
		assert.Equal(t, want, p.Songs())
	})

	t.Run("AccumulatesAcrossDirectories", func(t *testing.T) {
		first := makeDir(t, "a.mp3")
		empty := makeDir(t, "readme.txt")
		second := makeDir(t, "b.wav", "c.ogg")
		p := &Playlist{}

		counts := []int{}
		for _, dir := range []string{first, empty, second} {
			n, err := p.AppendFromDirectory(dir, nil)
			require.NoError(t, err)
			counts = append(counts, n)
		}

		assert.Equal(t, []int{1, 0, 2}, counts)
		assert.Equal(t, 3, p.Len())
		assert.Equal(t, first+"/a.mp3", p.Songs()[0])
		assert.ElementsMatch(t, []string{second + "/b.wav", second + "/c.ogg"}, p.Songs()[1:])
	})

	t.Run("MissingDirectory", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "does-not-exist")
		p := &Playlist{}

		_, err := p.AppendFromDirectory(missing, nil)

		var dirErr *DirectoryError
		require.True(t, errors.As(err, &dirErr))
		assert.Equal(t, missing, dirErr.Directory)
		assert.True(t, errors.Is(err, os.ErrNotExist))
		assert.Equal(t, 0, p.Len())
	})

	t.Run("NotADirectory", func(t *testing.T) {
		dir := makeDir(t, "file.mp3")
		p := &Playlist{}

		_, err := p.AppendFromDirectory(filepath.Join(dir, "file.mp3"), nil)
		var dirErr *DirectoryError
		assert.True(t, errors.As(err, &dirErr))
	})

	t.Run("ManyFiles", func(t *testing.T) {
		var names []string
		for i := 0; i < 3*InitialCapacity; i++ {
			names = append(names, fmt.Sprintf("track%03d.mp3", i))
		}
		dir := makeDir(t, names...)
		p := &Playlist{}

		n, err := p.AppendFromDirectory(dir, nil)
		require.NoError(t, err)
		assert.Equal(t, len(names), n)
		assert.Equal(t, 4*InitialCapacity, p.Cap())
	})
}
