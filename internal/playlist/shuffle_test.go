package playlist

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scriptedSource returns pre-recorded offsets and remembers the bounds it was asked for
type scriptedSource struct {
	offsets []int
	bounds  []int
}

func (s *scriptedSource) Intn(n int) int {
	s.bounds = append(s.bounds, n)
	if len(s.offsets) == 0 {
		return 0
	}
	v := s.offsets[0]
	s.offsets = s.offsets[1:]
	return v
}

// lastSource always picks the final candidate
type lastSource struct{}

func (lastSource) Intn(n int) int { return n - 1 }

func playlistOf(songs ...string) *Playlist {
	p := &Playlist{}
	for _, song := range songs {
		p.Append(song)
	}
	return p
}

func TestShuffleExactPermutation(t *testing.T) {
	t.Run("IdentityWhenAlwaysZero", func(t *testing.T) {
		p := playlistOf("a", "b", "c", "d")
		src := &scriptedSource{}
		p.Shuffle(src)

		assert.Equal(t, []string{"a", "b", "c", "d"}, p.Songs())
		assert.Equal(t, []int{4, 3, 2, 1}, src.bounds)
	})

	t.Run("AlwaysLast", func(t *testing.T) {
		p := playlistOf("a", "b", "c", "d")
		p.Shuffle(lastSource{})
		assert.Equal(t, []string{"d", "a", "b", "c"}, p.Songs())
	})

	t.Run("Scripted", func(t *testing.T) {
		p := playlistOf("a", "b", "c")
		p.Shuffle(&scriptedSource{offsets: []int{1, 1, 0}})
		// i=0 swaps with 1, i=1 swaps with 2
		assert.Equal(t, []string{"b", "c", "a"}, p.Songs())
	})
}

func TestShuffleReachesEveryPermutation(t *testing.T) {
	seen := map[string]bool{}
	for first := 0; first < 3; first++ {
		for second := 0; second < 2; second++ {
			p := playlistOf("a", "b", "c")
			p.Shuffle(&scriptedSource{offsets: []int{first, second, 0}})
			seen[strings.Join(p.Songs(), "")] = true
		}
	}

	assert.Len(t, seen, 6)
}

func TestShuffleIsPermutation(t *testing.T) {
	songs := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"}

	for seed := int64(0); seed < 20; seed++ {
		p := playlistOf(songs...)
		p.Shuffle(NewSource(seed))

		require.Equal(t, len(songs), p.Len())
		assert.ElementsMatch(t, songs, p.Songs())
	}
}

func TestShuffleSmallPlaylists(t *testing.T) {
	empty := &Playlist{}
	empty.Shuffle(NewSource(1))
	assert.Equal(t, 0, empty.Len())

	single := playlistOf("only.mp3")
	single.Shuffle(lastSource{})
	assert.Equal(t, []string{"only.mp3"}, single.Songs())
}

func TestNewSourceIsDeterministic(t *testing.T) {
	a := playlistOf("1", "2", "3", "4", "5", "6")
	b := playlistOf("1", "2", "3", "4", "5", "6")
	a.Shuffle(NewSource(42))
	b.Shuffle(NewSource(42))
	assert.Equal(t, a.Songs(), b.Songs())
}
