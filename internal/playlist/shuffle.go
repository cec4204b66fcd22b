package playlist

import (
	"math/rand"
	"time"
)

// Source supplies the random indices used by Shuffle.  *rand.Rand satisfies it; tests substitute fixed sequences.
type Source interface {
	// Intn returns a value in [0, n).  n is always positive.
	Intn(n int) int
}

// NewSource returns a pseudo-random source seeded with seed.  It is not safe for concurrent use.
func NewSource(seed int64) Source {
	return rand.New(rand.NewSource(seed))
}

// SeedFromClock returns a seed taken from the clock at one second resolution.  Shuffling is cosmetic, so a
// predictable seed is acceptable.
func SeedFromClock() int64 {
	return time.Now().Unix()
}

// Shuffle permutes the playlist in place with a single Fisher-Yates pass: position i is swapped with a position
// drawn uniformly from [i, n).
func (p *Playlist) Shuffle(rng Source) {
	n := len(p.songs)
	for i := 0; i < n; i++ {
		j := i + rng.Intn(n-i)
		p.songs[i], p.songs[j] = p.songs[j], p.songs[i]
	}
}
