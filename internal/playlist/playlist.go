package playlist

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"slices"

	"github.com/PizzaHomicide/hibiki/internal/log"
)

// InitialCapacity is the number of entries a playlist makes room for on its first append.  Capacity doubles
// whenever it runs out.
const InitialCapacity = 50

// DefaultExtensions are the extensions of files treated as music unless a Playlist is given others
var DefaultExtensions = []string{".mp3", ".flac", ".wav", ".ogg"}

// DirectoryError reports a directory that could not be read
type DirectoryError struct {
	Directory string
	Err       error
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("unable to open directory '%s': %v", e.Directory, e.Err)
}

func (e *DirectoryError) Unwrap() error {
	return e.Err
}

// Playlist is an ordered list of track paths.  The zero value is an empty playlist recognizing DefaultExtensions.
type Playlist struct {
	songs      []string
	extensions []string
}

// New returns an empty playlist recognizing the given extensions.  An empty list means DefaultExtensions.
func New(extensions []string) *Playlist {
	return &Playlist{extensions: slices.Clone(extensions)}
}

// Len returns the number of entries
func (p *Playlist) Len() int {
	return len(p.songs)
}

// Cap returns how many entries fit before the next growth
func (p *Playlist) Cap() int {
	return cap(p.songs)
}

// Songs returns a copy of the entries in playlist order
func (p *Playlist) Songs() []string {
	return slices.Clone(p.songs)
}

// All iterates over the entries in playlist order without copying them
func (p *Playlist) All() iter.Seq2[int, string] {
	return slices.All(p.songs)
}

// Append adds a path to the end of the playlist
func (p *Playlist) Append(path string) {
	if len(p.songs) == cap(p.songs) {
		newCap := InitialCapacity
		if cap(p.songs) > 0 {
			newCap = cap(p.songs) * 2
		}
		grown := make([]string, len(p.songs), newCap)
		copy(grown, p.songs)
		p.songs = grown
	}
	p.songs = append(p.songs, path)
}

// IsMusicFile reports whether name carries one of the playlist's recognized extensions.  The comparison is exact,
// so "song.MP3" is not music unless ".MP3" is configured.
func (p *Playlist) IsMusicFile(name string) bool {
	extensions := p.extensions
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}
	ext := filepath.Ext(name)
	return ext != "" && slices.Contains(extensions, ext)
}

// AppendFromDirectory adds every music file directly inside dir whose name passes filter, in the order the
// filesystem lists them.  A nil filter accepts every music file.  Entries are stored as dir + "/" + name.
//
// It returns the number of songs appended so callers can warn about directories that contributed nothing.
func (p *Playlist) AppendFromDirectory(dir string, filter Filter) (int, error) {
	f, err := os.Open(dir)
	if err != nil {
		return 0, &DirectoryError{Directory: dir, Err: err}
	}
	defer f.Close()

	appended := 0
	for {
		// Unlike os.ReadDir, reading from the handle does not sort the entries
		entries, err := f.ReadDir(InitialCapacity)
		for _, entry := range entries {
			name := entry.Name()
			if !p.IsMusicFile(name) {
				log.Trace("Skipping non-music file", "directory", dir, "name", name)
				continue
			}
			if filter != nil && !filter.Match(name) {
				log.Trace("Skipping file rejected by filter", "directory", dir, "name", name)
				continue
			}
			p.Append(dir + "/" + name)
			appended++
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return appended, &DirectoryError{Directory: dir, Err: err}
		}
	}

	log.Debug("Loaded directory", "directory", dir, "songs", appended)
	return appended, nil
}
