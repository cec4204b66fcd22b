package player

import (
	"context"
)

// Player plays a single track, blocking until playback is over
type Player interface {
	// Play hands track to the player and returns once the player has exited.  A cancelled context stops the
	// player and returns the context's error.
	Play(ctx context.Context, track string) error
}

// Announcer is told about every command line just before it is started
type Announcer interface {
	Infof(format string, args ...any)
}
