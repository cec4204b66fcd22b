package player

import "fmt"

// LaunchError means the player program could not be started at all, for example because it is not on PATH.
// Retrying the next track would fail the same way.
type LaunchError struct {
	Program string
	Err     error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to run command '%s': %v", e.Program, e.Err)
}

func (e *LaunchError) Unwrap() error {
	return e.Err
}

// ExitError means the player started but did not exit cleanly for one track
type ExitError struct {
	Track string
	// Code is the exit status, or -1 when the player was killed by a signal
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("player exited with status %d while playing '%s'", e.Code, e.Track)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}
