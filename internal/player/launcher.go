package player

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/PizzaHomicide/hibiki/internal/log"
)

// stopGracePeriod is how long a player gets to exit after being asked to stop before it is killed
const stopGracePeriod = 3 * time.Second

// Launcher runs an external program once per track, attached to hibiki's own terminal so the player's keyboard
// controls keep working.  Only one player process exists at a time.
type Launcher struct {
	// Program is the executable name or path, looked up on PATH when it has no separator
	Program string
	// Args are placed between the program name and the track path
	Args []string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	announcer Announcer
}

// NewLauncher creates a launcher for program with the process's standard streams.  announcer may be nil.
func NewLauncher(program string, args []string, announcer Announcer) *Launcher {
	return &Launcher{
		Program:   program,
		Args:      args,
		Stdin:     os.Stdin,
		Stdout:    os.Stdout,
		Stderr:    os.Stderr,
		announcer: announcer,
	}
}

// CommandLine returns the full argument vector for track: the program name, the configured arguments and finally
// the track path as a single argument.
func (l *Launcher) CommandLine(track string) []string {
	argv := make([]string, 0, len(l.Args)+2)
	argv = append(argv, l.Program)
	argv = append(argv, l.Args...)
	return append(argv, track)
}

// Check verifies the program can be found, so a missing player is reported before anything is played
func (l *Launcher) Check() error {
	if _, err := exec.LookPath(l.Program); err != nil {
		return &LaunchError{Program: l.Program, Err: err}
	}
	return nil
}

// Play starts the player for track and waits for it to exit.
//
// A player that cannot be started yields a *LaunchError.  A player that ran but exited unsuccessfully yields an
// *ExitError.  If ctx is cancelled the player is stopped and ctx.Err() is returned.
func (l *Launcher) Play(ctx context.Context, track string) error {
	argv := l.CommandLine(track)
	l.announce(argv)

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Stdin = l.Stdin
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr
	cmd.WaitDelay = stopGracePeriod
	setupPlayerProcess(cmd)

	if err := cmd.Start(); err != nil {
		return &LaunchError{Program: l.Program, Err: err}
	}
	log.Debug("Player started", "pid", cmd.Process.Pid, "track", track)

	err := cmd.Wait()
	if ctxErr := ctx.Err(); ctxErr != nil {
		log.Info("Player stopped", "track", track, "reason", ctxErr)
		return ctxErr
	}
	if err == nil {
		log.Debug("Player exited", "track", track)
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Track: track, Code: exitErr.ExitCode(), Err: err}
	}
	return fmt.Errorf("waiting for player: %w", err)
}

func (l *Launcher) announce(argv []string) {
	line := strings.Join(argv, " ")
	log.Info("Running command", "argv", argv)
	if l.announcer != nil {
		l.announcer.Infof("Running command '%s'", line)
		return
	}
	out := l.Stdout
	if out == nil {
		out = os.Stdout
	}
	_, _ = fmt.Fprintf(out, "Running command '%s'\n", line)
}
