// Package app wires the parser, playlist builder and player together into one invocation of hibiki.
package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/PizzaHomicide/hibiki/internal/cli"
	"github.com/PizzaHomicide/hibiki/internal/config"
	"github.com/PizzaHomicide/hibiki/internal/console"
	"github.com/PizzaHomicide/hibiki/internal/log"
	"github.com/PizzaHomicide/hibiki/internal/player"
	"github.com/PizzaHomicide/hibiki/internal/playlist"
	"github.com/PizzaHomicide/hibiki/internal/version"
)

var (
	// ErrNoSongs is returned when no directory contributed a single playable file
	ErrNoSongs = errors.New("no songs loaded")
	// ErrPlayerFailing is returned when the player exited unsuccessfully for every track of a cycle
	ErrPlayerFailing = errors.New("player failed on every track, giving up")
)

// App holds everything an invocation needs besides its arguments
type App struct {
	cfg     *config.Config
	printer *console.Printer
	player  player.Player
	rng     playlist.Source
}

// Option customises an App
type Option func(*App)

// WithPlayer replaces the launcher built from the config
func WithPlayer(p player.Player) Option {
	return func(a *App) {
		a.player = p
	}
}

// WithRandom replaces the clock-seeded random source used for shuffling
func WithRandom(rng playlist.Source) Option {
	return func(a *App) {
		a.rng = rng
	}
}

// New creates an App.  A nil cfg means the built-in defaults.
func New(cfg *config.Config, printer *console.Printer, opts ...Option) *App {
	if cfg == nil {
		cfg = config.Default()
	}
	a := &App{
		cfg:     cfg,
		printer: printer,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.rng == nil {
		a.rng = playlist.NewSource(playlist.SeedFromClock())
	}
	return a
}

// Main runs a whole invocation from raw process arguments and returns the process exit status.  All output,
// including help and diagnostics, goes through the printer.
func (a *App) Main(ctx context.Context, args []string) int {
	opts, err := cli.Parse(args)
	switch {
	case errors.Is(err, cli.ErrHelp):
		a.printHelp(programName(args))
		return 0
	case errors.Is(err, cli.ErrVersion):
		a.printer.Print(version.String() + "\n")
		return 0
	case err != nil:
		a.report(programName(args), err)
		return 1
	}

	err = a.Run(ctx, opts)
	switch {
	case errors.Is(err, context.Canceled):
		a.printer.Infof("Interrupted, stopping")
	case err != nil:
		log.Error("Run failed", "error", err)
		a.report(opts.ProgramName, err)
	}
	return ExitCode(err)
}

// ExitCode maps the result of Run to a process exit status.  An interrupted run counts as a normal exit.
func ExitCode(err error) int {
	if err == nil || errors.Is(err, context.Canceled) {
		return 0
	}
	return 1
}

// Run builds the playlist described by opts and plays it.
//
// Every failure is returned rather than handled: a *cli.UsageError for missing directories, a
// *playlist.PatternError, a *playlist.DirectoryError, ErrNoSongs or a *player.LaunchError.  A player that exits
// unsuccessfully for one track is only warned about.
func (a *App) Run(ctx context.Context, opts *cli.Options) error {
	if len(opts.Directories) == 0 {
		return &cli.UsageError{Message: "No directories specified"}
	}

	pl, err := a.Build(opts)
	if err != nil {
		return err
	}

	if opts.List {
		a.printer.PrintPlaylist(pl.All(), pl.Len(), console.TerminalWidth(a.printer.Out()))
		return nil
	}

	return a.Play(ctx, pl, opts.Repeat)
}

// Build loads every directory in opts into one playlist, filtered and shuffled as requested
func (a *App) Build(opts *cli.Options) (*playlist.Playlist, error) {
	filter, err := buildFilter(opts)
	if err != nil {
		return nil, err
	}

	pl := playlist.New(a.cfg.Library.Extensions)
	for _, dir := range opts.Directories {
		a.printer.Infof("Loading music from directory '%s'...", dir)

		appended, err := pl.AppendFromDirectory(dir, filter)
		if err != nil {
			return nil, err
		}
		if appended == 0 {
			a.printer.Warnf("Directory empty. Skipping...")
		}
	}

	if pl.Len() == 0 {
		return nil, ErrNoSongs
	}

	if opts.Shuffle {
		pl.Shuffle(a.rng)
	}

	a.printer.Infof("%d songs loaded", pl.Len())
	return pl, nil
}

func buildFilter(opts *cli.Options) (playlist.Filter, error) {
	var match, fuzzy playlist.Filter
	if opts.Match != nil {
		pattern, err := playlist.CompileMatch(*opts.Match)
		if err != nil {
			return nil, err
		}
		match = pattern
	}
	if opts.Fuzzy != nil {
		fuzzy = playlist.NewFuzzyFilter(*opts.Fuzzy)
	}
	return playlist.AllOf(match, fuzzy), nil
}

// Play hands each track to the player in playlist order, once or forever.  Shuffling is not repeated between
// cycles.  A cycle in which the player failed on every track ends playback with ErrPlayerFailing.
func (a *App) Play(ctx context.Context, pl *playlist.Playlist, repeat bool) error {
	p, err := a.resolvePlayer()
	if err != nil {
		return err
	}

	for cycle := 1; ; cycle++ {
		log.Debug("Starting playlist cycle", "cycle", cycle, "songs", pl.Len())
		failed := 0
		for _, song := range pl.All() {
			if err := ctx.Err(); err != nil {
				return err
			}

			err := p.Play(ctx, song)
			var exitErr *player.ExitError
			switch {
			case err == nil:
			case errors.As(err, &exitErr):
				log.Warn("Player exited unsuccessfully", "track", song, "code", exitErr.Code)
				a.printer.Warnf("%v", exitErr)
				failed++
			default:
				return err
			}
		}

		if failed == pl.Len() {
			return ErrPlayerFailing
		}
		if !repeat {
			return nil
		}
	}
}

func (a *App) resolvePlayer() (player.Player, error) {
	if a.player != nil {
		return a.player, nil
	}

	launcher := player.New(a.cfg.Player, a.printer)
	if err := launcher.Check(); err != nil {
		return nil, err
	}
	a.player = launcher
	return launcher, nil
}

func (a *App) report(program string, err error) {
	var usageErr *cli.UsageError
	switch {
	case errors.As(err, &usageErr):
		a.printer.Errorf("%s", usageErr.Message)
		a.printer.Hint(cli.ShortHelp(program))
	case errors.Is(err, ErrNoSongs):
		a.printer.Errorf("No songs loaded")
	default:
		a.printer.Errorf("%v", err)
	}
}

func (a *App) printHelp(program string) {
	var sb strings.Builder
	sb.WriteString(cli.Help(program))
	sb.WriteString("\nEnvironment:\n")
	for _, env := range config.EnvVarHelp() {
		sb.WriteString(fmt.Sprintf("  %s\n    %s\n", env[0], env[1]))
	}
	a.printer.Print(sb.String())
}

func programName(args []string) string {
	if len(args) == 0 || args[0] == "" {
		return "hibiki"
	}
	return args[0]
}
