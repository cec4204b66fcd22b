package player

import (
	"github.com/PizzaHomicide/hibiki/internal/config"
	"github.com/PizzaHomicide/hibiki/internal/log"
)

// DefaultProgram is used when the config leaves the player path empty
const DefaultProgram = "mpv"

// New creates a launcher from the player section of the configuration
func New(cfg config.PlayerConfig, announcer Announcer) *Launcher {
	program := cfg.Path
	if program == "" {
		program = DefaultProgram
	}

	args := ParseArgs(cfg.Args)
	log.Info("Creating player launcher", "program", program, "args", args)

	return NewLauncher(program, args, announcer)
}
