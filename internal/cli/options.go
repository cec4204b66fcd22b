// Package cli turns the raw process arguments into an Options record.
//
// Parsing is an explicit state machine.  It never exits the process or prints anything itself: help requests and
// malformed input come back as errors so that main decides what to print and which status to exit with.
package cli

import (
	"errors"
	"fmt"
)

// MaxDirectories is the most directories a single invocation accepts.
const MaxDirectories = 50

var (
	// ErrHelp is returned when -h or --help is seen.  The caller prints the full help and exits 0.
	ErrHelp = errors.New("help requested")
	// ErrVersion is returned when -V or --version is seen.  The caller prints the version and exits 0.
	ErrVersion = errors.New("version requested")
)

// Options is the parsed form of the command line.  It is not modified after Parse returns.
type Options struct {
	ProgramName string
	Shuffle     bool
	Repeat      bool
	List        bool
	// Match is the extended regular expression filenames must match.  Nil when no pattern was given.
	Match *string
	// Fuzzy is a term filenames must fuzzy-match.  Nil when not given.
	Fuzzy       *string
	Directories []string
}

func newOptions(programName string) *Options {
	return &Options{
		ProgramName: programName,
		Shuffle:     true,
		Repeat:      true,
	}
}

func (o *Options) appendDirectory(directory string) error {
	if len(o.Directories) >= MaxDirectories {
		return &UsageError{Message: fmt.Sprintf("Too many directories, at most %d are supported", MaxDirectories)}
	}
	o.Directories = append(o.Directories, directory)
	return nil
}

// UsageError reports malformed command line input.  It is printed with a hint pointing at -h.
type UsageError struct {
	Message string
}

func (e *UsageError) Error() string {
	return e.Message
}

func unknownOption(option string) error {
	return &UsageError{Message: fmt.Sprintf("Unknown option '%s'", option)}
}

func missingValue(option, what string) error {
	return &UsageError{Message: fmt.Sprintf("Option '%s' expects %s as an argument", option, what)}
}
