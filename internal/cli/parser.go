package cli

import (
	"strings"

	"github.com/PizzaHomicide/hibiki/internal/log"
)

type parserState int

const (
	stateBase parserState = iota
	stateEndOfOptions
	stateMatchPending
	stateFuzzyPending
)

func (s parserState) String() string {
	switch s {
	case stateBase:
		return "base"
	case stateEndOfOptions:
		return "end-of-options"
	case stateMatchPending:
		return "match-pending"
	case stateFuzzyPending:
		return "fuzzy-pending"
	default:
		return "unknown"
	}
}

// tokens is a cursor over the arguments that have not been consumed yet
type tokens struct {
	remaining []string
}

// next pops the head token.  ok is false once the input is exhausted.
func (t *tokens) next() (token string, ok bool) {
	if len(t.remaining) == 0 {
		return "", false
	}
	token = t.remaining[0]
	t.remaining = t.remaining[1:]
	return token, true
}

// Parse consumes args, where args[0] is the program name, and returns the parsed options.
//
// The returned error is ErrHelp or ErrVersion when the user asked for either, or a *UsageError for malformed
// input.  An empty directory list is not an error here.
func Parse(args []string) (*Options, error) {
	input := &tokens{remaining: args}

	programName, _ := input.next()
	opts := newOptions(programName)
	state := stateBase

	for {
		token, ok := input.next()
		if !ok {
			break
		}

		log.Trace("Parsing token", "state", state, "token", token)

		var err error
		switch state {
		case stateBase:
			state, err = parseBase(input, opts, token)
		case stateEndOfOptions:
			err = opts.appendDirectory(token)
		case stateMatchPending:
			opts.Match = &token
			state = stateBase
		case stateFuzzyPending:
			opts.Fuzzy = &token
			state = stateBase
		}
		if err != nil {
			return nil, err
		}
	}

	switch state {
	case stateMatchPending:
		return nil, missingValue("--match", "a regular expression")
	case stateFuzzyPending:
		return nil, missingValue("--fuzzy", "a search term")
	}

	log.Debug("Parsed arguments", "shuffle", opts.Shuffle, "repeat", opts.Repeat, "list", opts.List,
		"directories", opts.Directories)
	return opts, nil
}

// parseBase handles one token in the base state and returns the state to continue in
func parseBase(input *tokens, opts *Options, token string) (parserState, error) {
	switch {
	case token == "":
		return stateBase, nil
	case token == "--help":
		return stateBase, ErrHelp
	case token == "--version":
		return stateBase, ErrVersion
	case token == "--no-shuffle":
		opts.Shuffle = false
	case token == "--no-repeat":
		opts.Repeat = false
	case token == "--list":
		opts.List = true
	case token == "--match":
		return stateMatchPending, nil
	case token == "--fuzzy":
		return stateFuzzyPending, nil
	case token == "--":
		return stateEndOfOptions, nil
	case strings.HasPrefix(token, "--"):
		return stateBase, unknownOption(token)
	case strings.HasPrefix(token, "-"):
		return stateBase, parseShortOptions(input, opts, token[1:])
	default:
		return stateBase, opts.appendDirectory(token)
	}
	return stateBase, nil
}

// parseShortOptions interprets a cluster such as "-lm^live".  An option taking a value ends the cluster: whatever
// follows it in the same token is the value, otherwise the next token is.
func parseShortOptions(input *tokens, opts *Options, cluster string) error {
	for i, option := range cluster {
		switch option {
		case 'h':
			return ErrHelp
		case 'V':
			return ErrVersion
		case 'l':
			opts.List = true
		case 'm', 'f':
			value, err := shortOptionValue(input, option, cluster[i+1:])
			if err != nil {
				return err
			}
			if option == 'm' {
				opts.Match = &value
			} else {
				opts.Fuzzy = &value
			}
			return nil
		default:
			return unknownOption("-" + string(option))
		}
	}
	return nil
}

func shortOptionValue(input *tokens, option rune, rest string) (string, error) {
	if rest != "" {
		return rest, nil
	}
	if value, ok := input.next(); ok {
		return value, nil
	}
	if option == 'm' {
		return "", missingValue("-m", "a regular expression")
	}
	return "", missingValue("-f", "a search term")
}
