package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	headingStyle = lipgloss.NewStyle().Bold(true)
	optionStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#43BF6D"))
)

type helpEntry struct {
	flags string
	desc  []string
}

var helpEntries = []helpEntry{
	{"-h, --help", []string{"Display help and exit."}},
	{"-V, --version", []string{"Display version information and exit."}},
	{"-m, --match REGEX", []string{
		"Only plays songs whose file name matches REGEX.",
		"REGEX is an extended regular expression, matched case-insensitively.",
	}},
	{"-f, --fuzzy TERM", []string{
		"Only plays songs whose file name fuzzy-matches TERM.",
	}},
	{"-l, --list", []string{
		"Prints the playlist instead of playing it.",
	}},
	{"--no-shuffle", []string{
		"Plays the songs in the order they appear in the directory",
		"instead of randomly shuffling them.",
	}},
	{"--no-repeat", []string{
		"Exits once all the songs have been played instead of repeating",
		"them in an endless loop.",
	}},
}

// Help returns the full usage text for the given program name.
func Help(program string) string {
	var sb strings.Builder

	sb.WriteString(headingStyle.Render("Usage:") + "\n")
	sb.WriteString(fmt.Sprintf("  %s [OPTION...] [--] DIRECTORY...\n\n", program))
	sb.WriteString("Plays the music files located in DIRECTORY with an external player (mpv by default).\n\n")
	sb.WriteString(headingStyle.Render("Options:") + "\n")

	for i, entry := range helpEntries {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("  " + optionStyle.Render(entry.flags) + "\n")
		for _, line := range entry.desc {
			sb.WriteString("    " + line + "\n")
		}
	}

	return sb.String()
}

// ShortHelp is the one line hint printed after a usage error.
func ShortHelp(program string) string {
	return fmt.Sprintf("Try '%s -h' for more information", program)
}
