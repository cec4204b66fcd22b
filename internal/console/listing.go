package console

import (
	"fmt"
	"io"
	"iter"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"
)

// TerminalWidth returns the column count of w when it is a terminal, or 0 when it is not or the size is unknown
func TerminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

// PrintPlaylist writes one numbered line per track.  With a positive width, lines are cut to fit the terminal,
// keeping the end of the path since that is where the file name is.
func (p *Printer) PrintPlaylist(songs iter.Seq2[int, string], count int, width int) {
	numberWidth := len(fmt.Sprint(count))
	var sb strings.Builder

	for i, song := range songs {
		prefix := fmt.Sprintf("%*d  ", numberWidth, i+1)
		if width > 0 {
			song = truncateLeft(song, width-len(prefix))
		}
		sb.WriteString(prefix + song + "\n")
	}

	p.Print(sb.String())
}

// truncateLeft trims s from the left so it fits in width display cells, marking the cut with an ellipsis
func truncateLeft(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	const ellipsis = "…"
	room := width - runewidth.StringWidth(ellipsis)
	if room <= 0 {
		return runewidth.Truncate(ellipsis, width, "")
	}

	runes := []rune(s)
	used := 0
	start := len(runes)
	for start > 0 {
		w := runewidth.RuneWidth(runes[start-1])
		if used+w > room {
			break
		}
		used += w
		start--
	}
	return ellipsis + string(runes[start:])
}
