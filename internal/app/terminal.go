package app

import (
	"io"
	"os"

	"golang.org/x/term"

	"github.com/sfluorine/textscroller/internal/engine"
	"github.com/sfluorine/textscroller/internal/marquee"
)

// probeTerminal inspects the output once before the loop starts and warns
// about setups that will not render as a marquee.
func (a *App) probeTerminal(lines []*marquee.Line) {
	fd, ok := terminalFd(a.outW)
	if !ok {
		a.logger.Debug("Output is not a terminal.")
		if a.config.PrintMode == engine.PrintInline {
			a.logger.Warn("Inline print mode on a non-terminal output, frames will not overwrite each other.")
		}
		return
	}

	columns, rows, err := term.GetSize(fd)
	if err != nil {
		a.logger.Debug("Could not read terminal size.", "error", err)
		return
	}
	a.logger.Debug("Output is a terminal.", "columns", columns, "rows", rows)
	a.checkLineWidths(lines, columns)
}

func (a *App) checkLineWidths(lines []*marquee.Line, columns int) {
	if columns <= 0 {
		return
	}
	for i, l := range lines {
		if w := l.Width(); w > columns {
			a.logger.Warn("Line is wider than the terminal and will wrap.", "line", i, "width", w, "columns", columns)
		}
	}
}

func terminalFd(w io.Writer) (int, bool) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, false
	}
	fd := int(f.Fd())
	return fd, term.IsTerminal(fd)
}
