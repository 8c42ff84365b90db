package marquee

import (
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Gap is the cell appended to every line. It separates the end of the text
// from its wrapped beginning once the line starts rotating.
const Gap = " "

// Line is a circular buffer of display cells. Its length is fixed at
// construction time; Rotate only permutes the cells.
type Line struct {
	cells []string
}

// NewLine segments text into grapheme clusters and appends the gap cell.
func NewLine(text string) *Line {
	cells := make([]string, 0, len(text)+1)
	g := uniseg.NewGraphemes(text)
	for g.Next() {
		cells = append(cells, g.Str())
	}
	cells = append(cells, Gap)
	return &Line{cells: cells}
}

// NewLines splits text into lines and builds a Line for each of them.
func NewLines(text string) []*Line {
	segments := Split(text)
	lines := make([]*Line, 0, len(segments))
	for _, s := range segments {
		lines = append(lines, NewLine(s))
	}
	return lines
}

// Rotate shifts the buffer left by one cell, moving the first cell to the end.
func (l *Line) Rotate() {
	if len(l.cells) < 2 {
		return
	}
	first := l.cells[0]
	copy(l.cells, l.cells[1:])
	l.cells[len(l.cells)-1] = first
}

// Len returns the number of cells, gap included.
func (l *Line) Len() int {
	return len(l.cells)
}

// String returns the current contents of the buffer.
func (l *Line) String() string {
	var b strings.Builder
	for _, c := range l.cells {
		b.WriteString(c)
	}
	return b.String()
}

// Width returns the number of terminal columns the line occupies.
func (l *Line) Width() int {
	return runewidth.StringWidth(l.String())
}
