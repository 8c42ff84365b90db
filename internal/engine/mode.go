package engine

import "fmt"

// PrintMode selects how each rendered line is terminated.
type PrintMode int

const (
	// PrintNewline ends every line with '\n', so frames stack vertically.
	PrintNewline PrintMode = iota
	// PrintInline ends every line with '\r' and overwrites the same row.
	PrintInline
)

func (m PrintMode) String() string {
	switch m {
	case PrintNewline:
		return "newline"
	case PrintInline:
		return "inline"
	default:
		return fmt.Sprintf("PrintMode(%d)", int(m))
	}
}

func (m PrintMode) terminator() string {
	if m == PrintInline {
		return "\r"
	}
	return "\n"
}
