package marquee

import "strings"

// Split breaks text on '\n'. Empty segments between newlines are kept, but a
// single trailing newline does not produce an extra empty line. An empty text
// yields no lines.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	segments := strings.Split(text, "\n")
	if segments[len(segments)-1] == "" {
		segments = segments[:len(segments)-1]
	}
	return segments
}
