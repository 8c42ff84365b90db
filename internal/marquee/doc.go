// Package marquee holds the text model of the scroller: it splits the source
// text into lines and keeps one rotating, fixed-length cell buffer per line.
//
// A cell is a single user-perceived character (an extended grapheme cluster),
// so multi-byte and combining sequences rotate as one unit.
package marquee
