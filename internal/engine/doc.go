// Package engine is the render loop of the scroller. It owns the rotating
// lines built by package marquee and, once per frame, writes every line to
// the output, rotates them, and sleeps for the configured delay.
//
// The loop has no natural end. Run returns only when its context is
// cancelled or the output can no longer be written.
package engine
