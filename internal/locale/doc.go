// Package locale resolves the character encoding of the process locale once
// at startup. The scroller decodes its input text and encodes every frame
// through the resulting Locale.
package locale
