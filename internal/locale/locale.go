package locale

import (
	"fmt"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
)

// Variables consulted in order, the same precedence setlocale(LC_ALL, "") uses
// for the character type category.
var envKeys = []string{"LC_ALL", "LC_CTYPE", "LANG"}

// Locale describes the character encoding used for input and output.
type Locale struct {
	// Name is the raw locale name, e.g. "de_DE.ISO-8859-1". Empty means C.
	Name string
	// Codeset is the part of Name after '.', without any "@modifier".
	Codeset  string
	Encoding encoding.Encoding
	// Err is set when Codeset could not be resolved and UTF-8 was used instead.
	Err error
}

// UTF8 is the locale used when the environment names none.
var UTF8 = Locale{Encoding: unicode.UTF8}

// Detect reads the locale from the environment through getenv.
func Detect(getenv func(string) string) Locale {
	for _, key := range envKeys {
		if name := getenv(key); name != "" {
			return Parse(name)
		}
	}
	return UTF8
}

// Parse resolves a locale name of the form language[_territory][.codeset][@modifier].
func Parse(name string) Locale {
	loc := Locale{Name: name, Encoding: unicode.UTF8}
	if name == "C" || name == "POSIX" {
		return loc
	}

	codeset := ""
	if i := strings.IndexByte(name, '.'); i >= 0 {
		codeset = name[i+1:]
	}
	if i := strings.IndexByte(codeset, '@'); i >= 0 {
		codeset = codeset[:i]
	}
	loc.Codeset = codeset
	if codeset == "" || isUTF8(codeset) {
		return loc
	}

	enc, err := lookup(codeset)
	if err != nil {
		loc.Err = err
		return loc
	}
	loc.Encoding = enc
	return loc
}

func isUTF8(codeset string) bool {
	switch strings.ToLower(codeset) {
	case "utf-8", "utf8":
		return true
	}
	return false
}

// glibcAliases maps normalized glibc codeset spellings that the IANA index
// does not know to their IANA names.
var glibcAliases = map[string]string{
	"eucjp":    "EUC-JP",
	"euckr":    "EUC-KR",
	"euccn":    "GB2312",
	"gb2312":   "GB2312",
	"gbk":      "GBK",
	"gb18030":  "GB18030",
	"big5":     "Big5",
	"sjis":     "Shift_JIS",
	"shiftjis": "Shift_JIS",
	"koi8r":    "KOI8-R",
	"koi8u":    "KOI8-U",
	"tis620":   "TIS-620",
	"cp866":    "IBM866",
	"ibm866":   "IBM866",
}

// normalize lowercases a codeset and drops '-' and '_', the way glibc
// compares codeset names.
func normalize(codeset string) string {
	return strings.Map(func(r rune) rune {
		if r == '-' || r == '_' {
			return -1
		}
		return r
	}, strings.ToLower(codeset))
}

// ianaName returns the IANA spelling of a normalized glibc codeset, or "".
func ianaName(norm string) string {
	if name, ok := glibcAliases[norm]; ok {
		return name
	}
	if n, ok := strings.CutPrefix(norm, "iso8859"); ok && n != "" {
		return "ISO-8859-" + n
	}
	if n, ok := strings.CutPrefix(norm, "cp125"); ok && len(n) == 1 {
		return "windows-125" + n
	}
	return ""
}

// lookup resolves codeset through the IANA index, first as spelled and then
// in its glibc-normalized form. WHATWG labels are the last resort because
// they map Latin-1 names to Windows-1252.
func lookup(codeset string) (encoding.Encoding, error) {
	if enc, err := ianaindex.IANA.Encoding(codeset); err == nil && enc != nil {
		return enc, nil
	}
	if name := ianaName(normalize(codeset)); name != "" {
		if enc, err := ianaindex.IANA.Encoding(name); err == nil && enc != nil {
			return enc, nil
		}
	}
	if enc, err := htmlindex.Get(codeset); err == nil && enc != nil {
		return enc, nil
	}
	return nil, fmt.Errorf("unsupported codeset %q", codeset)
}

// Decode converts s from the locale encoding to UTF-8. Bytes that are not
// valid in the encoding become U+FFFD.
func (l Locale) Decode(s string) string {
	out, err := l.encoding().NewDecoder().String(s)
	if err != nil {
		return strings.ToValidUTF8(s, "\uFFFD")
	}
	return out
}

// Encoder returns an encoder from UTF-8 to the locale encoding. Characters the
// encoding cannot represent are replaced rather than reported.
func (l Locale) Encoder() *encoding.Encoder {
	return encoding.ReplaceUnsupported(l.encoding().NewEncoder())
}

// IsUTF8 reports whether the locale uses UTF-8.
func (l Locale) IsUTF8() bool {
	return l.encoding() == unicode.UTF8
}

func (l Locale) encoding() encoding.Encoding {
	if l.Encoding == nil {
		return unicode.UTF8
	}
	return l.Encoding
}
