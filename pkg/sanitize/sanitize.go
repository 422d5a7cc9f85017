package sanitize

import (
	"strings"
	"unicode"
)

// replacer maps typographic characters language models like to emit onto
// ASCII equivalents the core PDF fonts can draw. It runs before the code
// point fallback pass, so an em dash becomes "-" rather than "?".
//
//nolint:gochecknoglobals // Fixed substitution table, never mutated
var replacer = strings.NewReplacer(
	"•", "* ", // bullet
	"·", "* ", // middle dot
	"●", "* ", // black circle
	"○", "* ", // white circle
	"■", "* ", // black square
	"□", "* ", // white square
	"–", "-", // en dash
	"—", "-", // em dash
	"−", "-", // minus sign
	"─", "-", // box drawing horizontal
	"│", "|", // box drawing vertical
	"‘", "'", // left single quote
	"’", "'", // right single quote
	"“", `"`, // left double quote
	"”", `"`, // right double quote
	"…", "...", // ellipsis
	" ", " ", // non-breaking space
	"→", "->", // right arrow
	"←", "<-", // left arrow
	"★", "*", // black star
	"☆", "*", // white star
	"®", "(R)",
	"©", "(C)",
	"™", "(TM)",
)

// Clean maps arbitrary text onto the Latin-1 subset the PDF fonts can
// render. The substitution table applies first; any remaining character
// outside Latin-1 becomes "?" if alphanumeric, a single space if
// whitespace, and is dropped otherwise. Lossy on purpose: the output is
// guaranteed renderable, not faithful. Total and idempotent.
func Clean(text string) (cleaned string) {
	text = replacer.Replace(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r < 256:
			b.WriteRune(r)
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteByte('?')
		case unicode.IsSpace(r):
			b.WriteByte(' ')
		}
	}

	cleaned = b.String()
	return cleaned
}
