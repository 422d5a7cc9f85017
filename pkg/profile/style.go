package profile

import (
	"strings"

	"github.com/pkg/errors"
)

// Style is a named formatting policy controlling prompt instructions and
// the expected section layout of the generated resume.
type Style string

// The four supported template styles.
const (
	StyleProfessional Style = "professional"
	StyleTechnical    Style = "technical"
	StyleCreative     Style = "creative"
	StyleAcademic     Style = "academic"
)

// ParseStyle resolves a style name, case-insensitively.
func ParseStyle(name string) (style Style, err error) {
	switch Style(strings.ToLower(strings.TrimSpace(name))) {
	case StyleProfessional:
		style = StyleProfessional
	case StyleTechnical:
		style = StyleTechnical
	case StyleCreative:
		style = StyleCreative
	case StyleAcademic:
		style = StyleAcademic
	default:
		err = errors.Errorf("unknown template style: %q (choose professional, technical, creative, or academic)", name)
	}
	return style, err
}
