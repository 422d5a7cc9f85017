package renderer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"resume-studio/pkg/profile"
	"resume-studio/pkg/sanitize"
)

// maxHeadingLen is the length bound for a line to count as a section
// heading.
const maxHeadingLen = 50

// blockKind classifies a line of generated text for layout.
type blockKind int

const (
	blockHeading blockKind = iota
	blockBullet
	blockParagraph
	blockGap
)

// block is one layout unit of the rendered body.
type block struct {
	kind blockKind
	text string
}

// bodyStart decides where generated body content begins. Models tend to
// echo the candidate's name and contact details ahead of the first
// section; those lines duplicate the fixed document header and must not
// print twice, so everything before the first section heading is dropped.
// A response with no ALL-CAPS heading anywhere therefore renders an empty
// body. That is a known limitation of the heuristic, kept deliberately.
type bodyStart struct {
	echoes  []string
	started bool
}

func newBodyStart(p profile.UserProfile) (detector *bodyStart) {
	detector = &bodyStart{
		echoes: []string{
			sanitize.Clean(strings.ToUpper(p.Name)),
			sanitize.Clean(p.Phone),
			sanitize.Clean(p.Email),
		},
	}
	return detector
}

// drop reports whether line should be suppressed. The detector flips to
// started at the first heading-shaped line and stays there.
func (d *bodyStart) drop(line string) (suppressed bool) {
	if d.started {
		return suppressed
	}

	for _, echo := range d.echoes {
		if echo != "" && strings.Contains(line, echo) {
			suppressed = true
			return suppressed
		}
	}

	if looksLikeHeading(line) {
		d.started = true
		return suppressed
	}

	suppressed = true
	return suppressed
}

// parseBlocks splits sanitized text into lines and classifies each for
// layout, suppressing echoed contact lines before the body starts. Blank
// lines render as vertical gaps even while the detector is active.
func parseBlocks(text string, detector *bodyStart) (blocks []block) {
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			blocks = append(blocks, block{kind: blockGap})
			continue
		}

		if detector.drop(line) {
			continue
		}

		switch {
		case isSectionHeading(line):
			blocks = append(blocks, block{kind: blockHeading, text: line})
		case isBulletLine(line):
			blocks = append(blocks, block{kind: blockBullet, text: strings.TrimSpace(line[2:])})
		default:
			blocks = append(blocks, block{kind: blockParagraph, text: line})
		}
	}
	return blocks
}

// looksLikeHeading is the body-start test: entirely upper-case and short.
func looksLikeHeading(line string) (heading bool) {
	heading = isAllUpper(line) && utf8.RuneCountInString(line) < maxHeadingLen
	return heading
}

// isSectionHeading additionally excludes bullet-marked lines.
func isSectionHeading(line string) (heading bool) {
	heading = looksLikeHeading(line) && !strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "*")
	return heading
}

func isBulletLine(line string) (bullet bool) {
	bullet = strings.HasPrefix(line, "- ") || strings.HasPrefix(line, "* ") || strings.HasPrefix(line, "+ ")
	return bullet
}

// isAllUpper reports whether s contains at least one letter and no
// lower-case letters.
func isAllUpper(s string) (upper bool) {
	for _, r := range s {
		if unicode.IsLower(r) {
			return upper
		}
		if unicode.IsLetter(r) {
			upper = true
		}
	}
	return upper
}
