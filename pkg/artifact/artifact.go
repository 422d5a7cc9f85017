package artifact

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/pkg/errors"

	"resume-studio/pkg/profile"
	"resume-studio/pkg/renderer"
	"resume-studio/pkg/sanitize"
)

// Settings records the knobs a resume was generated with.
type Settings struct {
	Model    string  `json:"model"`
	Template string  `json:"template"`
	Font     string  `json:"font"`
	FontSize float64 `json:"font_size"`
}

// Record is the structured artifact: everything needed to audit or
// regenerate one run.
type Record struct {
	UserData      profile.UserProfile `json:"user_data"`
	GeneratedText string              `json:"generated_text"`
	Settings      Settings            `json:"settings"`
	Timestamp     string              `json:"timestamp"`
}

// Set holds the paths of the three sibling artifacts of one run.
type Set struct {
	TextPath string
	JSONPath string
	PDFPath  string
}

// Package writes the three artifact forms of one generation result: the
// raw text, the structured JSON record, and the rendered PDF. The text and
// JSON artifacts are written first; a PDF fault aborts the run with the
// earlier artifacts already on disk.
func Package(p profile.UserProfile, generatedText string, settings Settings, fontFamily string, now time.Time, outputDir string) (set Set, err error) {
	err = os.MkdirAll(outputDir, 0750)
	if err != nil {
		err = errors.Wrapf(err, "failed to create output directory: %s", outputDir)
		return set, err
	}

	base := fmt.Sprintf("resume_%s_%s", SafeName(p.Name), now.Format("20060102_150405"))

	set.TextPath = filepath.Join(outputDir, base+".txt")
	err = os.WriteFile(set.TextPath, []byte(generatedText), 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write text artifact: %s", set.TextPath)
		return set, err
	}

	record := Record{
		UserData:      p,
		GeneratedText: generatedText,
		Settings:      settings,
		Timestamp:     now.Format(time.RFC3339),
	}

	var data []byte
	data, err = json.MarshalIndent(record, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal resume record")
		return set, err
	}

	set.JSONPath = filepath.Join(outputDir, base+".json")
	err = os.WriteFile(set.JSONPath, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write JSON artifact: %s", set.JSONPath)
		return set, err
	}

	set.PDFPath, err = renderer.RenderPDF(generatedText, p, fontFamily, settings.FontSize, filepath.Join(outputDir, base+".pdf"), now)
	if err != nil {
		return set, err
	}

	return set, err
}

// SafeName reduces a profile name to filename-safe characters: sanitized,
// spaces as underscores, everything but letters, digits, hyphens, and
// underscores removed.
func SafeName(name string) (safe string) {
	cleaned := strings.ReplaceAll(sanitize.Clean(name), " ", "_")

	var b strings.Builder
	for _, r := range cleaned {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}

	safe = b.String()
	return safe
}
