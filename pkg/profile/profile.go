package profile

import (
	"encoding/json"
	"os"
	"regexp"
	"strings"

	"github.com/pkg/errors"
)

// ErrValidation is the root cause of every profile validation failure.
// Callers halt the pipeline before any network call when they see it.
var ErrValidation = errors.New("profile validation failed")

// Validation grammars. Email and profile-URL grammars are strict; the
// phone grammar is loosely permissive and matches after stripping common
// punctuation.
//
//nolint:gochecknoglobals // Fixed grammars, compiled once
var (
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phonePattern    = regexp.MustCompile(`^\+?[0-9]{7,16}$`)
	linkedinPattern = regexp.MustCompile(`^(https?://)?(www\.)?linkedin\.com/in/[a-zA-Z0-9-]+/?$`)
	githubPattern   = regexp.MustCompile(`^(https?://)?(www\.)?github\.com/[a-zA-Z0-9-]+/?$`)
)

// UserProfile is the structured career record collected before generation.
// Once validated it is read-only: the prompt builder and renderer consume
// it and nothing mutates it afterwards.
type UserProfile struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Phone string `json:"phone"`
	Email string `json:"email"`

	Location       string `json:"location"`
	LinkedIn       string `json:"linkedin"`
	GitHub         string `json:"github"`
	Skills         string `json:"skills"`
	Experience     string `json:"experience"`
	Education      string `json:"education"`
	Certifications string `json:"certifications"`
}

// Validate checks required fields and field grammars. Optional fields are
// only checked when present.
func (p *UserProfile) Validate() (err error) {
	required := []struct {
		label string
		value string
	}{
		{"name", p.Name},
		{"role", p.Role},
		{"phone", p.Phone},
		{"email", p.Email},
	}

	for _, field := range required {
		if strings.TrimSpace(field.value) == "" {
			err = errors.Wrapf(ErrValidation, "%s is required", field.label)
			return err
		}
	}

	if !emailPattern.MatchString(strings.TrimSpace(p.Email)) {
		err = errors.Wrapf(ErrValidation, "invalid email address: %s", p.Email)
		return err
	}

	digits := strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(strings.TrimSpace(p.Phone))
	if !phonePattern.MatchString(digits) {
		err = errors.Wrapf(ErrValidation, "invalid phone number: %s", p.Phone)
		return err
	}

	if p.LinkedIn != "" && !linkedinPattern.MatchString(strings.TrimSpace(p.LinkedIn)) {
		err = errors.Wrapf(ErrValidation, "invalid LinkedIn profile URL: %s", p.LinkedIn)
		return err
	}

	if p.GitHub != "" && !githubPattern.MatchString(strings.TrimSpace(p.GitHub)) {
		err = errors.Wrapf(ErrValidation, "invalid GitHub profile URL: %s", p.GitHub)
		return err
	}

	return err
}

// Load reads and validates a profile from a JSON file.
func Load(path string) (p UserProfile, err error) {
	var data []byte
	data, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read profile file: %s", path)
		return p, err
	}

	err = json.Unmarshal(data, &p)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse profile file: %s", path)
		return p, err
	}

	err = p.Validate()
	if err != nil {
		return p, err
	}

	return p, err
}
