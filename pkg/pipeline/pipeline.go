package pipeline

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"resume-studio/pkg/artifact"
	"resume-studio/pkg/profile"
	"resume-studio/pkg/prompt"
)

// Generator produces text for a prompt against a named model. The narrow
// interface keeps the remote service substitutable in tests.
type Generator interface {
	Generate(ctx context.Context, modelID, prompt string) (text string, err error)
}

// Request describes one generation run. Model and Font carry the catalog
// display names recorded in the JSON artifact; ModelID and FontFamily are
// the resolved values the client and renderer consume.
type Request struct {
	Profile    profile.UserProfile
	Style      profile.Style
	Model      string
	ModelID    string
	Font       string
	FontFamily string
	FontSize   float64
	OutputDir  string
}

// Result is one completed run.
type Result struct {
	Prompt        string
	GeneratedText string
	Artifacts     artifact.Set
}

// Pipeline executes the linear validate, prompt, generate, package flow.
// Stateless: every Run is independent and nothing carries over between
// runs.
type Pipeline struct {
	gen Generator
}

// New creates a pipeline around a generator.
func New(gen Generator) (p *Pipeline) {
	p = &Pipeline{gen: gen}
	return p
}

// Run executes one submission end to end. Validation failures halt before
// any network call; generation failures halt before any artifact is
// written.
func (p *Pipeline) Run(ctx context.Context, req Request) (res Result, err error) {
	err = req.Profile.Validate()
	if err != nil {
		return res, err
	}

	res.Prompt = prompt.Build(req.Profile, req.Style)

	res.GeneratedText, err = p.gen.Generate(ctx, req.ModelID, res.Prompt)
	if err != nil {
		return res, err
	}

	settings := artifact.Settings{
		Model:    req.Model,
		Template: string(req.Style),
		Font:     req.Font,
		FontSize: req.FontSize,
	}

	res.Artifacts, err = artifact.Package(req.Profile, res.GeneratedText, settings, req.FontFamily, time.Now(), req.OutputDir)
	if err != nil {
		err = errors.Wrap(err, "artifact packaging failed")
		return res, err
	}

	return res, err
}
