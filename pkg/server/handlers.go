package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"resume-studio/pkg/artifact"
	"resume-studio/pkg/pipeline"
	"resume-studio/pkg/profile"
	"resume-studio/pkg/watsonx"
)

// generateRequest is the form submission body. Absent settings fall back
// to the configured defaults.
type generateRequest struct {
	Profile  profile.UserProfile `json:"profile"`
	Style    string              `json:"style"`
	Model    string              `json:"model"`
	Font     string              `json:"font"`
	FontSize float64             `json:"font_size"`
}

type artifactPaths struct {
	Text string `json:"text"`
	JSON string `json:"json"`
	PDF  string `json:"pdf"`
}

type generateResponse struct {
	GeneratedText string            `json:"generated_text"`
	Artifacts     artifactPaths     `json:"artifacts"`
	Settings      artifact.Settings `json:"settings"`
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var body generateRequest
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	if body.Style == "" {
		body.Style = s.cfg.GetTemplate()
	}
	if body.Model == "" {
		body.Model = s.cfg.GetModel()
	}
	if body.Font == "" {
		body.Font = s.cfg.GetFont()
	}
	if body.FontSize == 0 {
		body.FontSize = s.cfg.GetFontSize()
	}

	style, err := profile.ParseStyle(body.Style)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	modelID, err := s.catalog.ModelID(body.Model)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	fontFamily, err := s.catalog.FontFamily(body.Font)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	res, err := s.pipe.Run(r.Context(), pipeline.Request{
		Profile:    body.Profile,
		Style:      style,
		Model:      body.Model,
		ModelID:    modelID,
		Font:       body.Font,
		FontFamily: fontFamily,
		FontSize:   body.FontSize,
		OutputDir:  s.cfg.Defaults.OutputDir,
	})
	if err != nil {
		s.logger.Error("generation failed", "error", err)
		writeError(w, statusForError(err), err)
		return
	}

	writeJSON(w, http.StatusOK, generateResponse{
		GeneratedText: res.GeneratedText,
		Artifacts: artifactPaths{
			Text: res.Artifacts.TextPath,
			JSON: res.Artifacts.JSONPath,
			PDF:  res.Artifacts.PDFPath,
		},
		Settings: artifact.Settings{
			Model:    body.Model,
			Template: string(style),
			Font:     body.Font,
			FontSize: body.FontSize,
		},
	})
}

// statusForError maps classified pipeline failures onto HTTP statuses.
func statusForError(err error) (status int) {
	switch {
	case errors.Is(err, profile.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, watsonx.ErrRateLimited):
		status = http.StatusTooManyRequests
	case errors.Is(err, watsonx.ErrTimeout):
		status = http.StatusGatewayTimeout
	case errors.Is(err, watsonx.ErrMalformedKey),
		errors.Is(err, watsonx.ErrAuthentication),
		errors.Is(err, watsonx.ErrAuthorization),
		errors.Is(err, watsonx.ErrModelUnavailable),
		errors.Is(err, watsonx.ErrUnreachable),
		errors.Is(err, watsonx.ErrEmptyResponse),
		errors.Is(err, watsonx.ErrServer):
		status = http.StatusBadGateway
	default:
		status = http.StatusInternalServerError
	}
	return status
}
