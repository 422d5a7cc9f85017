package watsonx

// TokenResponse is the IAM credential exchange response.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// GenerationRequest is the Watsonx text generation request body.
type GenerationRequest struct {
	ModelID    string               `json:"model_id"`
	Input      string               `json:"input"`
	Parameters GenerationParameters `json:"parameters"`
	ProjectID  string               `json:"project_id"`
}

// GenerationParameters controls decoding for a generation call.
type GenerationParameters struct {
	DecodingMethod    string  `json:"decoding_method"`
	MaxNewTokens      int     `json:"max_new_tokens"`
	Temperature       float64 `json:"temperature"`
	TopP              float64 `json:"top_p"`
	RepetitionPenalty float64 `json:"repetition_penalty"`
}

// GenerationResponse is the Watsonx text generation response body.
type GenerationResponse struct {
	Results []GenerationResult `json:"results"`
}

// GenerationResult is one generated completion.
type GenerationResult struct {
	GeneratedText string `json:"generated_text"`
	StopReason    string `json:"stop_reason,omitempty"`
}
