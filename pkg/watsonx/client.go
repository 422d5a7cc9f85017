package watsonx

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pkg/errors"
)

const (
	// DefaultBaseURL is the Watsonx inference endpoint.
	DefaultBaseURL = "https://us-south.ml.cloud.ibm.com"
	// DefaultTokenURL is the IBM Cloud IAM token exchange endpoint.
	DefaultTokenURL = "https://iam.cloud.ibm.com/identity/token"
	// APIVersion pins the text generation API revision.
	APIVersion = "2023-05-29"

	tokenTimeout      = 30 * time.Second
	generationTimeout = 60 * time.Second
)

// Client calls the Watsonx text generation service. Every Generate
// performs a fresh IAM token exchange followed by exactly one generation
// round trip: bearer tokens are never cached and nothing is retried.
type Client struct {
	apiKey    string
	projectID string
	baseURL   string
	tokenURL  string

	tokenClient *http.Client
	genClient   *http.Client
}

// NewClient creates a Watsonx client for the given credentials.
func NewClient(apiKey, projectID string) (client *Client) {
	client = &Client{
		apiKey:      apiKey,
		projectID:   projectID,
		baseURL:     DefaultBaseURL,
		tokenURL:    DefaultTokenURL,
		tokenClient: &http.Client{Timeout: tokenTimeout},
		genClient:   &http.Client{Timeout: generationTimeout},
	}
	return client
}

// Generate exchanges the API key for a short-lived bearer token, then
// performs one generation round trip against the given model. Failures
// come back classified under the package error taxonomy.
func (c *Client) Generate(ctx context.Context, modelID, prompt string) (text string, err error) {
	var token string
	token, err = c.fetchToken(ctx)
	if err != nil {
		err = errors.Wrap(err, "credential exchange failed")
		return text, err
	}

	text, err = c.generate(ctx, token, modelID, prompt)
	if err != nil {
		err = errors.Wrap(err, "generation request failed")
		return text, err
	}

	return text, err
}

// fetchToken performs the IAM apikey-for-token exchange.
func (c *Client) fetchToken(ctx context.Context) (token string, err error) {
	form := url.Values{}
	form.Set("apikey", c.apiKey)
	form.Set("grant_type", "urn:ibm:params:oauth:grant-type:apikey")

	var req *http.Request
	req, err = http.NewRequestWithContext(ctx, http.MethodPost, c.tokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		err = errors.Wrap(err, "failed to create token request")
		return token, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var resp *http.Response
	resp, err = c.tokenClient.Do(req)
	if err != nil {
		err = classifyTransport(err)
		return token, err
	}
	defer resp.Body.Close()

	var body []byte
	body, err = io.ReadAll(resp.Body)
	if err != nil {
		err = errors.Wrap(err, "failed to read token response")
		return token, err
	}

	if resp.StatusCode != http.StatusOK {
		err = classifyTokenStatus(resp.StatusCode, body)
		return token, err
	}

	var tokenResp TokenResponse
	err = json.Unmarshal(body, &tokenResp)
	if err != nil {
		err = errors.Wrap(err, "failed to parse token response")
		return token, err
	}

	if tokenResp.AccessToken == "" {
		err = errors.Wrap(ErrServer, "token response missing access_token")
		return token, err
	}

	token = tokenResp.AccessToken
	return token, err
}

// generate performs the single generation round trip.
func (c *Client) generate(ctx context.Context, token, modelID, prompt string) (text string, err error) {
	genReq := GenerationRequest{
		ModelID: modelID,
		Input:   prompt,
		Parameters: GenerationParameters{
			DecodingMethod:    "greedy",
			MaxNewTokens:      1200,
			Temperature:       0.3,
			TopP:              0.9,
			RepetitionPenalty: 1.1,
		},
		ProjectID: c.projectID,
	}

	var reqBody []byte
	reqBody, err = json.Marshal(genReq)
	if err != nil {
		err = errors.Wrap(err, "failed to marshal generation request")
		return text, err
	}

	endpoint := c.baseURL + "/ml/v1/text/generation?version=" + APIVersion

	var req *http.Request
	req, err = http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(reqBody))
	if err != nil {
		err = errors.Wrap(err, "failed to create generation request")
		return text, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	var resp *http.Response
	resp, err = c.genClient.Do(req)
	if err != nil {
		err = classifyTransport(err)
		return text, err
	}
	defer resp.Body.Close()

	var body []byte
	body, err = io.ReadAll(resp.Body)
	if err != nil {
		err = errors.Wrap(err, "failed to read generation response")
		return text, err
	}

	if resp.StatusCode != http.StatusOK {
		err = classifyGenerationStatus(resp.StatusCode, body)
		return text, err
	}

	var genResp GenerationResponse
	err = json.Unmarshal(body, &genResp)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse generation response: %s", string(body))
		return text, err
	}

	if len(genResp.Results) == 0 {
		err = errors.Wrap(ErrEmptyResponse, "no results in generation response")
		return text, err
	}

	text = strings.TrimSpace(genResp.Results[0].GeneratedText)
	if text == "" {
		err = errors.Wrap(ErrEmptyResponse, "model returned no text")
		return text, err
	}

	return text, err
}

// classifyTokenStatus maps credential exchange statuses onto the taxonomy.
func classifyTokenStatus(status int, body []byte) (err error) {
	switch status {
	case http.StatusBadRequest:
		err = errors.Wrapf(ErrMalformedKey, "token endpoint returned status %d", status)
	case http.StatusUnauthorized:
		err = errors.Wrapf(ErrAuthentication, "token endpoint returned status %d", status)
	case http.StatusForbidden:
		err = errors.Wrapf(ErrAuthorization, "token endpoint returned status %d", status)
	default:
		err = errors.Wrapf(ErrServer, "token endpoint returned status %d: %s", status, string(body))
	}
	return err
}

// classifyGenerationStatus maps generation call statuses onto the taxonomy.
func classifyGenerationStatus(status int, body []byte) (err error) {
	switch status {
	case http.StatusNotFound:
		err = errors.Wrapf(ErrModelUnavailable, "generation endpoint returned status %d", status)
	case http.StatusForbidden:
		err = errors.Wrapf(ErrAuthorization, "generation endpoint returned status %d", status)
	case http.StatusTooManyRequests:
		err = errors.Wrapf(ErrRateLimited, "generation endpoint returned status %d", status)
	default:
		err = errors.Wrapf(ErrServer, "generation endpoint returned status %d: %s", status, string(body))
	}
	return err
}

// classifyTransport separates timeouts from connection failures so the
// caller can show different remediation text. http.Client.Do always
// returns a *url.Error.
func classifyTransport(err error) (classified error) {
	if uerr, ok := err.(*url.Error); ok {
		if uerr.Timeout() {
			classified = errors.Wrap(ErrTimeout, uerr.Error())
			return classified
		}
		classified = errors.Wrap(ErrUnreachable, uerr.Error())
		return classified
	}

	classified = errors.Wrap(ErrUnreachable, err.Error())
	return classified
}
