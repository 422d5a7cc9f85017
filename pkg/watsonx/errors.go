package watsonx

import "github.com/pkg/errors"

// Classified generation failures. Callers match these with errors.Is to
// choose remediation text; the raw diagnostic stays in the wrapped
// message. Nothing here is retried automatically.
var (
	// ErrMalformedKey means the credential exchange rejected the API key
	// format outright.
	ErrMalformedKey = errors.New("API key is malformed")
	// ErrAuthentication means the API key failed authentication.
	ErrAuthentication = errors.New("API key authentication failed")
	// ErrAuthorization means the key or project lacks access.
	ErrAuthorization = errors.New("access denied")
	// ErrRateLimited means the service asked us to slow down.
	ErrRateLimited = errors.New("rate limit exceeded")
	// ErrModelUnavailable means the requested model does not exist or is
	// not deployed in this region.
	ErrModelUnavailable = errors.New("model not available")
	// ErrTimeout means a round trip exceeded its deadline.
	ErrTimeout = errors.New("request timed out")
	// ErrUnreachable means the connection itself failed.
	ErrUnreachable = errors.New("service unreachable")
	// ErrEmptyResponse means the call succeeded but the model returned no
	// text. Treated as failure, never as an empty success.
	ErrEmptyResponse = errors.New("empty response from model")
	// ErrServer is the catch-all for any other non-200 status.
	ErrServer = errors.New("unexpected server error")
)
