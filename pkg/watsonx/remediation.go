package watsonx

import "errors"

// Remediation returns a short hint the user can act on for a classified
// failure, or "" for errors outside the taxonomy.
func Remediation(err error) (hint string) {
	switch {
	case errors.Is(err, ErrMalformedKey):
		hint = "Check the format of your Watsonx API key."
	case errors.Is(err, ErrAuthentication):
		hint = "Verify your API key is current and has not been revoked."
	case errors.Is(err, ErrAuthorization):
		hint = "Check that your project has access to the selected model."
	case errors.Is(err, ErrRateLimited):
		hint = "Wait a moment and try again."
	case errors.Is(err, ErrModelUnavailable):
		hint = "Try a different model from the catalog."
	case errors.Is(err, ErrTimeout):
		hint = "The service is slow to respond; try again shortly."
	case errors.Is(err, ErrUnreachable):
		hint = "Check your internet connection."
	case errors.Is(err, ErrEmptyResponse):
		hint = "The model returned nothing; try again or switch models."
	}
	return hint
}
