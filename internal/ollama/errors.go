package ollama

import "net/http"

// Kind classifies an upstream failure. The set is closed: every error the
// client returns carries exactly one of these.
type Kind int

const (
	// KindUnavailable means the inference server could not be reached at all.
	KindUnavailable Kind = iota
	// KindTimeout means the inference server did not answer in time.
	KindTimeout
	// KindUpstream means the server answered but the reply was unusable:
	// a failure status, an empty answer or a malformed payload.
	KindUpstream
)

// Error is the tagged failure the client surfaces instead of raw transport
// errors. Message is safe to show to the caller verbatim.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

// HTTPStatus maps the failure kind to the status the relay reports.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindUnavailable:
		return http.StatusServiceUnavailable
	case KindTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusBadGateway
	}
}
