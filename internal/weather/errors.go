package weather

import "fmt"

// Kind classifies a failed lookup
type Kind int

const (
	// KindStatus means the API answered with a non-2xx status
	KindStatus Kind = iota + 1
	// KindTransport means the request never got a response
	KindTransport
	// KindPayload means the response body was unusable
	KindPayload
)

func (k Kind) String() string {
	switch k {
	case KindStatus:
		return "status"
	case KindTransport:
		return "transport"
	case KindPayload:
		return "payload"
	default:
		return "unknown"
	}
}

// LookupError describes why a weather lookup failed
type LookupError struct {
	Kind       Kind
	StatusCode int
	Message    string
}

func (e *LookupError) Error() string {
	if e.Kind == KindStatus {
		return fmt.Sprintf("weather lookup: status %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("weather lookup: %s: %s", e.Kind, e.Message)
}
