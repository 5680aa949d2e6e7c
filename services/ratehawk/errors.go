package ratehawk

import "fmt"

// UpstreamError reports a failed Ratehawk API call.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("ratehawk API error: %d - %s", e.Status, e.Message)
}
