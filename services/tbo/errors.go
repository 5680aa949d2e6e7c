package tbo

import "fmt"

// UpstreamError reports a failed TBO API call.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("TBO API error: %d - %s", e.Status, e.Message)
}

// CredentialsError indicates the TBO username or password is not configured.
type CredentialsError struct{}

func (e *CredentialsError) Error() string {
	return "TBO credentials not configured"
}
