package api

import "fmt"

// NetworkError reports a transport failure or a non-success HTTP status.
type NetworkError struct {
	Op         string
	StatusCode int    // 0 when the request never completed
	Body       string // truncated response body, for diagnostics
	Err        error  // underlying transport error, may be nil
}

func (e *NetworkError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	if e.Body != "" {
		return fmt.Sprintf("%s: unexpected status %d: %s", e.Op, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("%s: unexpected status %d", e.Op, e.StatusCode)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ShapeError reports a response that decoded but did not have the
// structure the client expects. This is a fatal contract violation,
// never silently papered over.
type ShapeError struct {
	Op     string
	Detail string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: unexpected response shape: %s", e.Op, e.Detail)
}

// NotFoundError reports an entity id with no server-side match.
type NotFoundError struct {
	Resource string
	ID       int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}
