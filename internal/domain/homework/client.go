// internal/domain/homework/client.go
package homework

import "context"

// StatusProvider defines the single operation the poller needs from the
// status-query API. This decouples the application loop from the concrete
// HTTP client.
type StatusProvider interface {
	// HomeworkStatuses requests all homework status records changed since
	// fromDate (a Unix timestamp) and returns the parsed JSON response.
	HomeworkStatuses(ctx context.Context, fromDate int64) (any, error)
}
