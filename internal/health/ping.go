package health

import "context"

// Pinger is implemented by clients that expose a cheap reachability
// probe. HealthPing must return nil when the backend is reachable.
type Pinger interface {
	HealthPing(ctx context.Context) error
}
