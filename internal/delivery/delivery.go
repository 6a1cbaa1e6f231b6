// Package delivery defines the contract every transport (HTTP today) has to
// satisfy so the application can start and stop it uniformly.
package delivery

import "context"

// Delivery is a serving surface managed by the application lifecycle.
type Delivery interface {
	// Serve blocks, accepting work until the server is shut down.
	Serve(ctx context.Context) error
}
