// Package delivery defines the contract every transport server satisfies.
package delivery

import "context"

// Delivery is a long-running server started from the fx invoke function.
type Delivery interface {
	// Serve blocks until the server stops.
	Serve(ctx context.Context) error
}
