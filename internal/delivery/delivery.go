// Package delivery defines the contract every transport front end of the
// service implements, so the composition root can start them uniformly.
package delivery

import "context"

// Delivery is a running transport surface, such as the HTTP server.
type Delivery interface {
	// Serve blocks until the transport stops or fails.
	Serve(ctx context.Context) error
}
