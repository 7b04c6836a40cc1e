// Package delivery defines the contract every inbound transport implements.
package delivery

import "context"

// Delivery is a transport started by cmd/ondeta once the fx graph is built.
// Serve blocks until the transport stops; shutdown goes through fx.Lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
