// Package delivery defines the contract every transport server fulfills.
package delivery

import "context"

// Delivery is a server that accepts requests until its context ends. Both the
// public HTTP API and the push worker implement it and register under the
// "deliveries" Fx group.
type Delivery interface {
	Serve(ctx context.Context) error
}
