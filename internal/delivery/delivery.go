// Package delivery defines the contract every transport (HTTP, worker, ...) fulfils.
package delivery

import "context"

// Delivery is a long-running transport that serves until its context is
// cancelled or the fx lifecycle stops it.
type Delivery interface {
	Serve(ctx context.Context) error
}
