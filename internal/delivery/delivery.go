// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a transport-facing server (HTTP today) started by main and
// stopped through the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
