// Package delivery defines the contract for the transports exposed by the application.
package delivery

import "context"

// Delivery is a transport that serves requests until it is stopped through the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
