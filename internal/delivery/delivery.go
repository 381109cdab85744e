// Package delivery defines the contract every transport adapter implements.
package delivery

import "context"

// Delivery is a serving surface (HTTP today, possibly gRPC later) managed by
// the application lifecycle.
type Delivery interface {
	// Serve blocks until the delivery stops or fails.
	Serve(ctx context.Context) error
}
