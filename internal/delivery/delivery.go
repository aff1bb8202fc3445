// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a long-running server (HTTP today, workers tomorrow) started by
// the application entrypoint.
type Delivery interface {
	Serve(ctx context.Context) error
}
