package server

import "context"

// Server defines the lifecycle contract of the process runner.
//
// RunServer blocks until ctx is cancelled, a stop signal arrives or the
// listener fails. Shutdown stops serving and releases resources; it is safe
// to call more than once.
type Server interface {
	RunServer(ctx context.Context) error
	Shutdown(ctx context.Context) error
}
