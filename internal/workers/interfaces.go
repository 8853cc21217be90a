// Package workers runs the background jobs of the lifecycle process.
// It defines the Worker interface and a Workers aggregate that starts and
// stops several workers as one.
package workers

import "context"

// Worker is a background job. Run starts it and returns immediately; the job
// keeps running until ctx is cancelled or Stop is called.
//
// Example implementation:
//
//	type MyWorker struct{ cancel context.CancelFunc }
//
//	func (w *MyWorker) Run(ctx context.Context) {
//	    ctx, w.cancel = context.WithCancel(ctx)
//	    go loop(ctx)
//	}
//
//	func (w *MyWorker) Stop() { w.cancel() }
type Worker interface {
	Run(ctx context.Context)
	Stop()
}

// ExpiryChecker logs invitations that expired since the previous call and
// returns how many did.
type ExpiryChecker interface {
	CheckInvitationExpiry(ctx context.Context) int
}
