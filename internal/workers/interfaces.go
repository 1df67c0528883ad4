// Package workers runs the background loops of the offline core: the
// periodic sync job and the reconnect watcher.
package workers

import "context"

// Worker is a background loop with an explicit lifecycle.
//
// Run starts the loop and returns immediately; the loop ends when ctx is
// cancelled or Stop is called. Stop blocks until the loop has exited and
// is safe to call more than once.
type Worker interface {
	Run(ctx context.Context)
	Stop()
}
