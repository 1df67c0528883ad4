package service

import (
	"context"
	"sync"
	"time"
)

// flight is one shared execution and the callers waiting on it.
type flight struct {
	done chan struct{}
	val  any
	err  error

	waiters   int
	abandoned bool
	cancel    context.CancelFunc
}

// flightGroup runs at most one call per key. Callers that arrive while a
// call is running wait for its result. The call runs on a context detached
// from every caller: it stops when its timeout expires or when the last
// waiting caller gives up, never because one of several callers left.
type flightGroup struct {
	timeout time.Duration

	mu      sync.Mutex
	flights map[string]*flight
}

// Do returns the result of the call for key, starting fn if none is
// running. A caller whose ctx ends first gets ctx.Err() right away.
func (g *flightGroup) Do(ctx context.Context, key string, fn func(ctx context.Context) (any, error)) (v any, err error, shared bool) {
	for {
		g.mu.Lock()
		if g.flights == nil {
			g.flights = make(map[string]*flight)
		}
		f, ok := g.flights[key]
		if ok && f.abandoned {
			// let the cancelled call wind down before starting over
			g.mu.Unlock()
			select {
			case <-f.done:
				continue
			case <-ctx.Done():
				return nil, ctx.Err(), false
			}
		}
		if !ok {
			f = g.start(ctx, key, fn)
		}
		f.waiters++
		g.mu.Unlock()

		select {
		case <-f.done:
			return f.val, f.err, ok
		case <-ctx.Done():
			g.leave(f)
			return nil, ctx.Err(), ok
		}
	}
}

// start must run with mu held.
func (g *flightGroup) start(ctx context.Context, key string, fn func(ctx context.Context) (any, error)) *flight {
	base := context.WithoutCancel(ctx)
	var (
		callCtx context.Context
		cancel  context.CancelFunc
	)
	if g.timeout > 0 {
		callCtx, cancel = context.WithTimeout(base, g.timeout)
	} else {
		callCtx, cancel = context.WithCancel(base)
	}

	f := &flight{done: make(chan struct{}), cancel: cancel}
	g.flights[key] = f

	go func() {
		defer cancel()
		f.val, f.err = fn(callCtx)

		g.mu.Lock()
		if g.flights[key] == f {
			delete(g.flights, key)
		}
		g.mu.Unlock()
		close(f.done)
	}()
	return f
}

func (g *flightGroup) leave(f *flight) {
	g.mu.Lock()
	defer g.mu.Unlock()

	f.waiters--
	if f.waiters == 0 {
		select {
		case <-f.done:
		default:
			f.abandoned = true
			f.cancel()
		}
	}
}
