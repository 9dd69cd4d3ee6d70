// Package lifecycle coordinates subsystem startup and shutdown. Subsystems
// register startup hooks that run before the service reports ready, and
// shutdown hooks that unblock when the coordinator's context is cancelled.
package lifecycle

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"
)

// Coordinator tracks startup and shutdown hooks for all subsystems.
type Coordinator struct {
	ctx    context.Context
	cancel context.CancelFunc

	mu       sync.Mutex
	startup  []func()
	shutdown sync.WaitGroup
	ready    atomic.Bool
}

// New creates a Coordinator with a fresh cancellation context.
func New() *Coordinator {
	ctx, cancel := context.WithCancel(context.Background())
	return &Coordinator{
		ctx:    ctx,
		cancel: cancel,
	}
}

// Context returns the coordinator's context. It is cancelled when Shutdown begins.
func (c *Coordinator) Context() context.Context {
	return c.ctx
}

// Ready reports whether all startup hooks have completed.
func (c *Coordinator) Ready() bool {
	return c.ready.Load()
}

// OnStartup registers a hook to run during WaitForStartup.
func (c *Coordinator) OnStartup(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.startup = append(c.startup, fn)
}

// WaitForStartup runs all registered startup hooks in registration order
// and marks the coordinator ready.
func (c *Coordinator) WaitForStartup() {
	c.mu.Lock()
	hooks := c.startup
	c.startup = nil
	c.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}

	c.ready.Store(true)
}

// OnShutdown launches a hook that typically blocks on Context().Done()
// before performing cleanup. Shutdown waits for all such hooks to return.
func (c *Coordinator) OnShutdown(fn func()) {
	c.shutdown.Add(1)
	go func() {
		defer c.shutdown.Done()
		fn()
	}()
}

// Shutdown cancels the coordinator context and waits for all shutdown hooks
// to finish, up to the provided timeout.
func (c *Coordinator) Shutdown(timeout time.Duration) error {
	c.cancel()

	done := make(chan struct{})
	go func() {
		c.shutdown.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-time.After(timeout):
		return fmt.Errorf("shutdown timed out after %s", timeout)
	}
}

// ReadinessChecker exposes readiness without granting shutdown control.
type ReadinessChecker interface {
	Ready() bool
}
