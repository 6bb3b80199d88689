// SPDX-License-Identifier: MPL-2.0

package pipeline

import (
	"context"
	"sync/atomic"
)

// Interrupt is the shared cancellation flag polled between pipeline items.
// It is written once, by the host environment (typically a signal handler),
// and read by every stage. A nil *Interrupt never triggers, so callers
// without a cancellation source can pass nil.
type Interrupt struct {
	flag atomic.Bool
}

// NewInterrupt returns an unset interrupt flag.
func NewInterrupt() *Interrupt {
	return &Interrupt{}
}

// Set marks the flag. Safe to call from any goroutine; later calls are
// no-ops.
func (i *Interrupt) Set() {
	i.flag.Store(true)
}

// Triggered reports whether the flag has been set.
func (i *Interrupt) Triggered() bool {
	if i == nil {
		return false
	}
	return i.flag.Load()
}

// WatchContext sets the flag when ctx is canceled. It is how the CLI
// bridges the signal-driven context it receives into the polled flag the
// pipeline uses.
func (i *Interrupt) WatchContext(ctx context.Context) {
	if ctx == nil {
		return
	}
	go func() {
		<-ctx.Done()
		i.Set()
	}()
}
