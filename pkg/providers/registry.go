package providers

import (
	"context"
	"os"
	"sync"
)

// Registry tracks the in-flight generation request so that an operator
// signal cancels it and stops the spinner instead of leaving the request
// hanging.
type Registry struct {
	mu          sync.Mutex
	cancel      context.CancelFunc
	stopSpinner func()
	interrupted bool
}

func (r *Registry) Register(cancel context.CancelFunc, stopSpinner func()) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cancel = cancel
	r.stopSpinner = stopSpinner
	r.interrupted = false
}

func (r *Registry) Unregister() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cancel = nil
	r.stopSpinner = nil
}

func (r *Registry) WasInterrupted() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.interrupted
}

// ForwardSignal cancels the registered request, if any. It reports whether
// a request was in flight; callers should fall back to default signal
// behavior when it returns false.
func (r *Registry) ForwardSignal(sig os.Signal) bool {
	r.mu.Lock()
	cancel := r.cancel
	if cancel != nil && sig == os.Interrupt {
		r.interrupted = true
	}
	r.mu.Unlock()
	if cancel == nil {
		return false
	}
	cancel()
	return true
}

func (r *Registry) StopSpinnerIfSet() {
	r.mu.Lock()
	stop := r.stopSpinner
	r.stopSpinner = nil
	r.mu.Unlock()
	if stop != nil {
		stop()
	}
}
