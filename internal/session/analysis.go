package session

import (
	"context"

	"github.com/vbonduro/menuscan/internal/menu"
)

// Analysis is a single-shot future for one menu analysis.
type Analysis struct {
	done   chan struct{}
	result *menu.Result
	err    error
}

// StartAnalysis runs fn in its own goroutine. The context passed to fn keeps
// ctx's values but not its cancellation, so the analysis outlives the request
// that started it.
func StartAnalysis(ctx context.Context, fn func(ctx context.Context) (*menu.Result, error)) *Analysis {
	a := &Analysis{done: make(chan struct{})}
	detached := context.WithoutCancel(ctx)
	go func() {
		defer close(a.done)
		a.result, a.err = fn(detached)
	}()
	return a
}

// Done is closed once the result is available.
func (a *Analysis) Done() <-chan struct{} {
	return a.done
}

// Finished reports whether the result is available without blocking.
func (a *Analysis) Finished() bool {
	select {
	case <-a.done:
		return true
	default:
		return false
	}
}

// Result blocks until the analysis has finished.
func (a *Analysis) Result() (*menu.Result, error) {
	<-a.done
	return a.result, a.err
}
