// Package process provides a cooperative step-runner abstraction: a
// repeatable `process() -> bool` wrapped so it can be driven to
// completion in isolation or fanned out in parallel, in the
// goroutine+sync.WaitGroup fan-out idiom used for concurrent test
// helpers, generalized here into a first-class type.
package process

import (
	"context"
	"sync"
)

// Step is a single cooperative transition: it does a bounded amount of
// work and reports whether more remains. Layout Tracers and optimiser
// Jobs both satisfy this shape.
type Step func() bool

// Runner drives a Step to completion. Processes from a single Slicer run
// are mutually independent: each Runner owns no shared state.
type Runner struct {
	step Step
}

// New wraps step as a Runner.
func New(step Step) *Runner {
	return &Runner{step: step}
}

// Run drives the step function to completion, checking ctx between steps.
// A step never blocks on I/O, so an external scheduler can cheaply check
// a cancellation flag between calls. ctx may be nil, equivalent to
// context.Background().
func (r *Runner) Run(ctx context.Context) error {
	for r.step() {
		if ctx != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
		}
	}
	return nil
}

// RunAll drives every Runner to completion concurrently and returns the
// first error encountered, if any, after all of them finish. Runners may
// equally well be driven serially, on a thread pool, or on any other
// task runtime — RunAll is simply the convenient parallel case.
func RunAll(ctx context.Context, runners []*Runner) error {
	var wg sync.WaitGroup
	errs := make([]error, len(runners))
	wg.Add(len(runners))
	for i, r := range runners {
		go func(i int, r *Runner) {
			defer wg.Done()
			errs[i] = r.Run(ctx)
		}(i, r)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
