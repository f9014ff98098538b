// Package ensemble: the generic batch runner.

package ensemble

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Result is the per-unit outcome of a batch: a value or that unit's
// error, never both meaningful at once.
type Result[T any] struct {
	Value T
	Err   error
}

// Option mutates batch options.
type Option func(*options)

type options struct {
	workers  int
	progress func(float64)
}

// WithWorkers bounds the worker pool. Values below 1 fall back to the
// default (GOMAXPROCS).
func WithWorkers(n int) Option {
	return func(o *options) {
		o.workers = n
	}
}

// WithProgress installs a completion-fraction callback. It is invoked at
// least once per completed unit and exactly once with 1.0 after the
// batch; it may be called concurrently from several workers.
func WithProgress(cb func(fraction float64)) Option {
	return func(o *options) {
		o.progress = cb
	}
}

func gatherOptions(opts []Option) options {
	o := options{workers: runtime.GOMAXPROCS(0)}
	for _, fn := range opts {
		fn(&o)
	}
	if o.workers < 1 {
		o.workers = runtime.GOMAXPROCS(0)
	}

	return o
}

// Map runs unit(i) for every i in [0,n) over the worker pool and
// collects each outcome into slot i of the returned slice. A unit's
// error is recorded in its own Result; the batch always runs to
// completion. unit is called from multiple goroutines and must not share
// mutable state across indices; it must not be nil.
func Map[T any](n int, unit func(i int) (T, error), opts ...Option) []Result[T] {
	if unit == nil {
		panic("ensemble: nil unit function")
	}
	o := gatherOptions(opts)

	results := make([]Result[T], n)
	if n <= 0 {
		if o.progress != nil {
			o.progress(1.0)
		}

		return results
	}

	workers := o.workers
	if workers > n {
		workers = n
	}
	m := newMeter(workers, n, o.progress)

	var next atomic.Int64
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			for {
				i := int(next.Add(1)) - 1
				if i >= n {
					return
				}
				v, err := unit(i)
				results[i] = Result[T]{Value: v, Err: err}
				m.done(id)
			}
		}(w)
	}
	wg.Wait()
	m.finish()

	return results
}
