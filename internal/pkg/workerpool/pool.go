package workerpool

import (
	"context"
	"sync"
)

type Task func(ctx context.Context) error

type Result struct {
	Err error
}

// WorkerPool runs submitted tasks on a fixed number of goroutines.
type WorkerPool struct {
	workers int
	tasks   chan Task
	wg      sync.WaitGroup
}

func New(workers, buffer int) *WorkerPool {
	if workers <= 0 {
		workers = 1
	}
	if buffer < 0 {
		buffer = 0
	}
	return &WorkerPool{
		workers: workers,
		tasks:   make(chan Task, buffer),
	}
}

func (p *WorkerPool) Submit(t Task) {
	if p == nil || t == nil {
		return
	}
	p.tasks <- t
}

// Close signals that no more tasks will be submitted.
func (p *WorkerPool) Close() {
	if p == nil {
		return
	}
	close(p.tasks)
}

// Run starts the workers. The returned channel yields one Result per task
// and is closed once the pool is drained or ctx is done.
func (p *WorkerPool) Run(ctx context.Context) <-chan Result {
	if p == nil {
		out := make(chan Result)
		close(out)
		return out
	}
	out := make(chan Result, p.workers)

	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go func() {
			defer p.wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case t, ok := <-p.tasks:
					if !ok {
						return
					}
					err := t(ctx)
					select {
					case <-ctx.Done():
						return
					case out <- Result{Err: err}:
					}
				}
			}
		}()
	}

	go func() {
		p.wg.Wait()
		close(out)
	}()

	return out
}

// Each runs fn for every index in [0, n) on a pool of the given size and
// returns the per-index errors.
func Each(ctx context.Context, workers, n int, fn func(ctx context.Context, i int) error) []error {
	errs := make([]error, n)
	ran := make([]bool, n)
	p := New(workers, n)
	results := p.Run(ctx)

	for i := 0; i < n; i++ {
		p.Submit(func(ctx context.Context) error {
			ran[i] = true
			errs[i] = fn(ctx, i)
			return errs[i]
		})
	}
	p.Close()

	for range results {
	}
	for i := range errs {
		if !ran[i] {
			errs[i] = ctx.Err()
		}
	}
	return errs
}
