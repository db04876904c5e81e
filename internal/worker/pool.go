// Package worker provides a parallel color conversion worker pool.
package worker

import (
	"context"
	"slices"
	"sync"
	"time"
)

// Converter turns one input line into its converted form.
type Converter interface {
	Convert(ctx context.Context, input string) (string, error)
}

// Task represents a single conversion.
type Task struct {
	Input string
	Index int // Position in the batch; results are ordered by it
	Line  int // Source line, for error reporting
}

// Result represents the outcome of a conversion task.
type Result struct {
	Err     error
	Task    Task
	Output  string
	Elapsed time.Duration
}

// ProgressFunc is called with every finished result, in completion order.
type ProgressFunc func(r Result, completed, total int)

// Config configures the worker pool.
type Config struct {
	Converter  Converter
	OnProgress ProgressFunc
	Workers    int
}

// Pool manages parallel conversions.
type Pool struct {
	converter  Converter
	onProgress ProgressFunc
	workers    int
}

// New creates a new worker pool.
func New(cfg Config) *Pool {
	workers := cfg.Workers
	if workers <= 0 {
		workers = 1
	}

	return &Pool{
		workers:    workers,
		converter:  cfg.Converter,
		onProgress: cfg.OnProgress,
	}
}

// Run executes all tasks and returns one result per task, ordered by Task.Index.
// Tasks are processed in parallel by the configured number of workers.
// The function blocks until all tasks complete or the context is cancelled;
// tasks not started before cancellation carry ctx.Err().
func (p *Pool) Run(ctx context.Context, tasks []Task) []Result {
	if len(tasks) == 0 {
		return nil
	}

	taskCh := make(chan Task, len(tasks))
	resultCh := make(chan Result, len(tasks))

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p.worker(ctx, taskCh, resultCh)
		}()
	}

	// Feed tasks
	for _, task := range tasks {
		taskCh <- task
	}
	close(taskCh)

	// Collect results in a separate goroutine
	results := make([]Result, 0, len(tasks))
	done := make(chan struct{})

	go func() {
		for result := range resultCh {
			results = append(results, result)

			if p.onProgress != nil {
				p.onProgress(result, len(results), len(tasks))
			}
		}
		close(done)
	}()

	wg.Wait()
	close(resultCh)
	<-done

	slices.SortFunc(results, func(a, b Result) int {
		return a.Task.Index - b.Task.Index
	})
	return results
}

// worker processes tasks from the task channel and sends results to the result channel.
func (p *Pool) worker(ctx context.Context, tasks <-chan Task, results chan<- Result) {
	for task := range tasks {
		if err := ctx.Err(); err != nil {
			results <- Result{Task: task, Err: err}
			continue
		}

		start := time.Now()
		output, err := p.converter.Convert(ctx, task.Input)

		results <- Result{
			Task:    task,
			Output:  output,
			Err:     err,
			Elapsed: time.Since(start),
		}
	}
}

// Failed returns the results that carry an error.
func Failed(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}
