package convert

import "sync"

// Pool runs conversion tasks across a fixed number of worker goroutines.
//
// OnStart and OnResult are optional observation hooks for progress
// reporting. OnStart may be called concurrently from any worker; OnResult
// is always called from a single collector goroutine, in the order results
// are received, with the ID of the worker that produced the result.
type Pool struct {
	Workers  int
	OnStart  func(workerID int, path string)
	OnResult func(workerID int, result ConversionResult)
}

// workerResult carries a result through the collector together with the
// worker that produced it, so observers can attribute completions.
type workerResult struct {
	workerID int
	result   ConversionResult
}

// Run executes every task and returns all results. The job queue is
// pre-loaded and closed before the workers drain it, so each worker exits
// only once the queue is empty. Run blocks until all workers have exited;
// the returned slice is complete and needs no further synchronization.
// Results carry no ordering guarantee relative to task order.
func (p *Pool) Run(tasks []ConversionTask) []ConversionResult {
	workers := p.Workers
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan ConversionTask, len(tasks))
	results := make(chan workerResult, len(tasks))
	var wg sync.WaitGroup

	// Start workers
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()
			for task := range jobs {
				if p.OnStart != nil {
					p.OnStart(workerID, task.SourcePath)
				}
				results <- workerResult{workerID: workerID, result: Execute(task)}
			}
		}(i)
	}

	// Send jobs
	for _, task := range tasks {
		jobs <- task
	}
	close(jobs)

	// Close the results channel once every worker has exited
	go func() {
		wg.Wait()
		close(results)
	}()

	collected := make([]ConversionResult, 0, len(tasks))
	for r := range results {
		if p.OnResult != nil {
			p.OnResult(r.workerID, r.result)
		}
		collected = append(collected, r.result)
	}

	return collected
}
