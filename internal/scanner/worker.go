package scanner

import (
	"context"
	"sync"
)

// WorkerConfig holds options for the worker pool.
type WorkerConfig struct {
	Threads int
	Pauser  *Pauser // nil = no pause support

	// OnProbe, if set, is called by the worker after every probe, before the
	// outcome is handed to the consumer.
	OnProbe func(Outcome)
}

// RunWorkerPool fans out work items across a fixed number of workers and
// returns a channel of outcomes in completion order. The channel is closed
// when all items have been processed.
//
// Cancelling ctx stops the producer; workers finish the probe they are in
// and exit without delivering it. Probes run on a context that is not
// cancelled with ctx, so in-flight requests end under their own timeout.
func RunWorkerPool(
	ctx context.Context,
	prober Prober,
	items []WorkItem,
	cfg WorkerConfig,
) <-chan Outcome {
	threads := cfg.Threads
	if threads < 1 {
		threads = 1
	}
	itemsCh := make(chan WorkItem, threads*2)
	resultsCh := make(chan Outcome, threads*2)
	probeCtx := context.WithoutCancel(ctx)

	var wg sync.WaitGroup

	// Producer: feed items into channel.
	go func() {
		defer close(itemsCh)
		for _, item := range items {
			select {
			case itemsCh <- item:
			case <-ctx.Done():
				return
			}
		}
	}()

	// Workers: consume items, produce outcomes.
	for i := 0; i < threads; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range itemsCh {
				if cfg.Pauser != nil {
					if err := cfg.Pauser.Wait(ctx); err != nil {
						return
					}
				}
				if ctx.Err() != nil {
					return
				}

				outcome := prober.Probe(probeCtx, item.URL)
				outcome.Word = item.Word
				if cfg.OnProbe != nil {
					cfg.OnProbe(outcome)
				}

				select {
				case resultsCh <- outcome:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	// Closer: when all workers finish, close the results channel.
	go func() {
		wg.Wait()
		close(resultsCh)
	}()

	return resultsCh
}
