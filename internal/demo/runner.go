package demo

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/rs/zerolog"
)

type Result struct {
	Scenario string
	Output   string
	Err      error
	Elapsed  time.Duration
}

// Run executes scenarios on a pool of workers goroutines. Each scenario owns
// its pipelines, so scenarios never share a stream. Results keep the order of
// scenarios. Scenarios not started before ctx is done report ctx.Err().
func Run(ctx context.Context, log zerolog.Logger, scenarios []Scenario, workers int) ([]Result, error) {
	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	results := make([]Result, len(scenarios))
	var wg sync.WaitGroup
	for i, sc := range scenarios {
		i, sc := i, sc
		results[i].Scenario = sc.Name
		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}
		wg.Add(1)
		task := func() {
			defer wg.Done()
			results[i] = runOne(log, sc)
		}
		if err := pool.Submit(task); err != nil {
			wg.Done()
			results[i].Err = fmt.Errorf("submit: %w", err)
		}
	}
	wg.Wait()
	return results, nil
}

func runOne(log zerolog.Logger, sc Scenario) (res Result) {
	res.Scenario = sc.Name
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			res.Err = fmt.Errorf("panic: %v", r)
		}
		res.Elapsed = time.Since(start)
		event := log.Info()
		if res.Err != nil {
			event = log.Error().Err(res.Err)
		}
		event.Str("scenario", sc.Name).
			Str("output", res.Output).
			Dur("elapsed", res.Elapsed).
			Msg("scenario finished")
	}()

	log.Debug().Str("scenario", sc.Name).Msg("scenario started")
	out, err := sc.Run()
	res.Output = out
	switch {
	case err != nil:
		res.Err = err
	case out != sc.Expect:
		res.Err = fmt.Errorf("got %q, want %q", out, sc.Expect)
	}
	return res
}

// Failed counts the results carrying an error.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			n++
		}
	}
	return n
}
