// Package batch drives the digest engine over many files at once.
//
// The engine itself hashes one file per call with no suspension points, so
// cancellation and fan-out both live here: Run hands paths to a bounded set
// of workers, checks the context between files, and hands back one outcome
// per requested path in the order the paths were given.
package batch

import (
	"context"
	"sync"

	"github.com/Swatto86/checksum-check/internal/digest"
)

// Outcome pairs a requested path with either its digest result or the error
// that prevented one. Exactly one of Result and Err is set.
type Outcome struct {
	Path   string
	Result *digest.Result
	Err    error
}

type job struct {
	index int
	path  string
}

// Run feeds every path to digest.Compute, hashing at most workers files at a
// time, and returns one Outcome per path in input order. A failed file never
// stops the others. When ctx is canceled, files already being hashed finish,
// files not yet started carry ctx.Err() as their outcome, and Run reports the
// cancellation so the caller can distinguish an interrupted run.
func Run(ctx context.Context, paths []string, workers int) ([]Outcome, error) {
	outcomes := make([]Outcome, len(paths))
	for i, path := range paths {
		outcomes[i] = Outcome{Path: path}
	}
	if len(paths) == 0 {
		return outcomes, nil
	}

	if workers < 1 {
		workers = 1
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	jobs := make(chan job)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			// Each worker owns the outcome slots of the jobs it takes,
			// so no further synchronization is needed around the slice.
			for j := range jobs {
				if err := ctx.Err(); err != nil {
					outcomes[j.index].Err = err
					continue
				}
				res, err := digest.Compute(j.path)
				outcomes[j.index].Result = res
				outcomes[j.index].Err = err
			}
		}()
	}

	// Workers drain the channel even after cancellation, so this send
	// loop cannot block forever.
	for i, path := range paths {
		jobs <- job{index: i, path: path}
	}
	close(jobs)
	wg.Wait()

	return outcomes, ctx.Err()
}

// FirstError returns the error of the first failed outcome in input order,
// or nil when every file succeeded. The process exit code is derived from it.
func FirstError(outcomes []Outcome) error {
	for _, o := range outcomes {
		if o.Err != nil {
			return o.Err
		}
	}
	return nil
}
