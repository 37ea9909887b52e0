// Package batch drives SetupForRecognition concurrently across an
// independent slice of WordResults belonging to
// different rows of the same page, per SPEC_FULL.md §2's domain-stack
// wiring of golang.org/x/sync/errgroup. Each goroutine touches exactly
// one WordResult, preserving the single-mutator-per-WordResult
// discipline of spec.md §5.
package batch

import (
	"context"

	"github.com/katalvlaran/docseg/structunit"
	"github.com/katalvlaran/docseg/wordres"
	"golang.org/x/sync/errgroup"
)

// Job is one word awaiting SetupForRecognition, paired with its row
// (nil if the row is unknown).
type Job struct {
	Word *structunit.Werd
	Row  *structunit.Row
}

// SetupAll runs SetupForRecognition for every job concurrently, bounded
// by maxParallel in-flight goroutines (0 or negative means unbounded).
// It returns one *wordres.WordResult per job, in job order; a word whose
// setup fails (no blobs, or an outline that cannot be approximated)
// still produces a WordResult, with TessFailed set, rather than aborting
// the whole batch, so the returned error is always nil.
func SetupAll(ctx context.Context, jobs []Job, maxParallel int) ([]*wordres.WordResult, error) {
	results := make([]*wordres.WordResult, len(jobs))
	group, _ := errgroup.WithContext(ctx)
	if maxParallel > 0 {
		group.SetLimit(maxParallel)
	}

	for i, job := range jobs {
		i, job := i, job
		group.Go(func() error {
			wr := wordres.NewWordResult()
			err := wr.SetupForRecognition(job.Word, job.Row)
			results[i] = wr
			if err == nil {
				return nil
			}
			// Any setup error, ErrNoBlobs included, is a per-word
			// recognition-failure condition (spec.md §7): record it on
			// the WordResult and continue the batch.
			wr.TessFailed = true

			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return results, err
	}

	return results, nil
}
