// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 LINE Bot SDK Rust Authors

package pipeline

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Result pairs one document's summary with its error. Exactly one of the
// two is non-nil.
type Result struct {
	Summary *Summary
	Err     error
}

// RunAll processes independent documents concurrently, at most limit at a
// time (limit <= 0 means unbounded). A document's failure never affects
// the others; results preserve input order.
func RunAll(ctx context.Context, docs []Options) []Result {
	return RunAllLimit(ctx, docs, 0)
}

// RunAllLimit is RunAll with a concurrency bound.
func RunAllLimit(ctx context.Context, docs []Options, limit int) []Result {
	results := make([]Result, len(docs))

	var g errgroup.Group
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, opts := range docs {
		i, opts := i, opts
		g.Go(func() error {
			summary, err := Run(ctx, opts)
			results[i] = Result{Summary: summary, Err: err}
			return nil
		})
	}
	g.Wait() //nolint:errcheck // per-document errors land in results

	return results
}
