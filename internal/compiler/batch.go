package compiler

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// TranslateAll compiles every source independently and concurrently,
// each with its own root IR graph and builtin environment (no shared
// mutable state crosses goroutines — see internal/builtin). The core
// pipeline itself remains single-threaded per compilation; concurrency
// here is strictly across whole compilations, for batch workloads like a
// test harness compiling many fixtures at once.
//
// One goroutine is started per source and every one runs to completion;
// results are returned in the order of sources. Per-source diagnostics
// are reported through each Result's Errored flag, so the returned error
// is always nil. Translate does not observe ctx, and a panic inside one
// compilation is not recovered.
func TranslateAll(ctx context.Context, sources []string, opts Options) ([]Result, error) {
	results := make([]Result, len(sources))
	g, _ := errgroup.WithContext(ctx)
	for i, src := range sources {
		i, src := i, src
		g.Go(func() error {
			results[i] = Translate(src, opts)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
