package runner

import (
	"context"

	"github.com/aretw0/stepwise/pkg/ports"
	"golang.org/x/sync/errgroup"
)

// Result is the end state of one sequence in a batch.
type Result struct {
	Index   int
	RunID   string
	Outcome ports.Outcome
	Err     error
}

// RunBatch drives seqs concurrently, at most limit at a time (limit <= 0 means
// no limit). handlerFor supplies the IOHandler of the i-th sequence; a nil
// handlerFor gives every sequence an empty ScriptedHandler, so suspensions end
// that sequence with ErrInputClosed.
//
// Sequence failures are reported per Result. The returned error is non-nil
// only when ctx ends before every sequence was started.
func RunBatch(ctx context.Context, seqs []ports.Sequence, handlerFor func(i int) IOHandler, limit int, opts ...Option) ([]Result, error) {
	if handlerFor == nil {
		handlerFor = func(int) IOHandler { return NewScriptedHandler() }
	}

	results := make([]Result, len(seqs))
	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, seq := range seqs {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r := NewRunner(append(opts, WithHeadless(true), WithInputHandler(handlerFor(i)))...)
			out, err := r.Run(gctx, seq)
			results[i] = Result{Index: i, RunID: seq.RunID(), Outcome: out, Err: err}
			return nil
		})
	}
	return results, g.Wait()
}
