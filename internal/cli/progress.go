package cli

import (
	"context"
	"io"
	"os"
	"sync"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/mattn/go-isatty"

	"github.com/matzehuels/ghcount/pkg/observability"
)

// progressBar shows per-repository progress of a user aggregation on a
// terminal. Events are forwarded to next.
type progressBar struct {
	next observability.AggregateHooks
	w    io.Writer

	mu  sync.Mutex
	bar *pb.ProgressBar
}

func newProgressBar(w io.Writer, next observability.AggregateHooks) *progressBar {
	if next == nil {
		next = observability.NoopAggregateHooks{}
	}
	return &progressBar{next: next, w: w}
}

func (p *progressBar) OnReposListed(ctx context.Context, user string, count int) {
	p.next.OnReposListed(ctx, user, count)

	p.mu.Lock()
	defer p.mu.Unlock()
	if count == 0 {
		return
	}
	p.bar = pb.New(count).SetWriter(p.w).Set("prefix", user).Start()
}

func (p *progressBar) OnRepoFetched(ctx context.Context, repo string, assets int, duration time.Duration, err error) {
	p.next.OnRepoFetched(ctx, repo, assets, duration, err)

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.bar != nil {
		p.bar.Increment()
	}
}

func (p *progressBar) OnAggregateComplete(ctx context.Context, user string, repos int, duration time.Duration, err error) {
	p.mu.Lock()
	if p.bar != nil {
		p.bar.Finish()
		p.bar = nil
	}
	p.mu.Unlock()

	p.next.OnAggregateComplete(ctx, user, repos, duration, err)
}

// isTerminal reports whether w is an interactive terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
