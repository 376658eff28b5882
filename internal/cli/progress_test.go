package cli

import (
	"bytes"
	"context"
	"os"
	"testing"
	"time"

	"github.com/matzehuels/ghcount/pkg/observability"
)

type countingHooks struct {
	observability.NoopAggregateHooks
	listed, fetched, completed int
}

func (h *countingHooks) OnReposListed(context.Context, string, int) { h.listed++ }

func (h *countingHooks) OnRepoFetched(context.Context, string, int, time.Duration, error) {
	h.fetched++
}

func (h *countingHooks) OnAggregateComplete(context.Context, string, int, time.Duration, error) {
	h.completed++
}

func TestProgressBar(t *testing.T) {
	var buf bytes.Buffer
	next := &countingHooks{}
	p := newProgressBar(&buf, next)
	ctx := context.Background()

	p.OnReposListed(ctx, "brbsix", 3)
	for _, repo := range []string{"bart", "caffeine-reloaded", "debtool"} {
		p.OnRepoFetched(ctx, repo, 1, time.Millisecond, nil)
	}
	p.OnAggregateComplete(ctx, "brbsix", 2, time.Second, nil)

	if buf.Len() == 0 {
		t.Error("progress bar should write to its writer")
	}
	if next.listed != 1 || next.fetched != 3 || next.completed != 1 {
		t.Errorf("forwarded events = %d/%d/%d, want 1/3/1", next.listed, next.fetched, next.completed)
	}
	if p.bar != nil {
		t.Error("bar should be released after completion")
	}
}

func TestProgressBarNoRepos(t *testing.T) {
	var buf bytes.Buffer
	p := newProgressBar(&buf, nil)
	ctx := context.Background()

	p.OnReposListed(ctx, "nobody", 0)
	p.OnAggregateComplete(ctx, "nobody", 0, time.Millisecond, nil)

	if buf.Len() != 0 {
		t.Errorf("no bar expected without repositories, got %q", buf.String())
	}
}

func TestIsTerminal(t *testing.T) {
	if isTerminal(&bytes.Buffer{}) {
		t.Error("a buffer is not a terminal")
	}

	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if isTerminal(f) {
		t.Error("a regular file is not a terminal")
	}
}
