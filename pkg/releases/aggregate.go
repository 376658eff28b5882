package releases

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/matzehuels/ghcount/pkg/observability"
)

// Source is the subset of the API gateway the aggregator needs.
type Source interface {
	// CurrentUser returns the login of the authenticated identity.
	CurrentUser(ctx context.Context) (string, error)

	// ReposByUser returns repository names (without owner) in listing order.
	ReposByUser(ctx context.Context, user string) ([]string, error)

	// ReleasesByRepo returns the flattened assets of every release of repo.
	ReleasesByRepo(ctx context.Context, user, repo string) ([]Asset, error)
}

// Aggregator collects releases across all repositories of a user.
type Aggregator struct {
	src  Source
	jobs int
}

// Option configures an Aggregator.
type Option func(*Aggregator)

// WithJobs bounds how many repositories are fetched at once.
// Values below 1 are treated as 1 (strictly sequential).
func WithJobs(n int) Option {
	return func(a *Aggregator) { a.jobs = max(n, 1) }
}

// NewAggregator creates an Aggregator reading from src.
func NewAggregator(src Source, opts ...Option) *Aggregator {
	a := &Aggregator{src: src, jobs: 1}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// ByUser returns the releases of every repository of user that has at least
// one asset, in the platform's listing order. An empty user means the
// authenticated user.
//
// The first error aborts the whole operation; no partial result is
// returned. With more than one job, in-flight fetches are cancelled and
// fetches not yet started are skipped.
func (a *Aggregator) ByUser(ctx context.Context, user string) (result UserReleases, err error) {
	hooks := observability.Aggregate()
	start := time.Now()
	defer func() {
		hooks.OnAggregateComplete(ctx, user, len(result), time.Since(start), err)
	}()

	if user == "" {
		if user, err = a.src.CurrentUser(ctx); err != nil {
			return nil, err
		}
	}

	repos, err := a.src.ReposByUser(ctx, user)
	if err != nil {
		return nil, err
	}
	hooks.OnReposListed(ctx, user, len(repos))

	fetched := make([]RepoReleases, len(repos))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(a.jobs)

	for i, repo := range repos {
		i, repo := i, repo
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if gctx.Err() != nil {
				return nil
			}
			t := time.Now()
			assets, err := a.src.ReleasesByRepo(gctx, user, repo)
			hooks.OnRepoFetched(gctx, repo, len(assets), time.Since(t), err)
			if err != nil {
				return err
			}
			fetched[i] = RepoReleases{Repo: repo, Assets: assets}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	// Skipped fetches return nil, so a cancelled parent must be checked here.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for _, r := range fetched {
		if len(r.Assets) > 0 {
			result = append(result, r)
		}
	}
	return result, nil
}
