package releases

import (
	"context"
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/matzehuels/ghcount/pkg/observability"
)

var (
	caffeineAssets = []Asset{
		{"caffeine-reloaded_0.0.3_all.deb", 2},
		{"caffeine-reloaded_0.0.2_all.deb", 1},
		{"caffeine-reloaded_0.0.1_all.deb", 0},
	}
	debtoolAssets = []Asset{
		{"debtool_0.2.5_all.deb", 62},
		{"debtool_0.2.4_all.deb", 5},
		{"debtool_0.2.1_all.deb", 0},
		{"debtool_0.2.2_all.deb", 0},
		{"debtool_0.2.3_all.deb", 2},
	}
)

// fakeSource serves canned data and records which repositories were fetched.
type fakeSource struct {
	login   string
	userErr error
	repos   []string
	repoErr error
	assets  map[string][]Asset
	errs    map[string]error
	delay   map[string]time.Duration

	mu      sync.Mutex
	fetched []string
}

func (f *fakeSource) CurrentUser(context.Context) (string, error) {
	return f.login, f.userErr
}

func (f *fakeSource) ReposByUser(_ context.Context, user string) ([]string, error) {
	return f.repos, f.repoErr
}

func (f *fakeSource) ReleasesByRepo(ctx context.Context, _, repo string) ([]Asset, error) {
	f.mu.Lock()
	f.fetched = append(f.fetched, repo)
	f.mu.Unlock()

	if d := f.delay[repo]; d > 0 {
		select {
		case <-time.After(d):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err := f.errs[repo]; err != nil {
		return nil, err
	}
	return f.assets[repo], nil
}

func brbsixSource() *fakeSource {
	return &fakeSource{
		login: "brbsix",
		repos: []string{"bart", "bash-config", "caffeine-reloaded", "craigslist-rental-market", "debtool", "deepdiff"},
		assets: map[string][]Asset{
			"caffeine-reloaded": caffeineAssets,
			"debtool":           debtoolAssets,
		},
	}
}

func TestByUserFiltersEmptyAndKeepsOrder(t *testing.T) {
	src := brbsixSource()

	got, err := NewAggregator(src).ByUser(context.Background(), "brbsix")
	if err != nil {
		t.Fatalf("ByUser() error: %v", err)
	}

	want := UserReleases{
		{Repo: "caffeine-reloaded", Assets: caffeineAssets},
		{Repo: "debtool", Assets: debtoolAssets},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ByUser() = %+v, want %+v", got, want)
	}
	if len(src.fetched) != len(src.repos) {
		t.Errorf("fetched %d repos, want %d", len(src.fetched), len(src.repos))
	}
}

func TestByUserSequentialOrder(t *testing.T) {
	src := brbsixSource()

	if _, err := NewAggregator(src).ByUser(context.Background(), "brbsix"); err != nil {
		t.Fatalf("ByUser() error: %v", err)
	}
	if !reflect.DeepEqual(src.fetched, src.repos) {
		t.Errorf("fetch order = %v, want %v", src.fetched, src.repos)
	}
}

func TestByUserResolvesCurrentUser(t *testing.T) {
	src := brbsixSource()

	got, err := NewAggregator(src).ByUser(context.Background(), "")
	if err != nil {
		t.Fatalf("ByUser() error: %v", err)
	}
	if len(got) != 2 {
		t.Errorf("got %d repos, want 2", len(got))
	}
}

func TestByUserCurrentUserError(t *testing.T) {
	src := brbsixSource()
	src.userErr = errors.New("Requires authentication")

	_, err := NewAggregator(src).ByUser(context.Background(), "")
	if !errors.Is(err, src.userErr) {
		t.Errorf("ByUser() error = %v, want %v", err, src.userErr)
	}
	if len(src.fetched) != 0 {
		t.Errorf("fetched %v after CurrentUser failed", src.fetched)
	}
}

func TestByUserReposError(t *testing.T) {
	src := brbsixSource()
	src.repoErr = errors.New("Not Found")

	got, err := NewAggregator(src).ByUser(context.Background(), "nobody")
	if !errors.Is(err, src.repoErr) {
		t.Errorf("ByUser() error = %v, want %v", err, src.repoErr)
	}
	if got != nil {
		t.Errorf("ByUser() = %v, want nil on error", got)
	}
}

func TestByUserFailFast(t *testing.T) {
	src := brbsixSource()
	boom := errors.New("Bad credentials")
	src.errs = map[string]error{"caffeine-reloaded": boom}

	got, err := NewAggregator(src).ByUser(context.Background(), "brbsix")
	if !errors.Is(err, boom) {
		t.Fatalf("ByUser() error = %v, want %v", err, boom)
	}
	if got != nil {
		t.Errorf("ByUser() = %v, want no partial result", got)
	}

	want := []string{"bart", "bash-config", "caffeine-reloaded"}
	if !reflect.DeepEqual(src.fetched, want) {
		t.Errorf("fetched = %v, want %v (nothing after the failure)", src.fetched, want)
	}
}

func TestByUserParallelKeepsOrder(t *testing.T) {
	src := brbsixSource()
	src.delay = map[string]time.Duration{
		"caffeine-reloaded": 40 * time.Millisecond,
		"debtool":           1 * time.Millisecond,
	}

	got, err := NewAggregator(src, WithJobs(4)).ByUser(context.Background(), "brbsix")
	if err != nil {
		t.Fatalf("ByUser() error: %v", err)
	}
	if len(got) != 2 || got[0].Repo != "caffeine-reloaded" || got[1].Repo != "debtool" {
		t.Errorf("ByUser() order = %+v, want caffeine-reloaded then debtool", got)
	}
}

func TestByUserParallelError(t *testing.T) {
	src := brbsixSource()
	boom := errors.New("Not Found")
	src.errs = map[string]error{"debtool": boom}
	src.delay = map[string]time.Duration{"deepdiff": time.Second}

	start := time.Now()
	got, err := NewAggregator(src, WithJobs(3)).ByUser(context.Background(), "brbsix")
	if !errors.Is(err, boom) {
		t.Fatalf("ByUser() error = %v, want %v", err, boom)
	}
	if got != nil {
		t.Errorf("ByUser() = %v, want nil", got)
	}
	if time.Since(start) > 500*time.Millisecond {
		t.Error("in-flight fetches were not cancelled after the first error")
	}
}

func TestByUserCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got, err := NewAggregator(brbsixSource()).ByUser(ctx, "brbsix")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("ByUser() error = %v, want context.Canceled", err)
	}
	if got != nil {
		t.Errorf("ByUser() = %v, want nil", got)
	}
}

func TestByUserNoRepos(t *testing.T) {
	got, err := NewAggregator(&fakeSource{}).ByUser(context.Background(), "empty")
	if err != nil {
		t.Fatalf("ByUser() error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("ByUser() = %v, want empty", got)
	}
}

func TestByUserHooks(t *testing.T) {
	rec := &recordingAggregate{}
	observability.SetAggregateHooks(rec)
	defer observability.Reset()

	if _, err := NewAggregator(brbsixSource(), WithJobs(2)).ByUser(context.Background(), "brbsix"); err != nil {
		t.Fatalf("ByUser() error: %v", err)
	}

	rec.mu.Lock()
	defer rec.mu.Unlock()
	if rec.listed != 6 {
		t.Errorf("OnReposListed count = %d, want 6", rec.listed)
	}
	if rec.fetched != 6 {
		t.Errorf("OnRepoFetched calls = %d, want 6", rec.fetched)
	}
	if rec.completed != 2 {
		t.Errorf("OnAggregateComplete repos = %d, want 2", rec.completed)
	}
}

func TestWithJobs(t *testing.T) {
	tests := []struct {
		in, want int
	}{
		{-1, 1},
		{0, 1},
		{1, 1},
		{8, 8},
	}
	for _, tt := range tests {
		if got := NewAggregator(nil, WithJobs(tt.in)).jobs; got != tt.want {
			t.Errorf("WithJobs(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

type recordingAggregate struct {
	observability.NoopAggregateHooks
	mu        sync.Mutex
	listed    int
	fetched   int
	completed int
}

func (r *recordingAggregate) OnReposListed(_ context.Context, _ string, count int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.listed = count
}

func (r *recordingAggregate) OnRepoFetched(context.Context, string, int, time.Duration, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.fetched++
}

func (r *recordingAggregate) OnAggregateComplete(_ context.Context, _ string, repos int, _ time.Duration, _ error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.completed = repos
}
