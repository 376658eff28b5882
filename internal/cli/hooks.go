package cli

import (
	"context"
	"time"
)

// logHooks writes library events to the debug log of the logger carried by
// the request context.
type logHooks struct{}

func (logHooks) OnRequest(ctx context.Context, method, host, path string) {
	loggerFromContext(ctx).Debug("request", "method", method, "host", host, "path", path)
}

func (logHooks) OnResponse(ctx context.Context, method, host, path string, statusCode int, duration time.Duration) {
	loggerFromContext(ctx).Debug("response", "path", path, "status", statusCode, "took", duration.Round(time.Millisecond))
}

func (logHooks) OnError(ctx context.Context, method, host, path string, err error) {
	loggerFromContext(ctx).Debug("request failed", "path", path, "err", err)
}

func (logHooks) OnReposListed(ctx context.Context, user string, count int) {
	loggerFromContext(ctx).Debug("listed repositories", "user", user, "count", count)
}

func (logHooks) OnRepoFetched(ctx context.Context, repo string, assets int, duration time.Duration, err error) {
	l := loggerFromContext(ctx)
	if err != nil {
		l.Debug("fetch failed", "repo", repo, "err", err)
		return
	}
	l.Debug("fetched releases", "repo", repo, "assets", assets, "took", duration.Round(time.Millisecond))
}

func (logHooks) OnAggregateComplete(ctx context.Context, user string, repos int, duration time.Duration, err error) {
	loggerFromContext(ctx).Debug("aggregation finished", "user", user, "repos", repos, "took", duration.Round(time.Millisecond), "ok", err == nil)
}
