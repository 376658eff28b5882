package github

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v68/github"

	"github.com/matzehuels/ghcount/pkg/config"
	"github.com/matzehuels/ghcount/pkg/errors"
	"github.com/matzehuels/ghcount/pkg/integrations"
	"github.com/matzehuels/ghcount/pkg/releases"
)

// DefaultBaseURL is the public GitHub REST API origin.
const DefaultBaseURL = config.DefaultAPIURL

// Client is the API gateway: one GET per operation, every response
// classified by [Decode] before any field is read.
type Client struct {
	http    *integrations.Client
	baseURL string
}

// Option configures a Client.
type Option func(*clientOptions)

type clientOptions struct {
	baseURL string
	http    []integrations.Option
}

// WithBaseURL points the client at a different API origin (GitHub
// Enterprise, a test server).
func WithBaseURL(u string) Option {
	return func(o *clientOptions) { o.baseURL = strings.TrimRight(u, "/") }
}

// WithHTTPOptions passes options through to the underlying HTTP adapter.
func WithHTTPOptions(opts ...integrations.Option) Option {
	return func(o *clientOptions) { o.http = append(o.http, opts...) }
}

// NewClient creates a gateway authenticated with cred. An unset credential
// yields unauthenticated requests (lower rate limits, no /user).
func NewClient(cred config.Credential, opts ...Option) *Client {
	o := clientOptions{baseURL: DefaultBaseURL}
	for _, opt := range opts {
		opt(&o)
	}
	return &Client{
		http:    integrations.NewClient(AuthHeaders(cred), o.http...),
		baseURL: o.baseURL,
	}
}

// AuthHeaders returns the authentication header mapping for cred: empty
// without a credential, otherwise exactly one Authorization entry.
func AuthHeaders(cred config.Credential) map[string]string {
	if !cred.IsSet() {
		return map[string]string{}
	}
	return map[string]string{"Authorization": "token " + string(cred)}
}

// ReposByUser returns the names (without owner prefix) of user's
// repositories in listing order.
func (c *Client) ReposByUser(ctx context.Context, user string) ([]string, error) {
	var repos []*gh.Repository
	if err := c.get(ctx, "/users/"+url.PathEscape(user)+"/repos", &repos); err != nil {
		return nil, err
	}

	names := make([]string, 0, len(repos))
	for _, r := range repos {
		_, name, ok := strings.Cut(r.GetFullName(), "/")
		if !ok {
			name = r.GetName()
		}
		names = append(names, name)
	}
	return names, nil
}

// ReleasesByRepo returns the assets of every release of user/repo,
// flattened in release order then asset order. A repository without
// releases yields an empty slice.
func (c *Client) ReleasesByRepo(ctx context.Context, user, repo string) ([]releases.Asset, error) {
	var rels []*gh.RepositoryRelease
	path := "/repos/" + url.PathEscape(user) + "/" + url.PathEscape(repo) + "/releases"
	if err := c.get(ctx, path, &rels); err != nil {
		return nil, err
	}

	assets := make([]releases.Asset, 0)
	for _, rel := range rels {
		assets = appendAssets(assets, rel)
	}
	return assets, nil
}

// ReleasesByTag returns the assets of the single release tagged tag.
// A release without binary assets yields an empty slice.
func (c *Client) ReleasesByTag(ctx context.Context, user, repo, tag string) ([]releases.Asset, error) {
	var rel gh.RepositoryRelease
	path := "/repos/" + url.PathEscape(user) + "/" + url.PathEscape(repo) + "/releases/tags/" + url.PathEscape(tag)
	if err := c.get(ctx, path, &rel); err != nil {
		return nil, err
	}
	return appendAssets(make([]releases.Asset, 0), &rel), nil
}

// CurrentUser returns the login of the authenticated identity. Without a
// credential GitHub answers with a "Requires authentication" envelope.
func (c *Client) CurrentUser(ctx context.Context) (string, error) {
	var user gh.User
	if err := c.get(ctx, "/user", &user); err != nil {
		return "", err
	}
	if user.GetLogin() == "" {
		return "", errors.New(errors.ErrCodeDecode, "GET /user: response has no login")
	}
	return user.GetLogin(), nil
}

func appendAssets(dst []releases.Asset, rel *gh.RepositoryRelease) []releases.Asset {
	for _, a := range rel.Assets {
		dst = append(dst, releases.Asset{
			Name:          a.GetName(),
			DownloadCount: a.GetDownloadCount(),
		})
	}
	return dst
}

// get fetches path and decodes a Success payload into v. A platform error
// is returned as *PlatformError.
func (c *Client) get(ctx context.Context, path string, v any) error {
	resp, err := c.http.Get(ctx, c.baseURL+path)
	if err != nil {
		return err
	}

	res, err := Decode(resp.Body)
	if err != nil {
		return errors.New(errors.ErrCodeDecode, "GET %s: unexpected response (status %d): %s",
			path, resp.StatusCode, errors.UserMessage(err))
	}

	switch r := res.(type) {
	case *PlatformError:
		r.StatusCode = resp.StatusCode
		return r
	case Success:
		if err := json.Unmarshal(r.Payload, v); err != nil {
			return errors.Wrap(errors.ErrCodeDecode, err, "GET %s: unexpected payload shape", path)
		}
		return nil
	default:
		return errors.New(errors.ErrCodeInternal, "GET %s: unhandled result %T", path, res)
	}
}

var _ releases.Source = (*Client)(nil)
