// Package github is the API gateway for GitHub release download counts.
//
// # Overview
//
// Each operation maps to exactly one REST call against https://api.github.com:
//
//   - [Client.ReposByUser]: GET /users/{user}/repos
//   - [Client.ReleasesByRepo]: GET /repos/{user}/{repo}/releases
//   - [Client.ReleasesByTag]: GET /repos/{user}/{repo}/releases/tags/{tag}
//   - [Client.CurrentUser]: GET /user
//
// Only the first page of each listing is read.
//
// # Errors
//
// GitHub reports failures (bad credentials, not found, missing
// authentication) as a JSON envelope with a "message" field. Every body goes
// through [Decode] once, centrally, which returns either a [Success] or a
// [*PlatformError]. The HTTP status code plays no part in that decision.
// Operations return the *PlatformError as their error, so callers can use
// errors.As to print the platform's message verbatim.
//
// # Authentication
//
// A token is optional. With one, requests carry "Authorization: token
// <value>"; without one, no Authorization header is sent at all and
// [Client.CurrentUser] fails with "Requires authentication".
//
// # Usage
//
//	client := github.NewClient(cfg.Credential)
//	assets, err := client.ReleasesByRepo(ctx, "brbsix", "debtool")
//	var pe *github.PlatformError
//	if errors.As(err, &pe) {
//	    fmt.Fprintln(os.Stderr, "ERROR:", pe.Message)
//	}
package github
