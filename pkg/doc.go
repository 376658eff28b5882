// Package pkg provides the libraries behind ghcount, a tool that reports
// download counts of GitHub release assets.
//
// # Overview
//
// The pkg directory is organized leaf-first:
//
//  1. [integrations] - HTTP adapter: one GET per call, authentication headers
//  2. [integrations/github] - API gateway: endpoints and error-envelope decoding
//  3. [releases] - Domain types and per-user aggregation
//  4. [render] - Plain-text detail and summary output
//
// Supporting packages:
//
//   - [config] - TOML config file and the API credential
//   - [errors] - Coded errors and argument validation
//   - [observability] - Hooks for debug logging and progress display
//   - [buildinfo] - Version information injected at build time
//
// # Data Flow
//
//	ghcount USER [REPO [TAG]]
//	         ↓
//	    [config] (file + GITHUB_TOKEN)
//	         ↓
//	    [integrations/github] (repos, releases, tag, current user)
//	         ↓
//	    [releases] (filter repositories without assets)
//	         ↓
//	    [render] (columns or totals on stdout)
//
// # Quick Start
//
//	client := github.NewClient(config.Credential(os.Getenv("GITHUB_TOKEN")))
//	all, err := releases.NewAggregator(client).ByUser(ctx, "brbsix")
//	if err != nil {
//	    return err
//	}
//	return render.User(os.Stdout, all, render.Options{Highlight: render.Bold()})
//
// [integrations]: github.com/matzehuels/ghcount/pkg/integrations
// [integrations/github]: github.com/matzehuels/ghcount/pkg/integrations/github
// [releases]: github.com/matzehuels/ghcount/pkg/releases
// [render]: github.com/matzehuels/ghcount/pkg/render
// [config]: github.com/matzehuels/ghcount/pkg/config
// [errors]: github.com/matzehuels/ghcount/pkg/errors
// [observability]: github.com/matzehuels/ghcount/pkg/observability
// [buildinfo]: github.com/matzehuels/ghcount/pkg/buildinfo
package pkg
