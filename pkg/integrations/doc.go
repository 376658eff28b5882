// Package integrations provides the HTTP client adapter used by API clients.
//
// [Client] is deliberately thin: one GET per call, a fixed header mapping
// applied verbatim, and the whole body handed back to the caller. It does
// not interpret status codes, retry, paginate, or cache. Platform-specific
// decoding lives in subpackages:
//
//   - [github]: GitHub REST API releases and repositories
//
// Every request emits [observability.HTTP] events so the command layer can
// log traffic at debug level.
//
// [github]: github.com/matzehuels/ghcount/pkg/integrations/github
// [observability.HTTP]: github.com/matzehuels/ghcount/pkg/observability.HTTP
package integrations
