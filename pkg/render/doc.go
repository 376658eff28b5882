// Package render formats release download counts as plain text.
//
// # Modes
//
// Detail mode prints one line per asset: the download count left-justified
// in a column, then the asset name. The column is as wide as the largest
// count in the whole dataset plus two spaces of padding, so every line of
// one invocation lines up:
//
//	62   debtool_0.2.5_all.deb
//	5    debtool_0.2.4_all.deb
//
// Summary mode collapses assets: [Assets] prints a single total, [User]
// prints one total per repository.
//
// # Highlighting
//
// In multi-repository detail output each repository name is printed on its
// own line through a [Highlighter]. [Bold] wraps the name in ANSI bold/reset
// sequences; [Plain] leaves it untouched.
//
// Empty input writes nothing.
package render
