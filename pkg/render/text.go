package render

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/matzehuels/ghcount/pkg/releases"
)

// padding is added to the widest count to get the column width.
const padding = 2

// Options controls text output.
type Options struct {
	// Summarize prints totals instead of one line per asset.
	Summarize bool

	// Highlight decorates repository names in multi-repository detail
	// output. Nil means Plain.
	Highlight Highlighter
}

func (o Options) highlight() Highlighter {
	if o.Highlight == nil {
		return Plain
	}
	return o.Highlight
}

// Assets writes the assets of a single repository or release.
func Assets(w io.Writer, assets []releases.Asset, opts Options) error {
	if len(assets) == 0 {
		return nil
	}

	bw := bufio.NewWriter(w)
	if opts.Summarize {
		fmt.Fprintln(bw, releases.Sum(assets))
		return bw.Flush()
	}

	width := columnWidth(counts(assets))
	for _, a := range assets {
		writeLine(bw, width, a.DownloadCount, a.Name)
	}
	return bw.Flush()
}

// User writes the releases of several repositories.
func User(w io.Writer, all releases.UserReleases, opts Options) error {
	if len(all) == 0 {
		return nil
	}

	bw := bufio.NewWriter(w)
	if opts.Summarize {
		totals := all.Totals()
		width := columnWidth(totals)
		for i, r := range all {
			writeLine(bw, width, totals[i], r.Repo)
		}
		return bw.Flush()
	}

	width := columnWidth(counts(all.Assets()))
	hl := opts.highlight()
	for _, r := range all {
		fmt.Fprintln(bw, hl(r.Repo))
		for _, a := range r.Assets {
			writeLine(bw, width, a.DownloadCount, a.Name)
		}
		fmt.Fprintln(bw)
	}
	return bw.Flush()
}

func writeLine(w io.Writer, width, count int, name string) {
	fmt.Fprintf(w, "%-*d %s\n", width, count, name)
}

func counts(assets []releases.Asset) []int {
	out := make([]int, len(assets))
	for i, a := range assets {
		out[i] = a.DownloadCount
	}
	return out
}

// columnWidth is the digit count of the largest value plus padding.
func columnWidth(values []int) int {
	widest := 0
	for _, v := range values {
		widest = max(widest, len(strconv.Itoa(v)))
	}
	return widest + padding
}
