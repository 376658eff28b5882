// Package releases holds the release-asset domain types and aggregates
// per-repository release data into a per-user view.
//
// Ordering is part of the contract everywhere in this package: assets keep
// the order the API returned them in (newest release first), and
// repositories keep the platform's listing order. Nothing is re-sorted.
package releases

// Asset is a single downloadable file attached to a release.
type Asset struct {
	Name          string `json:"name"`
	DownloadCount int    `json:"download_count"`
}

// RepoReleases is the flattened asset list of one repository.
type RepoReleases struct {
	Repo   string  `json:"repo"`
	Assets []Asset `json:"assets"`
}

// Total returns the summed download count of the repository's assets.
func (r RepoReleases) Total() int { return Sum(r.Assets) }

// UserReleases lists the repositories of one user that have at least one
// release asset, in listing order.
type UserReleases []RepoReleases

// Totals returns each repository's total, index-aligned with u.
func (u UserReleases) Totals() []int {
	totals := make([]int, len(u))
	for i, r := range u {
		totals[i] = r.Total()
	}
	return totals
}

// Assets returns every asset across all repositories, in order.
func (u UserReleases) Assets() []Asset {
	var all []Asset
	for _, r := range u {
		all = append(all, r.Assets...)
	}
	return all
}

// Sum returns the total download count of assets.
func Sum(assets []Asset) int {
	total := 0
	for _, a := range assets {
		total += a.DownloadCount
	}
	return total
}
