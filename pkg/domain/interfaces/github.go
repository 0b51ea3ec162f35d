package interfaces

//go:generate moq -out mocks/github_mock.go -pkg mocks . GitHubClient Fetcher

import (
	"context"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/model"
)

// GitHubClient reads releases of public repositories
type GitHubClient interface {
	// LatestRelease returns the latest published release of owner/repo
	LatestRelease(ctx context.Context, owner, repo string) (*model.Release, error)

	// DownloadAsset returns the content of a release asset
	DownloadAsset(ctx context.Context, owner, repo string, asset model.ReleaseAsset) ([]byte, error)
}

// Fetcher downloads plain HTTP resources (AlliedMods drop, raw GitHub files)
type Fetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}
