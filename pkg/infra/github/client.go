package github

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v75/github"
	"github.com/m-mizutani/goerr/v2"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/model"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/utils/logging"
)

type Client struct {
	githubClient *github.Client
	httpClient   *http.Client
}

type config struct {
	token      string
	baseURL    string
	httpClient *http.Client
}

// Option configures the GitHub client
type Option func(*config)

// WithToken authenticates requests, raising the anonymous rate limit
func WithToken(token string) Option {
	return func(c *config) {
		c.token = token
	}
}

// WithBaseURL points the client at another API endpoint
func WithBaseURL(baseURL string) Option {
	return func(c *config) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient replaces the underlying HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(c *config) {
		c.httpClient = client
	}
}

// NewClient creates a client for the public GitHub Releases API
func NewClient(opts ...Option) (*Client, error) {
	cfg := &config{
		httpClient: &http.Client{Timeout: 5 * time.Minute},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	githubClient := github.NewClient(cfg.httpClient)
	if cfg.token != "" {
		githubClient = githubClient.WithAuthToken(cfg.token)
	}

	if cfg.baseURL != "" {
		base := cfg.baseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid GitHub API URL", goerr.V("url", cfg.baseURL))
		}
		githubClient.BaseURL = u
	}

	return &Client{
		githubClient: githubClient,
		httpClient:   cfg.httpClient,
	}, nil
}

// LatestRelease returns the latest published release of owner/repo
func (c *Client) LatestRelease(ctx context.Context, owner, repo string) (*model.Release, error) {
	release, _, err := c.githubClient.Repositories.GetLatestRelease(ctx, owner, repo)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to get latest release", goerr.V("owner", owner), goerr.V("repo", repo))
	}

	result := &model.Release{
		Tag:         release.GetTagName(),
		PublishedAt: release.GetPublishedAt().Time,
	}
	for _, asset := range release.Assets {
		result.Assets = append(result.Assets, model.ReleaseAsset{
			ID:   asset.GetID(),
			Name: asset.GetName(),
			URL:  asset.GetBrowserDownloadURL(),
			Size: asset.GetSize(),
		})
	}

	logging.From(ctx).Debug("Fetched latest release",
		"owner", owner,
		"repo", repo,
		"tag", result.Tag,
		"asset_count", len(result.Assets),
	)
	return result, nil
}

// DownloadAsset returns the content of a release asset, following the
// redirect to the storage host
func (c *Client) DownloadAsset(ctx context.Context, owner, repo string, asset model.ReleaseAsset) ([]byte, error) {
	rc, _, err := c.githubClient.Repositories.DownloadReleaseAsset(ctx, owner, repo, asset.ID, c.httpClient)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to download release asset",
			goerr.V("owner", owner), goerr.V("repo", repo), goerr.V("asset", asset.Name))
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read release asset", goerr.V("asset", asset.Name))
	}

	logging.From(ctx).Debug("Downloaded release asset", "asset", asset.Name, "size_bytes", len(data))
	return data, nil
}
