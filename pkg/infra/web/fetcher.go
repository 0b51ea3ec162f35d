// Package web downloads plain HTTP resources.
package web

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/types"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/utils/logging"
)

// Fetcher issues GET requests and returns the body of 200 responses
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a Fetcher. A nil client uses a default with a 5 minute timeout.
func NewFetcher(client *http.Client) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: 5 * time.Minute}
	}
	return &Fetcher{client: client}
}

// Fetch downloads url
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create request", goerr.V("url", url))
	}
	req.Header.Set("User-Agent", types.AppName+"/"+types.Version)

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to fetch", goerr.V("url", url))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, goerr.New("unexpected status code", goerr.V("url", url), goerr.V("status", resp.StatusCode))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read response body", goerr.V("url", url))
	}

	logging.From(ctx).Debug("Fetched", "url", url, "size_bytes", len(data))
	return data, nil
}
