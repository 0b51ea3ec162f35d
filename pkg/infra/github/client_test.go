package github_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/model"
	githubinfra "github.com/cs2kz-mapping/cs2kz-tools/pkg/infra/github"
)

func TestClient_LatestRelease(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.Value(t, r.URL.Path).Equal("/repos/KZGlobalTeam/cs2kz-metamod/releases/latest")
		gt.Value(t, r.Header.Get("Authorization")).Equal("Bearer test-token")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"tag_name": "v2.4.1",
			"published_at": "2025-06-01T12:00:00Z",
			"assets": [
				{"id": 11, "name": "cs2kz-linux-master.zip", "size": 10, "browser_download_url": "https://example.com/l.zip"},
				{"id": 12, "name": "cs2kz-windows-master.zip", "size": 20, "browser_download_url": "https://example.com/w.zip"}
			]
		}`))
	}))
	defer server.Close()

	client, err := githubinfra.NewClient(
		githubinfra.WithBaseURL(server.URL),
		githubinfra.WithToken("test-token"),
	)
	gt.NoError(t, err)

	release, err := client.LatestRelease(context.Background(), "KZGlobalTeam", "cs2kz-metamod")
	gt.NoError(t, err)
	gt.Value(t, release.Tag).Equal("v2.4.1")
	gt.Value(t, release.PublishedAt.Year()).Equal(2025)
	gt.A(t, release.Assets).Length(2)
	gt.Value(t, release.Assets[1]).Equal(model.ReleaseAsset{
		ID:   12,
		Name: "cs2kz-windows-master.zip",
		URL:  "https://example.com/w.zip",
		Size: 20,
	})
}

func TestClient_LatestRelease_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "Not Found"}`))
	}))
	defer server.Close()

	client, err := githubinfra.NewClient(githubinfra.WithBaseURL(server.URL))
	gt.NoError(t, err)

	_, err = client.LatestRelease(context.Background(), "owner", "repo")
	gt.Error(t, err)
}

func TestClient_DownloadAsset(t *testing.T) {
	zipContent := []byte("fake zip content")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gt.Value(t, r.URL.Path).Equal("/repos/ValveResourceFormat/ValveResourceFormat/releases/assets/42")
		gt.Value(t, r.Header.Get("Accept")).Equal("application/octet-stream")

		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = w.Write(zipContent)
	}))
	defer server.Close()

	client, err := githubinfra.NewClient(githubinfra.WithBaseURL(server.URL))
	gt.NoError(t, err)

	data, err := client.DownloadAsset(context.Background(), "ValveResourceFormat", "ValveResourceFormat",
		model.ReleaseAsset{ID: 42, Name: "Source2Viewer.exe"})
	gt.NoError(t, err)
	gt.Value(t, data).Equal(zipContent)
}
