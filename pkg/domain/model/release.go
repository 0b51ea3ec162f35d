package model

import "time"

// Release is a published GitHub release
type Release struct {
	Tag         string
	PublishedAt time.Time
	Assets      []ReleaseAsset
}

// ReleaseAsset is a downloadable file attached to a release
type ReleaseAsset struct {
	ID   int64
	Name string
	URL  string
	Size int
}

// Update is an available self update
type Update struct {
	Tag   string
	Asset ReleaseAsset
}

// ExtractResult describes files written by an archive extraction
type ExtractResult struct {
	Dir   string
	Files []string
	Size  int64
}
