package model

import "time"

// ImportRequest describes one CS:GO to CS2 map import
type ImportRequest struct {
	BSPPath string
	Addon   string

	UseBSP           bool
	NoMergeInstances bool
	SkipDeps         bool
}

// AssetKind classifies an imported asset
type AssetKind string

const (
	AssetMaterial AssetKind = "material"
	AssetModel    AssetKind = "model"
	AssetMap      AssetKind = "map"
	AssetRefs     AssetKind = "refs"
)

// AssetFailure is an asset whose import command did not succeed
type AssetFailure struct {
	Kind   AssetKind `json:"kind"`
	Name   string    `json:"name"`
	Reason string    `json:"reason"`
}

// ImportReport summarises an import run. Asset failures do not abort a run.
type ImportReport struct {
	RunID     string         `json:"run_id"`
	MapName   string         `json:"map_name"`
	Addon     string         `json:"addon"`
	Materials int            `json:"materials"`
	Models    int            `json:"models"`
	Imported  int            `json:"imported"`
	Failures  []AssetFailure `json:"failures"`
	Warnings  []string       `json:"warnings"`
	Elapsed   time.Duration  `json:"elapsed"`
}

// AddFailure records a failed asset
func (r *ImportReport) AddFailure(kind AssetKind, name, reason string) {
	r.Failures = append(r.Failures, AssetFailure{Kind: kind, Name: name, Reason: reason})
}
