package model

import "github.com/m-mizutani/goerr/v2"

// LaunchMode selects how CS2 is started
type LaunchMode string

const (
	LaunchInsecure  LaunchMode = "insecure"
	LaunchListen    LaunchMode = "listen"
	LaunchMapping   LaunchMode = "mapping"
	LaunchDedicated LaunchMode = "dedicated"
)

// ParseLaunchMode validates s as a LaunchMode
func ParseLaunchMode(s string) (LaunchMode, error) {
	switch m := LaunchMode(s); m {
	case LaunchInsecure, LaunchListen, LaunchMapping, LaunchDedicated:
		return m, nil
	}
	return "", goerr.New("unknown launch mode", goerr.V("mode", s))
}

// Dedicated reports whether the mode starts a dedicated server
func (m LaunchMode) Dedicated() bool { return m == LaunchDedicated }

// NeedsSetup reports whether Metamod and CS2KZ must be installed first
func (m LaunchMode) NeedsSetup() bool { return m != LaunchInsecure }

// VerifiesAfterExit reports whether game files are re-downloaded after the game exits
func (m LaunchMode) VerifiesAfterExit() bool { return m == LaunchListen || m == LaunchMapping }
