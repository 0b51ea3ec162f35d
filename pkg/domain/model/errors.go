package model

import "github.com/m-mizutani/goerr/v2"

var (
	ErrSteamNotFound  = goerr.New("steam installation not found")
	ErrCS2NotFound    = goerr.New("CS2 installation not found")
	ErrAssetNotFound  = goerr.New("release asset not found")
	ErrNoUpdate       = goerr.New("no update available")
	ErrGameRunning    = goerr.New("game is already running")
	ErrCommandFailed  = goerr.New("command failed")
	ErrUnknownSetting = goerr.New("unknown setting")
	ErrInvalidSetting = goerr.New("invalid setting value")
)
