//go:build !windows

package steam

import "github.com/m-mizutani/goerr/v2"

func registrySteamPath() (string, error) {
	return "", goerr.New("registry is only available on Windows, use --steam-path")
}
