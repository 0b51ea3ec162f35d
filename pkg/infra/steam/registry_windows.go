//go:build windows

package steam

import "golang.org/x/sys/windows/registry"

func registrySteamPath() (string, error) {
	key, err := registry.OpenKey(registry.CURRENT_USER, `Software\Valve\Steam`, registry.QUERY_VALUE)
	if err != nil {
		return "", err
	}
	defer key.Close()

	path, _, err := key.GetStringValue("SteamPath")
	if err != nil {
		return "", err
	}
	return path, nil
}
