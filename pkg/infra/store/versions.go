package store

import (
	"bufio"
	"bytes"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/model"
)

// VersionsFileName is the version cache inside the data directory
const VersionsFileName = "cs2kz_versions.txt"

// VersionFile stores model.Versions as key=value lines
type VersionFile struct {
	path string
}

// NewVersionFile returns a store for <dataDir>/cs2kz_versions.txt
func NewVersionFile(dataDir string) *VersionFile {
	return &VersionFile{path: filepath.Join(dataDir, VersionsFileName)}
}

// Load returns the cached versions; a missing file yields an empty map
func (v *VersionFile) Load() (model.Versions, error) {
	raw, err := readFile(v.path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read version cache", goerr.V("path", v.path))
	}

	versions := model.Versions{}
	scanner := bufio.NewScanner(bytes.NewReader(raw))
	for scanner.Scan() {
		key, value, ok := strings.Cut(strings.TrimSpace(scanner.Text()), "=")
		if !ok {
			continue
		}
		versions[key] = value
	}
	if err := scanner.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to parse version cache", goerr.V("path", v.path))
	}

	return versions, nil
}

// Save merges versions into the stored cache; given values win
func (v *VersionFile) Save(versions model.Versions) error {
	merged, err := v.Load()
	if err != nil {
		return err
	}
	for key, value := range versions {
		merged[key] = value
	}

	keys := make([]string, 0, len(merged))
	for key := range merged {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	for _, key := range keys {
		buf.WriteString(key + "=" + merged[key] + "\n")
	}

	if err := writeFile(v.path, buf.Bytes(), 0644); err != nil {
		return goerr.Wrap(err, "failed to write version cache", goerr.V("path", v.path))
	}
	return nil
}

// Clear deletes the cache so every component is considered outdated
func (v *VersionFile) Clear() error {
	if err := os.Remove(v.path); err != nil && !os.IsNotExist(err) {
		return goerr.Wrap(err, "failed to remove version cache", goerr.V("path", v.path))
	}
	return nil
}
