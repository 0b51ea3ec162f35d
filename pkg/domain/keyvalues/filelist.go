package keyvalues

import (
	"io"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// ReadFileList returns the "file" entries of an importfilelist document
// as written by the Source 2 import tools (*_refs.txt)
func ReadFileList(r io.Reader) ([]string, error) {
	root, err := Parse(r)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse file list")
	}

	var files []string
	for _, top := range root.Children {
		if !top.Block {
			continue
		}
		for _, c := range top.Children {
			if !c.Block && strings.EqualFold(c.Key, "file") && c.Value != "" {
				files = append(files, c.Value)
			}
		}
	}
	return files, nil
}

// FormatFileList renders files as an importfilelist document
func FormatFileList(files []string) string {
	var sb strings.Builder
	sb.WriteString("importfilelist\n{\n")
	for _, f := range files {
		sb.WriteString("\t\"file\" \"" + strings.ReplaceAll(f, `\`, "/") + "\"\n")
	}
	sb.WriteString("}\n")
	return sb.String()
}

// SplitModels separates .mdl entries from everything else
func SplitModels(files []string) (models, others []string) {
	for _, f := range files {
		if strings.HasSuffix(strings.ToLower(f), ".mdl") {
			models = append(models, f)
		} else {
			others = append(others, f)
		}
	}
	return models, others
}
