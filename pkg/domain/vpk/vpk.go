// Package vpk lists the files of a Valve pak directory (_dir.vpk).
package vpk

import (
	"bufio"
	"encoding/binary"
	"io"
	"sort"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

const (
	signature   = 0x55AA1234
	entrySize   = 18
	emptyMarker = " "
)

var ErrInvalidSignature = goerr.New("not a VPK directory file")

type reader struct {
	r *bufio.Reader
}

func (x *reader) str() (string, error) {
	s, err := x.r.ReadString(0)
	if err != nil {
		return "", goerr.Wrap(err, "unterminated string in VPK tree")
	}
	return strings.TrimSuffix(s, "\x00"), nil
}

// ReadDir returns every file path in the directory tree, using forward slashes
func ReadDir(r io.Reader) ([]string, error) {
	x := &reader{r: bufio.NewReader(r)}

	var hdr [3]uint32
	if err := binary.Read(x.r, binary.LittleEndian, &hdr); err != nil {
		return nil, goerr.Wrap(err, "failed to read VPK header")
	}
	if hdr[0] != signature {
		return nil, ErrInvalidSignature
	}
	switch hdr[1] {
	case 1:
	case 2:
		if _, err := x.r.Discard(16); err != nil {
			return nil, goerr.Wrap(err, "failed to read VPK v2 header")
		}
	default:
		return nil, goerr.New("unsupported VPK version", goerr.V("version", hdr[1]))
	}

	var files []string
	entry := make([]byte, entrySize)
	for {
		ext, err := x.str()
		if err != nil {
			return nil, err
		}
		if ext == "" {
			break
		}
		for {
			dir, err := x.str()
			if err != nil {
				return nil, err
			}
			if dir == "" {
				break
			}
			for {
				name, err := x.str()
				if err != nil {
					return nil, err
				}
				if name == "" {
					break
				}
				if _, err := io.ReadFull(x.r, entry); err != nil {
					return nil, goerr.Wrap(err, "truncated VPK entry", goerr.V("name", name))
				}
				preload := binary.LittleEndian.Uint16(entry[4:])
				if _, err := x.r.Discard(int(preload)); err != nil {
					return nil, goerr.Wrap(err, "truncated VPK preload data", goerr.V("name", name))
				}
				files = append(files, joinPath(dir, name, ext))
			}
		}
	}
	return files, nil
}

func joinPath(dir, name, ext string) string {
	p := name
	if ext != emptyMarker {
		p += "." + ext
	}
	if dir != emptyMarker {
		p = dir + "/" + p
	}
	return p
}

// Sounds returns the compiled sounds in files as .vsnd references
func Sounds(files []string) []string {
	var sounds []string
	for _, f := range files {
		if !strings.HasSuffix(f, ".vsnd_c") || !strings.Contains(strings.ToLower(f), "sounds") {
			continue
		}
		sounds = append(sounds, strings.TrimSuffix(f, "_c"))
	}
	sort.Strings(sounds)
	return sounds
}
