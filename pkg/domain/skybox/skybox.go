// Package skybox stitches six cube faces into a 4x3 cross image.
package skybox

import (
	"image"
	"image/draw"
	"path/filepath"
	"strings"

	xdraw "golang.org/x/image/draw"

	"github.com/m-mizutani/goerr/v2"
)

// Face is a cube face name
type Face string

const (
	Up    Face = "up"
	Down  Face = "down"
	Left  Face = "left"
	Right Face = "right"
	Front Face = "front"
	Back  Face = "back"
)

// Faces lists the target slots in stitch order
var Faces = []Face{Up, Left, Front, Right, Back, Down}

var facePatterns = map[Face][]string{
	Up:    {"_up.", "up.", "_up_", "up_"},
	Down:  {"_down.", "down.", "_down_", "down_", "_dn.", "dn.", "_dn_", "dn_"},
	Left:  {"_left.", "left.", "_left_", "left_", "_lf.", "lf.", "_lf_", "lf_"},
	Right: {"_right.", "right.", "_right_", "right_", "_rt.", "rt.", "_rt_", "rt_"},
	Front: {"_front.", "front.", "_front_", "front_", "_ft.", "ft.", "_ft_", "ft_"},
	Back:  {"_back.", "back.", "_back_", "back_", "_bk.", "bk.", "_bk_", "bk_"},
}

// sourceFace maps each slot of the cross to the face image placed there.
// Source engine faces are named from a different viewpoint than the cross.
var sourceFace = map[Face]Face{
	Up:    Up,
	Down:  Down,
	Left:  Back,
	Front: Right,
	Right: Front,
	Back:  Left,
}

// cell is the position of each slot in units of face size
var cell = map[Face]image.Point{
	Up:    {1, 0},
	Left:  {0, 1},
	Front: {1, 1},
	Right: {2, 1},
	Back:  {3, 1},
	Down:  {1, 2},
}

var (
	ErrDuplicateFace = goerr.New("multiple files match the same face")
	ErrMissingFace   = goerr.New("could not detect every skybox face")
)

// MatchFaces assigns each path to a face by its file name. A name matching
// several faces goes to the first of them in Faces order, so "sky_left" is
// left even though it contains "ft.".
func MatchFaces(paths []string) (map[Face]string, error) {
	files := make(map[Face]string, len(Faces))
	for _, p := range paths {
		face, ok := faceOf(strings.ToLower(filepath.Base(p)))
		if !ok {
			continue
		}
		if prev, dup := files[face]; dup {
			return nil, goerr.Wrap(ErrDuplicateFace, "face matched twice",
				goerr.V("face", face), goerr.V("first", prev), goerr.V("second", p))
		}
		files[face] = p
	}

	var missing []string
	for _, face := range Faces {
		if _, ok := files[face]; !ok {
			missing = append(missing, string(face))
		}
	}
	if len(missing) > 0 {
		return nil, goerr.Wrap(ErrMissingFace, "face files missing",
			goerr.V("matched", len(files)), goerr.V("missing", strings.Join(missing, ", ")))
	}
	return files, nil
}

func faceOf(name string) (Face, bool) {
	for _, face := range Faces {
		if matches(name, facePatterns[face]) {
			return face, true
		}
	}
	return "", false
}

func matches(name string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(name, p) {
			return true
		}
	}
	return false
}

// Stitch lays the faces out as a 4x3 cross. Every face is scaled to the
// width of the up face.
func Stitch(faces map[Face]image.Image) (*image.NRGBA, error) {
	for _, face := range Faces {
		if faces[face] == nil {
			return nil, goerr.Wrap(ErrMissingFace, "face image missing", goerr.V("face", face))
		}
	}

	size := faces[Up].Bounds().Dx()
	if size == 0 {
		return nil, goerr.New("face image is empty")
	}

	out := image.NewNRGBA(image.Rect(0, 0, size*4, size*3))
	for _, slot := range Faces {
		src := faces[sourceFace[slot]]
		at := cell[slot].Mul(size)
		dst := image.Rect(at.X, at.Y, at.X+size, at.Y+size)

		b := src.Bounds()
		if b.Dx() == size && b.Dy() == size {
			draw.Draw(out, dst, src, b.Min, draw.Src)
			continue
		}
		xdraw.CatmullRom.Scale(out, dst, src, b, xdraw.Src, nil)
	}
	return out, nil
}
