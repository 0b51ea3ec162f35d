// Package soundevents edits soundevents_addon.vsndevts files.
package soundevents

import (
	"fmt"
	"path"
	"regexp"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// Header is the KV3 header written when the file is created
const Header = "<!-- kv3 encoding:text:version{e21c7f3c-8a33-41c5-9977-a76d3a32aa0d} format:generic:version{7412167c-06e9-4698-aff2-e63eb59037e7} -->\n"

// FileName is the addon soundevents file, relative to the addon content root
var FileName = path.Join("soundevents", "soundevents_addon.vsndevts")

// Type selects the mixer group of a sound event
type Type string

const (
	TypeMega  Type = "csgo_mega"
	TypeMusic Type = "csgo_music"
	Type3D    Type = "csgo_3d"
)

// ParseType accepts the three known sound event types
func ParseType(s string) (Type, error) {
	switch t := Type(s); t {
	case TypeMega, TypeMusic, Type3D:
		return t, nil
	}
	return "", goerr.New("unknown sound type", goerr.V("type", s))
}

// CurvePoint maps a distance to a volume
type CurvePoint struct {
	Distance float64
	Volume   float64
}

// Event describes one entry of the soundevents file
type Event struct {
	Name               string
	Type               Type
	Reference          string
	Volume             float64
	Pitch              float64
	Near               CurvePoint
	Mid                CurvePoint
	Far                CurvePoint
	Occlusion          bool
	OcclusionIntensity int
}

// NewEvent returns an event with the default curve and levels
func NewEvent(name, reference string) Event {
	return Event{
		Name:               name,
		Type:               TypeMega,
		Reference:          reference,
		Volume:             1.0,
		Pitch:              1.0,
		Near:               CurvePoint{Distance: 0, Volume: 1.0},
		Mid:                CurvePoint{Distance: 1000, Volume: 0.5},
		Far:                CurvePoint{Distance: 3000, Volume: 0},
		OcclusionIntensity: 100,
	}
}

// Validate rejects events that cannot be written
func (e Event) Validate() error {
	if strings.TrimSpace(e.Name) == "" {
		return goerr.New("sound event name is empty")
	}
	if strings.ContainsAny(e.Name, "\"{}\n") {
		return goerr.New("sound event name has invalid characters", goerr.V("name", e.Name))
	}
	if e.Reference == "" {
		return goerr.New("sound event has no sound reference", goerr.V("name", e.Name))
	}
	if _, err := ParseType(string(e.Type)); err != nil {
		return err
	}
	return nil
}

// CustomReference returns the vsnd path of a file copied into the addon sounds folder
func CustomReference(fileName string) string {
	base := path.Base(strings.ReplaceAll(fileName, "\\", "/"))
	return "sounds/" + strings.TrimSuffix(base, path.Ext(base)) + ".vsnd"
}

// Render returns the event block as it appears inside the root object
func (e Event) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "\t%q =\n\t{\n", e.Name)
	fmt.Fprintf(&b, "\t\ttype = %q\n", string(e.Type))
	fmt.Fprintf(&b, "\t\tvsnd_files_track_01 = %q\n", e.Reference)
	fmt.Fprintf(&b, "\t\tvolume = %.1f\n", e.Volume)
	fmt.Fprintf(&b, "\t\tpitch = %.2f\n", e.Pitch)
	b.WriteString("\t\tuse_distance_volume_mapping_curve = true\n")
	b.WriteString("\t\tdistance_volume_mapping_curve = \n\t\t[\n")
	for _, p := range []CurvePoint{e.Near, e.Mid, e.Far} {
		fmt.Fprintf(&b, "\t\t\t[%.1f, %.1f, 0.0, 0.0, 2.0, 3.0],\n", p.Distance, p.Volume)
	}
	b.WriteString("\t\t]\n")
	fmt.Fprintf(&b, "\t\tocclusion = %t\n", e.Occlusion)
	fmt.Fprintf(&b, "\t\tocclusion_intensity = %d\n", e.OcclusionIntensity)
	b.WriteString("\t}\n")
	return b.String()
}

// entryPattern matches an existing top-level entry. Entry bodies hold one
// nested array level, so the body is matched up to the first "\n\t}".
func entryPattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`(?s)\t"` + regexp.QuoteMeta(name) + `"\s*=\s*\{.*?\n\t\}\n?`)
}

// Upsert inserts e into content, replacing an entry with the same name.
// Empty content produces a new file with the KV3 header.
func Upsert(content string, e Event) (string, error) {
	if err := e.Validate(); err != nil {
		return "", err
	}
	entry := e.Render()

	if strings.TrimSpace(content) == "" {
		return Header + "{\n" + entry + "}\n", nil
	}

	content = entryPattern(e.Name).ReplaceAllString(content, "")

	last := strings.LastIndex(content, "}")
	if last < 0 {
		return content + entry + "\n}", nil
	}
	return content[:last] + entry + content[last:], nil
}

// Names returns the event names defined at the top level of content
func Names(content string) []string {
	re := regexp.MustCompile(`(?m)^\t"([^"]+)"\s*=`)
	var names []string
	for _, m := range re.FindAllStringSubmatch(content, -1) {
		names = append(names, m[1])
	}
	return names
}
