package soundevents_test

import (
	"strings"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/soundevents"
)

func TestUpsertCreatesFile(t *testing.T) {
	out, err := soundevents.Upsert("", soundevents.NewEvent("kz.start", "sounds/start.vsnd"))
	gt.NoError(t, err)
	gt.True(t, strings.HasPrefix(out, soundevents.Header+"{\n\t\"kz.start\" =\n"))
	gt.True(t, strings.HasSuffix(out, "\t}\n}\n"))
	gt.String(t, out).Contains(`vsnd_files_track_01 = "sounds/start.vsnd"`)
	gt.String(t, out).Contains("\t\t\t[1000.0, 0.5, 0.0, 0.0, 2.0, 3.0],\n")
	gt.String(t, out).Contains("occlusion = false\n")
}

func TestUpsertReplacesEntry(t *testing.T) {
	out, err := soundevents.Upsert("", soundevents.NewEvent("a", "sounds/a.vsnd"))
	gt.NoError(t, err)
	out, err = soundevents.Upsert(out, soundevents.NewEvent("b", "sounds/b.vsnd"))
	gt.NoError(t, err)

	replaced := soundevents.NewEvent("a", "sounds/a2.vsnd")
	replaced.Volume = 2
	out, err = soundevents.Upsert(out, replaced)
	gt.NoError(t, err)

	gt.Value(t, soundevents.Names(out)).Equal([]string{"b", "a"})
	gt.False(t, strings.Contains(out, "sounds/a.vsnd"))
	gt.String(t, out).Contains("volume = 2.0")
	gt.Value(t, strings.Count(out, soundevents.Header)).Equal(1)
}

func TestUpsertValidation(t *testing.T) {
	testCases := map[string]soundevents.Event{
		"empty name":   soundevents.NewEvent(" ", "sounds/a.vsnd"),
		"quoted name":  soundevents.NewEvent(`a"b`, "sounds/a.vsnd"),
		"no reference": soundevents.NewEvent("a", ""),
		"bad type": func() soundevents.Event {
			e := soundevents.NewEvent("a", "sounds/a.vsnd")
			e.Type = "csgo_loud"
			return e
		}(),
	}

	for name, e := range testCases {
		t.Run(name, func(t *testing.T) {
			_, err := soundevents.Upsert("", e)
			gt.Error(t, err)
		})
	}
}

func TestCustomReference(t *testing.T) {
	gt.Value(t, soundevents.CustomReference(`C:\audio\jump.wav`)).Equal("sounds/jump.vsnd")
	gt.Value(t, soundevents.CustomReference("beep.mp3")).Equal("sounds/beep.vsnd")
}
