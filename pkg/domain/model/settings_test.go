package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/model"
)

func TestSettings_OrderedVisibleButtons(t *testing.T) {
	t.Run("defaults hide unfinished tools", func(t *testing.T) {
		buttons := model.DefaultSettings().OrderedVisibleButtons()
		gt.Value(t, buttons[0]).Equal(model.ButtonMapping)
		for _, b := range buttons {
			gt.Value(t, b).NotEqual(model.ButtonPointWorld)
			gt.Value(t, b).NotEqual(model.ButtonSounds)
		}
	})

	t.Run("custom order with unknown and missing entries", func(t *testing.T) {
		s := model.DefaultSettings()
		s.ButtonOrder = []string{model.ButtonVTF2PNG, "removed_tool", model.ButtonMapping, model.ButtonVTF2PNG}
		s.VisibleButtons = map[string]bool{model.ButtonListen: false}

		buttons := s.OrderedVisibleButtons()
		gt.Value(t, buttons[0]).Equal(model.ButtonVTF2PNG)
		gt.Value(t, buttons[1]).Equal(model.ButtonMapping)
		gt.Value(t, buttons[2]).Equal(model.ButtonDedicated)
		gt.A(t, buttons).Length(len(model.AllButtons) - 1)
	})
}

func TestParseLaunchMode(t *testing.T) {
	mode, err := model.ParseLaunchMode("dedicated")
	gt.NoError(t, err)
	gt.True(t, mode.Dedicated())
	gt.True(t, mode.NeedsSetup())
	gt.False(t, mode.VerifiesAfterExit())

	mode, err = model.ParseLaunchMode("insecure")
	gt.NoError(t, err)
	gt.False(t, mode.NeedsSetup())

	_, err = model.ParseLaunchMode("workshop")
	gt.Error(t, err)
}
