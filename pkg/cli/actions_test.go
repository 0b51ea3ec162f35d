package cli

import (
	"context"
	"testing"

	"github.com/m-mizutani/gt"

	controller "github.com/cs2kz-mapping/cs2kz-tools/pkg/controller/http"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/model"
)

func TestBuildActions(t *testing.T) {
	actions := buildActions(&toolkit{})

	t.Run("every button but point_worldtext has an action", func(t *testing.T) {
		for _, name := range model.AllButtons {
			_, ok := actions[name]
			gt.Value(t, ok).Equal(name != model.ButtonPointWorld)
		}
	})

	t.Run("launch conflicts", func(t *testing.T) {
		client := model.GameStatus{ClientRunning: true}
		dedicated := model.GameStatus{DedicatedRunning: true}

		for _, name := range []string{model.ButtonMapping, model.ButtonListen, model.ButtonInsecure} {
			gt.True(t, actions[name].Conflicts(client))
			gt.False(t, actions[name].Conflicts(dedicated))
		}
		gt.True(t, actions[model.ButtonDedicated].Conflicts(dedicated))
		gt.False(t, actions[model.ButtonDedicated].Conflicts(client))
		gt.Value(t, actions[model.ButtonVTF2PNG].Conflicts == nil).Equal(true)
	})

	t.Run("missing parameters fail before any work", func(t *testing.T) {
		ctx := context.Background()
		for _, name := range []string{
			model.ButtonImporter,
			model.ButtonVTF2PNG,
			model.ButtonSkybox,
			model.ButtonLoadingScreen,
			model.ButtonSounds,
		} {
			err := actions[name].Run(ctx, controller.ActionInput{})
			gt.Error(t, err)
		}
	})

	t.Run("bool params", func(t *testing.T) {
		in := controller.ActionInput{Params: map[string]string{"usebsp": "true", "skipdeps": "nope"}}
		gt.True(t, boolParam(in, "usebsp"))
		gt.False(t, boolParam(in, "skipdeps"))
		gt.False(t, boolParam(in, "nomergeinstances"))
	})
}
