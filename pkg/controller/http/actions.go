package http

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/m-mizutani/goerr/v2"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/model"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/utils/async"
)

// ActionInput is the optional JSON body of POST /actions/{name}
type ActionInput struct {
	Params map[string]string `json:"params"`
	Files  []string          `json:"files"`
}

// Param returns the named parameter or an error when it is empty
func (in ActionInput) Param(name string) (string, error) {
	v := in.Params[name]
	if v == "" {
		return "", goerr.New("missing action parameter", goerr.V("param", name))
	}
	return v, nil
}

// Action is a button the control API can trigger
type Action struct {
	Run func(ctx context.Context, in ActionInput) error

	// Conflicts, when set, refuses the action for the current game status
	Conflicts func(status model.GameStatus) bool
}

const maxActionBody = 1 << 20

type handler struct {
	status   StatusReader
	settings SettingsReader
	actions  map[string]Action
	jobs     *async.Jobs
}

func (h *handler) handleStatus(w http.ResponseWriter, r *http.Request) {
	game, err := h.status.Snapshot(r.Context())
	if err != nil {
		writeError(w, r, err, http.StatusInternalServerError)
		return
	}
	settings, err := h.settings.Load(r.Context())
	if err != nil {
		writeError(w, r, err, http.StatusInternalServerError)
		return
	}

	writeJSON(w, r, http.StatusOK, &model.Status{
		Game:    game,
		Buttons: settings.OrderedVisibleButtons(),
	})
}

func (h *handler) handleAction(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	action, ok := h.actions[name]
	if !ok {
		writeError(w, r, goerr.New("unknown action", goerr.V("action", name)), http.StatusNotFound)
		return
	}

	var in ActionInput
	body, err := io.ReadAll(io.LimitReader(r.Body, maxActionBody))
	if err != nil {
		writeError(w, r, goerr.Wrap(err, "failed to read request body"), http.StatusBadRequest)
		return
	}
	if len(body) > 0 {
		if err := json.Unmarshal(body, &in); err != nil {
			writeError(w, r, goerr.Wrap(err, "invalid action body"), http.StatusBadRequest)
			return
		}
	}

	if action.Conflicts != nil {
		game, err := h.status.Snapshot(r.Context())
		if err != nil {
			writeError(w, r, err, http.StatusInternalServerError)
			return
		}
		if action.Conflicts(game) {
			writeError(w, r, goerr.Wrap(model.ErrGameRunning, "action refused", goerr.V("action", name)), http.StatusConflict)
			return
		}
	}

	// Jobs detach from the request context and keep its logger
	id, err := h.jobs.Start(r.Context(), name, func(ctx context.Context) error {
		return action.Run(ctx, in)
	})
	if errors.Is(err, async.ErrAlreadyRunning) {
		writeError(w, r, err, http.StatusConflict)
		return
	}
	if err != nil {
		writeError(w, r, err, http.StatusServiceUnavailable)
		return
	}
	writeJSON(w, r, http.StatusAccepted, map[string]string{"job_id": id})
}

func (h *handler) handleJob(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	job, ok := h.jobs.Get(id)
	if !ok {
		writeError(w, r, goerr.New("job not found", goerr.V("job_id", id)), http.StatusNotFound)
		return
	}
	writeJSON(w, r, http.StatusOK, job)
}
