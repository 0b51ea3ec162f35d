package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"slices"
	"strconv"

	"github.com/m-mizutani/goerr/v2"

	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/interfaces"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/domain/model"
	"github.com/cs2kz-mapping/cs2kz-tools/pkg/utils/logging"
)

// Settings reads and mutates settings.json. Every mutation is saved immediately.
type Settings struct {
	store interfaces.SettingsStore
}

// NewSettings creates the settings use case
func NewSettings(store interfaces.SettingsStore) *Settings {
	return &Settings{store: store}
}

// Load returns the current settings
func (uc *Settings) Load(ctx context.Context) (model.Settings, error) {
	return uc.store.Load(ctx)
}

func settingsMap(s model.Settings) (map[string]any, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode settings")
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, goerr.Wrap(err, "failed to decode settings")
	}
	return m, nil
}

// Get returns the value stored under the JSON key
func (uc *Settings) Get(ctx context.Context, key string) (any, error) {
	s, err := uc.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	m, err := settingsMap(s)
	if err != nil {
		return nil, err
	}
	v, ok := m[key]
	if !ok {
		return nil, goerr.Wrap(model.ErrUnknownSetting, "no such setting", goerr.V("key", key))
	}
	return v, nil
}

// Set parses value according to the current type of key and saves the result.
// String settings take value verbatim; other types accept JSON or
// strconv syntax.
func (uc *Settings) Set(ctx context.Context, key, value string) error {
	s, err := uc.store.Load(ctx)
	if err != nil {
		return err
	}
	m, err := settingsMap(s)
	if err != nil {
		return err
	}

	current, ok := m[key]
	if !ok {
		return goerr.Wrap(model.ErrUnknownSetting, "no such setting", goerr.V("key", key))
	}

	invalid := func(err error) error {
		return goerr.Wrap(model.ErrInvalidSetting, err.Error(), goerr.V("key", key), goerr.V("value", value))
	}

	switch current.(type) {
	case string:
		m[key] = value
	case bool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return invalid(err)
		}
		m[key] = b
	case float64:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return invalid(err)
		}
		m[key] = f
	default:
		var v any
		if err := json.Unmarshal([]byte(value), &v); err != nil {
			return invalid(err)
		}
		m[key] = v
	}

	raw, err := json.Marshal(m)
	if err != nil {
		return goerr.Wrap(err, "failed to encode settings")
	}
	var next model.Settings
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&next); err != nil {
		return invalid(err)
	}

	if key == "button_order" {
		if err := validateButtonOrder(next.ButtonOrder); err != nil {
			return err
		}
	}
	if key == "window_opacity" && (next.WindowOpacity < 0 || next.WindowOpacity > 1) {
		return goerr.Wrap(model.ErrInvalidSetting, "window_opacity must be between 0 and 1",
			goerr.V("value", next.WindowOpacity))
	}
	if key == "visible_buttons" {
		for name := range next.VisibleButtons {
			if !model.IsKnownButton(name) {
				return goerr.Wrap(model.ErrInvalidSetting, "unknown button", goerr.V("button", name))
			}
		}
	}

	if err := uc.store.Save(ctx, next); err != nil {
		return err
	}
	logging.From(ctx).Info("Setting updated", "key", key)
	return nil
}

// SetButtonVisibility shows or hides one button
func (uc *Settings) SetButtonVisibility(ctx context.Context, button string, visible bool) error {
	if !model.IsKnownButton(button) {
		return goerr.Wrap(model.ErrInvalidSetting, "unknown button", goerr.V("button", button))
	}
	s, err := uc.store.Load(ctx)
	if err != nil {
		return err
	}
	if s.VisibleButtons == nil {
		s.VisibleButtons = make(map[string]bool)
	}
	s.VisibleButtons[button] = visible
	return uc.store.Save(ctx, s)
}

func validateButtonOrder(order []string) error {
	seen := make(map[string]bool, len(order))
	for _, name := range order {
		if !model.IsKnownButton(name) {
			return goerr.Wrap(model.ErrInvalidSetting, "unknown button in order", goerr.V("button", name))
		}
		if seen[name] {
			return goerr.Wrap(model.ErrInvalidSetting, "button listed twice", goerr.V("button", name))
		}
		seen[name] = true
	}
	return nil
}

// SetButtonOrder replaces the button order. Buttons left out keep their
// default position after the listed ones.
func (uc *Settings) SetButtonOrder(ctx context.Context, order []string) error {
	if err := validateButtonOrder(order); err != nil {
		return err
	}
	s, err := uc.store.Load(ctx)
	if err != nil {
		return err
	}
	s.ButtonOrder = slices.Clone(order)
	return uc.store.Save(ctx, s)
}

// Reset stores the defaults
func (uc *Settings) Reset(ctx context.Context) error {
	if err := uc.store.Save(ctx, model.DefaultSettings()); err != nil {
		return err
	}
	logging.From(ctx).Info("Settings reset to defaults")
	return nil
}
