package ledger

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/theirongolddev/fintrack/internal/model"
	"github.com/theirongolddev/fintrack/internal/store"
)

// DefaultSettings returns the settings used when none have been saved.
func (l *Ledger) DefaultSettings() model.Settings {
	return model.Settings{Currency: l.currency}
}

// Settings returns the saved settings, or defaults if none exist.
func (l *Ledger) Settings() (model.Settings, error) {
	raw, err := l.kv.Get(KeySettings)
	if errors.Is(err, store.ErrNotFound) {
		return l.DefaultSettings(), nil
	}
	if err != nil {
		return model.Settings{}, fmt.Errorf("reading settings: %w", err)
	}

	var s model.Settings
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return model.Settings{}, fmt.Errorf("decoding settings: %w", err)
	}
	return s, nil
}

// SaveSettings overwrites the stored settings.
func (l *Ledger) SaveSettings(s model.Settings) error {
	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := l.kv.Set(KeySettings, string(data)); err != nil {
		return fmt.Errorf("saving settings: %w", err)
	}
	l.log.Debug("saved settings", "currency", s.Currency, "budget", s.MonthlyBudget)
	return nil
}

// Theme returns the saved theme, light if none is saved or the stored value
// is not recognized.
func (l *Ledger) Theme() (model.Theme, error) {
	raw, err := l.kv.Get(KeyTheme)
	if errors.Is(err, store.ErrNotFound) {
		return model.ThemeLight, nil
	}
	if err != nil {
		return "", fmt.Errorf("reading theme: %w", err)
	}
	t, ok := model.ParseTheme(raw)
	if !ok {
		l.log.Warn("unknown stored theme, using light", "value", raw)
		return model.ThemeLight, nil
	}
	return t, nil
}

// SaveTheme stores the theme preference.
func (l *Ledger) SaveTheme(t model.Theme) error {
	if err := l.kv.Set(KeyTheme, string(t)); err != nil {
		return fmt.Errorf("saving theme: %w", err)
	}
	return nil
}
