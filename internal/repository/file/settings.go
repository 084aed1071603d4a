package file

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/TNRIN/DRESS/internal/domain"
)

// SettingsSource reads the store settings from a static JSON document.
type SettingsSource struct {
	path string
}

// NewSettingsSource creates a settings source for the given file path.
func NewSettingsSource(path string) *SettingsSource {
	return &SettingsSource{path: path}
}

// Load reads the settings document. Missing fields keep their built-in
// defaults, so a sparse document still yields a complete configuration.
func (s *SettingsSource) Load(ctx context.Context) (domain.StoreSettings, error) {
	settings := domain.DefaultStoreSettings()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return settings, fmt.Errorf("read %s: %w", s.path, err)
	}

	if err := json.Unmarshal(data, &settings); err != nil {
		return domain.DefaultStoreSettings(), fmt.Errorf("parse %s: %w", s.path, err)
	}

	return settings, nil
}
