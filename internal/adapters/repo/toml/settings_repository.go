package toml

import (
	"context"
	"sync"

	"github.com/bnema/droidmirror/internal/domain"
	"github.com/bnema/droidmirror/internal/ports"
	"github.com/spf13/viper"
)

const (
	SettingsPathKey  = "settings.path"
	settingsFileName = "settings.toml"
	settingsLabel    = "settings"
)

type SettingsRepository struct {
	path string
	mu   *sync.RWMutex
}

var _ ports.SettingsRepository = (*SettingsRepository)(nil)

func NewSettingsRepository(cfg *viper.Viper) (*SettingsRepository, error) {
	path, err := resolvePath(cfg, SettingsPathKey, settingsFileName)
	if err != nil {
		return nil, err
	}

	return &SettingsRepository{path: path, mu: lockForPath(path)}, nil
}

func (r *SettingsRepository) Path() string {
	return r.path
}

// Load returns the stored settings. Missing files and keys fall back to
// domain.DefaultSettings.
func (r *SettingsRepository) Load(ctx context.Context) (domain.Settings, error) {
	if err := ctx.Err(); err != nil {
		return domain.Settings{}, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var file settingsFileSchema
	if _, err := readTOMLFile(r.path, settingsLabel, &file); err != nil {
		return domain.Settings{}, err
	}
	if err := validateVersion(settingsLabel, file.Version); err != nil {
		return domain.Settings{}, err
	}

	return fromMirrorSchema(file.Mirror), nil
}

func (r *SettingsRepository) Save(ctx context.Context, settings domain.Settings) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file := settingsFileSchema{Version: currentSchemaVersion, Mirror: toMirrorSchema(settings)}
	return writeTOMLFile(r.path, settingsLabel, file)
}

func toMirrorSchema(settings domain.Settings) *mirrorSchema {
	return &mirrorSchema{
		Resolution:    &settings.Resolution,
		Bitrate:       &settings.Bitrate,
		MaxFPS:        &settings.MaxFPS,
		AlwaysOnTop:   &settings.AlwaysOnTop,
		StayAwake:     &settings.StayAwake,
		TurnScreenOff: &settings.TurnScreenOff,
	}
}

func fromMirrorSchema(schema *mirrorSchema) domain.Settings {
	settings := domain.DefaultSettings()
	if schema == nil {
		return settings
	}

	if schema.Resolution != nil {
		settings.Resolution = *schema.Resolution
	}
	if schema.Bitrate != nil {
		settings.Bitrate = *schema.Bitrate
	}
	if schema.MaxFPS != nil {
		settings.MaxFPS = *schema.MaxFPS
	}
	if schema.AlwaysOnTop != nil {
		settings.AlwaysOnTop = *schema.AlwaysOnTop
	}
	if schema.StayAwake != nil {
		settings.StayAwake = *schema.StayAwake
	}
	if schema.TurnScreenOff != nil {
		settings.TurnScreenOff = *schema.TurnScreenOff
	}

	return settings
}
