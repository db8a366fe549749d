// Package config loads droidmirror settings from the config file, the
// environment and command-line overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	BridgePathKey        = "bridge.path"
	MirrorPathKey        = "mirror.path"
	MirrorDirKey         = "mirror.dir"
	MirrorPathPrependKey = "mirror.path_prepend"
	LogLevelKey          = "logging.level"
	LogFileKey           = "logging.file"
	WorkersKey           = "workers.max"
	SuperviseIntervalKey = "supervise.interval"

	envPrefix  = "DROIDMIRROR"
	configName = "config"
	configType = "toml"
)

const (
	DefaultBridgePath        = "adb"
	DefaultMirrorPath        = "scrcpy"
	DefaultLogLevel          = "WARN"
	DefaultWorkers           = 4
	DefaultSuperviseInterval = time.Second
)

type Config struct {
	BridgePath        string
	MirrorPath        string
	MirrorDir         string
	PathPrepend       string
	LogLevel          string
	LogFile           string
	Workers           int
	SuperviseInterval time.Duration
}

// Tools holds the resolved executables and the environment the mirroring tool
// is started in.
type Tools struct {
	BridgePath  string
	MirrorPath  string
	MirrorDir   string
	PathPrepend string
}

// New returns a viper instance with defaults and DROIDMIRROR_* environment
// bindings. Nested keys map to env names with dots replaced by underscores.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(BridgePathKey, DefaultBridgePath)
	v.SetDefault(MirrorPathKey, DefaultMirrorPath)
	v.SetDefault(LogLevelKey, DefaultLogLevel)
	v.SetDefault(WorkersKey, DefaultWorkers)
	v.SetDefault(SuperviseIntervalKey, DefaultSuperviseInterval)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for _, key := range []string{MirrorDirKey, MirrorPathPrependKey, LogFileKey, "data.dir", "devices.path", "settings.path"} {
		_ = v.BindEnv(key)
	}

	return v
}

// ReadFile reads path, or config.toml from ConfigDir when path is empty.
// A missing default file is not an error.
func ReadFile(v *viper.Viper, path string) error {
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(ConfigDir())
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config file: %w", err)
	}
	return nil
}

func Load(v *viper.Viper) (Config, error) {
	cfg := Config{
		BridgePath:        strings.TrimSpace(v.GetString(BridgePathKey)),
		MirrorPath:        strings.TrimSpace(v.GetString(MirrorPathKey)),
		MirrorDir:         strings.TrimSpace(v.GetString(MirrorDirKey)),
		PathPrepend:       strings.TrimSpace(v.GetString(MirrorPathPrependKey)),
		LogLevel:          strings.ToUpper(strings.TrimSpace(v.GetString(LogLevelKey))),
		LogFile:           strings.TrimSpace(v.GetString(LogFileKey)),
		Workers:           v.GetInt(WorkersKey),
		SuperviseInterval: v.GetDuration(SuperviseIntervalKey),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	if c.BridgePath == "" {
		errs = append(errs, fmt.Errorf("%s must not be empty", BridgePathKey))
	}
	if c.MirrorPath == "" {
		errs = append(errs, fmt.Errorf("%s must not be empty", MirrorPathKey))
	}
	switch c.LogLevel {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		errs = append(errs, fmt.Errorf("%s must be one of DEBUG, INFO, WARN, ERROR (got %q)", LogLevelKey, c.LogLevel))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("%s must be at least 1", WorkersKey))
	}
	if c.SuperviseInterval <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", SuperviseIntervalKey))
	}
	return errors.Join(errs...)
}

// ResolveBridge locates the bridge executable.
func (c Config) ResolveBridge() (string, error) {
	return lookTool("bridge", BridgePathKey, c.BridgePath)
}

// ResolveTools locates both executables. The mirroring tool runs from its own
// directory and finds the bridge through PATH unless configured otherwise.
func (c Config) ResolveTools() (Tools, error) {
	bridge, err := c.ResolveBridge()
	if err != nil {
		return Tools{}, err
	}
	mirror, err := lookTool("mirroring", MirrorPathKey, c.MirrorPath)
	if err != nil {
		return Tools{}, err
	}

	tools := Tools{
		BridgePath:  bridge,
		MirrorPath:  mirror,
		MirrorDir:   c.MirrorDir,
		PathPrepend: c.PathPrepend,
	}
	if tools.MirrorDir == "" {
		tools.MirrorDir = filepath.Dir(mirror)
	}
	if tools.PathPrepend == "" {
		tools.PathPrepend = filepath.Dir(bridge)
	}
	if info, err := os.Stat(tools.MirrorDir); err != nil || !info.IsDir() {
		return Tools{}, fmt.Errorf("%s %q is not a directory", MirrorDirKey, tools.MirrorDir)
	}

	return tools, nil
}

func lookTool(label, key, path string) (string, error) {
	resolved, err := exec.LookPath(path)
	if err != nil {
		return "", fmt.Errorf("%s tool not found (%s = %q): %w", label, key, path, err)
	}
	abs, err := filepath.Abs(resolved)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", key, err)
	}
	return abs, nil
}

// ConfigDir is $XDG_CONFIG_HOME/droidmirror, falling back to ~/.config/droidmirror.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "droidmirror")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".droidmirror"
	}
	return filepath.Join(home, ".config", "droidmirror")
}
