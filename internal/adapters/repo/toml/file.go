package toml

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	DataDirKey = "data.dir"

	appDirName      = "droidmirror"
	fileMode        = 0o600
	dirMode         = 0o700
	tempFilePattern = ".droidmirror-*.toml.tmp"
)

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

// DefaultDataDir is $XDG_CONFIG_HOME/droidmirror, or its platform equivalent.
func DefaultDataDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config directory: %w", err)
	}
	return filepath.Join(base, appDirName), nil
}

// resolvePath reads key from cfg, falling back to fileName inside the data dir.
func resolvePath(cfg *viper.Viper, key, fileName string) (string, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	path := cfg.GetString(key)
	if path == "" {
		dir := cfg.GetString(DataDirKey)
		if dir == "" {
			var err error
			if dir, err = DefaultDataDir(); err != nil {
				return "", err
			}
		}
		path = filepath.Join(dir, fileName)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", key, err)
	}
	return filepath.Clean(absPath), nil
}

// lockForPath shares one lock between every repository instance on a file.
func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

// readTOMLFile decodes path into out. A missing file leaves out untouched and
// reports false.
func readTOMLFile(path, label string, out any) (bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("read %s file: %w", label, err)
	}

	if err := toml.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("decode %s file: %w", label, err)
	}
	return true, nil
}

// writeTOMLFile replaces path atomically through a temp file in the same directory.
func writeTOMLFile(path, label string, file any) error {
	if err := os.MkdirAll(filepath.Dir(path), dirMode); err != nil {
		return fmt.Errorf("create %s directory: %w", label, err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode %s file: %w", label, err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp %s file: %w", label, err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp %s file: %w", label, err)
	}

	if err := tempFile.Chmod(fileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp %s file: %w", label, err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp %s file: %w", label, err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace %s file: %w", label, err)
	}
	cleanup = false

	return nil
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339)
}
