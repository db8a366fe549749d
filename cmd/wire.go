package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/bnema/droidmirror/internal/adapters/bridge/adb"
	"github.com/bnema/droidmirror/internal/adapters/process"
	devicesrender "github.com/bnema/droidmirror/internal/adapters/render/devices"
	tomlrepo "github.com/bnema/droidmirror/internal/adapters/repo/toml"
	"github.com/bnema/droidmirror/internal/application"
	"github.com/bnema/droidmirror/internal/config"
	"github.com/bnema/droidmirror/internal/domain"
	"github.com/bnema/droidmirror/internal/logging"
	"github.com/bnema/droidmirror/internal/ports"
)

type app struct {
	cfg   config.Config
	tools config.Tools
	// bridgeErr and mirrorErr are kept so commands that need no external
	// tool keep working when one is missing.
	bridgeErr error
	mirrorErr error

	logger   *slog.Logger
	closeLog func() error

	bridge    ports.BridgeClient
	catalog   *application.DeviceCatalog
	reconnect *application.ReconnectCoordinator
	mirror    *application.MirrorService
	library   *application.LibraryService

	devicesPath  string
	settingsPath string

	renderDevices  func([]domain.Device) (string, error)
	renderSessions func([]domain.SessionInfo, devicesrender.RenderOptions) (string, error)
	renderSaved    func([]domain.SavedDevice, devicesrender.RenderOptions) (string, error)
	renderSettings func(domain.Settings) (string, error)
	now            func() time.Time
}

type wireOptions struct {
	ConfigFile string
	LogLevel   string
	LogOutput  io.Writer
}

func wireApp(opts wireOptions) (*app, error) {
	v := config.New()
	if err := config.ReadFile(v, opts.ConfigFile); err != nil {
		return nil, err
	}
	if opts.LogLevel != "" {
		v.Set(config.LogLevelKey, opts.LogLevel)
	}

	cfg, err := config.Load(v)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, closeLog, err := logging.New(logging.Options{Level: cfg.LogLevel, File: cfg.LogFile, Fallback: opts.LogOutput})
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	devicesRepo, err := tomlrepo.NewDeviceRepository(v)
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("wire saved device repository: %w", err)
	}
	settingsRepo, err := tomlrepo.NewSettingsRepository(v)
	if err != nil {
		_ = closeLog()
		return nil, fmt.Errorf("wire settings repository: %w", err)
	}

	a := &app{
		cfg:            cfg,
		logger:         logger,
		closeLog:       closeLog,
		devicesPath:    devicesRepo.Path(),
		settingsPath:   settingsRepo.Path(),
		renderDevices:  devicesrender.RenderDevices,
		renderSessions: devicesrender.RenderSessions,
		renderSaved:    devicesrender.RenderSavedDevices,
		renderSettings: devicesrender.RenderSettings,
		now:            time.Now,
	}

	tools, err := cfg.ResolveTools()
	if err != nil {
		a.mirrorErr = err
		// The bridge alone is enough for everything except mirroring.
		tools = config.Tools{BridgePath: cfg.BridgePath}
		if bridgePath, bridgeErr := cfg.ResolveBridge(); bridgeErr != nil {
			a.bridgeErr = bridgeErr
		} else {
			tools.BridgePath = bridgePath
		}
	}
	a.tools = tools

	clock := ports.SystemClock{}
	registry := application.NewSessionRegistry(logger, cfg.Workers)

	a.bridge = adb.NewClient(tools.BridgePath)
	a.catalog = application.NewDeviceCatalog(a.bridge, logger, cfg.Workers)
	a.reconnect = application.NewReconnectCoordinator(a.bridge, a.catalog, clock, logger)
	a.mirror = application.NewMirrorService(process.NewSpawner(), registry, application.MirrorTool{
		Path:        tools.MirrorPath,
		Dir:         tools.MirrorDir,
		PathPrepend: tools.PathPrepend,
	}, clock, logger, cfg.Workers)
	a.library = application.NewLibraryService(devicesRepo, settingsRepo, clock)

	logger.Debug("app wired", "bridge", tools.BridgePath, "mirror", tools.MirrorPath, "workers", cfg.Workers)
	return a, nil
}

func (a *app) requireBridge() error {
	return a.bridgeErr
}

func (a *app) requireMirror() error {
	if a.bridgeErr != nil {
		return a.bridgeErr
	}
	return a.mirrorErr
}

func (a *app) close() error {
	if a == nil || a.closeLog == nil {
		return nil
	}
	return a.closeLog()
}
