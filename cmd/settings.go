package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/bnema/droidmirror/internal/domain"
	"github.com/spf13/cobra"
)

type settingsJSON struct {
	Resolution    string `json:"resolution"`
	Bitrate       int    `json:"bitrate"`
	MaxFPS        int    `json:"max_fps"`
	AlwaysOnTop   bool   `json:"always_on_top"`
	StayAwake     bool   `json:"stay_awake"`
	TurnScreenOff bool   `json:"turn_screen_off"`
}

var settingSetters = map[string]func(*domain.Settings, string) error{
	"resolution": func(s *domain.Settings, value string) error {
		s.Resolution = strings.TrimSpace(value)
		return nil
	},
	"bitrate":         intSetter(func(s *domain.Settings, v int) { s.Bitrate = v }),
	"max_fps":         intSetter(func(s *domain.Settings, v int) { s.MaxFPS = v }),
	"always_on_top":   boolSetter(func(s *domain.Settings, v bool) { s.AlwaysOnTop = v }),
	"stay_awake":      boolSetter(func(s *domain.Settings, v bool) { s.StayAwake = v }),
	"turn_screen_off": boolSetter(func(s *domain.Settings, v bool) { s.TurnScreenOff = v }),
}

func newSettingsCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show or change mirroring defaults",
	}

	cmd.AddCommand(
		newSettingsShowCmd(app),
		newSettingsSetCmd(app),
		newSettingsResetCmd(app),
	)

	return cmd
}

func newSettingsShowCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show mirroring defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := app.library.Settings(cmd.Context())
			if err != nil {
				return err
			}
			return writeSettings(cmd, app, settings, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print settings as JSON")

	return cmd
}

func newSettingsSetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Change one mirroring default (" + strings.Join(settingKeys(), ", ") + ")",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := strings.ToLower(strings.TrimSpace(args[0]))
			setter, ok := settingSetters[key]
			if !ok {
				return fmt.Errorf("unknown setting %q (want one of %s)", args[0], strings.Join(settingKeys(), ", "))
			}

			settings, err := app.library.UpdateSettings(cmd.Context(), func(s *domain.Settings) error {
				if err := setter(s, args[1]); err != nil {
					return fmt.Errorf("%s: %w", key, err)
				}
				return nil
			})
			if err != nil {
				return err
			}
			return writeSettings(cmd, app, settings, false)
		},
	}
}

func newSettingsResetCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "reset",
		Short: "Restore the default mirroring settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			settings, err := app.library.ResetSettings(cmd.Context())
			if err != nil {
				return err
			}
			return writeSettings(cmd, app, settings, false)
		},
	}
}

func writeSettings(cmd *cobra.Command, app *app, settings domain.Settings, asJSON bool) error {
	if asJSON {
		return writeJSON(cmd, settingsJSON{
			Resolution:    settings.Resolution,
			Bitrate:       settings.Bitrate,
			MaxFPS:        settings.MaxFPS,
			AlwaysOnTop:   settings.AlwaysOnTop,
			StayAwake:     settings.StayAwake,
			TurnScreenOff: settings.TurnScreenOff,
		})
	}

	return writeRendered(cmd, "settings", func() (string, error) {
		return app.renderSettings(settings)
	})
}

func settingKeys() []string {
	keys := make([]string, 0, len(settingSetters))
	for key := range settingSetters {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func intSetter(apply func(*domain.Settings, int)) func(*domain.Settings, string) error {
	return func(s *domain.Settings, value string) error {
		v, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("want an integer, got %q", value)
		}
		apply(s, v)
		return nil
	}
}

func boolSetter(apply func(*domain.Settings, bool)) func(*domain.Settings, string) error {
	return func(s *domain.Settings, value string) error {
		v, err := strconv.ParseBool(strings.TrimSpace(value))
		if err != nil {
			return fmt.Errorf("want true or false, got %q", value)
		}
		apply(s, v)
		return nil
	}
}
