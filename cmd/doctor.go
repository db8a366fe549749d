package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/droidmirror/internal/config"
	"github.com/spf13/cobra"
)

var errDoctorFailed = errors.New("some checks failed")

func newDoctorCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check that adb and scrcpy are usable",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			failed := false
			report := func(label, value string, err error) {
				if err != nil {
					failed = true
					_, _ = fmt.Fprintf(out, "[fail] %s: %v\n", label, err)
					return
				}
				_, _ = fmt.Fprintf(out, "[ok]   %s: %s\n", label, value)
			}

			if err := app.requireBridge(); err != nil {
				report("adb", "", err)
			} else {
				bridgeVersion, err := app.bridge.Version(cmd.Context())
				first, _, _ := strings.Cut(bridgeVersion, "\n")
				report("adb", fmt.Sprintf("%s (%s)", app.tools.BridgePath, strings.TrimSpace(first)), err)
			}

			if err := app.requireMirror(); err != nil {
				report("scrcpy", "", err)
			} else {
				mirrorVersion, err := app.mirror.ToolVersion(cmd.Context())
				report("scrcpy", fmt.Sprintf("%s (%s)", app.tools.MirrorPath, mirrorVersion), err)
				report("scrcpy working directory", app.tools.MirrorDir, nil)
			}

			report("config directory", config.ConfigDir(), nil)
			report("saved devices file", app.devicesPath, nil)
			report("settings file", app.settingsPath, nil)

			if failed {
				return errDoctorFailed
			}
			return nil
		},
	}
}
