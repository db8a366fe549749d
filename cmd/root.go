package cmd

import (
	"github.com/spf13/cobra"
)

var version = "dev"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var (
		configFile string
		logLevel   string
	)

	// Commands hold the pointer; it is filled in once flags are parsed.
	app := &app{}

	rootCmd := &cobra.Command{
		Use:           "droidmirror",
		Short:         "Mirror Android devices from the terminal",
		Long:          "droidmirror lists Android devices visible to adb, mirrors their screens with scrcpy, and moves USB devices to wireless debugging.",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			wired, err := wireApp(wireOptions{
				ConfigFile: configFile,
				LogLevel:   logLevel,
				LogOutput:  cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}
			*app = *wired
			return nil
		},
		PersistentPostRunE: func(_ *cobra.Command, _ []string) error {
			return app.close()
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/droidmirror/config.toml)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: DEBUG, INFO, WARN or ERROR")

	rootCmd.AddCommand(
		newVersionCmd(),
		newDevicesCmd(app),
		newMirrorCmd(app),
		newWirelessCmd(app),
		newConnectCmd(app),
		newDisconnectCmd(app),
		newSavedCmd(app),
		newSettingsCmd(app),
		newDoctorCmd(app),
	)

	return rootCmd
}
