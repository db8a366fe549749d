package cmd

import (
	"fmt"

	"github.com/bnema/droidmirror/internal/domain"
	"github.com/spf13/cobra"
)

func newConnectCmd(app *app) *cobra.Command {
	var (
		port int
		save bool
	)

	cmd := &cobra.Command{
		Use:   "connect <host>",
		Short: "Connect to a device over the network",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireBridge(); err != nil {
				return err
			}

			address, err := app.reconnect.Connect(cmd.Context(), args[0], port)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Connected to %s\n", address)

			if save {
				return saveWirelessDevice(cmd, app, address)
			}
			if err := app.library.TouchDevice(cmd.Context(), address); err != nil {
				app.logger.Warn("touch saved device failed", "device_id", address, "error", err)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&port, "port", domain.DefaultWirelessPort, "Device port")
	cmd.Flags().BoolVar(&save, "save", false, "Remember the device in the saved list")

	return cmd
}

func newDisconnectCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "disconnect <address>",
		Short: "Disconnect a wireless device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireBridge(); err != nil {
				return err
			}

			out, err := app.reconnect.Disconnect(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if out == "" {
				out = "disconnected " + args[0]
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}
