package cmd

import (
	"context"
	"fmt"
	"net"
	"strconv"

	"github.com/bnema/droidmirror/internal/domain"
	"github.com/spf13/cobra"
)

func newWirelessCmd(app *app) *cobra.Command {
	var (
		save      bool
		noConnect bool
	)

	cmd := &cobra.Command{
		Use:   "wireless <device-id>",
		Short: "Switch a USB device to wireless debugging and connect to it",
		Long: "wireless restarts adb on the device in TCP mode on port 5555, waits for the device to come back " +
			"over USB to read its WiFi address, then connects to it over the network.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireBridge(); err != nil {
				return err
			}

			deviceID := args[0]
			var ip string
			err := runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Enabling wireless mode on "+deviceID+"...", func(ctx context.Context) error {
				var err error
				ip, err = app.reconnect.EnableWireless(ctx, deviceID)
				return err
			})
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wireless mode enabled: %s\n", ip)

			if noConnect {
				if save {
					return saveWirelessDevice(cmd, app, net.JoinHostPort(ip, strconv.Itoa(domain.DefaultWirelessPort)))
				}
				return nil
			}

			address, err := app.reconnect.Connect(cmd.Context(), ip, domain.DefaultWirelessPort)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Connected to %s\n", address)

			if save {
				return saveWirelessDevice(cmd, app, address)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "Remember the wireless address in the saved list")
	cmd.Flags().BoolVar(&noConnect, "no-connect", false, "Only enable wireless mode and print the address")

	return cmd
}

// saveWirelessDevice remembers address, with its model when the device is
// already listed under that address.
func saveWirelessDevice(cmd *cobra.Command, app *app, address string) error {
	devices, err := app.catalog.Enumerate(cmd.Context())
	if err != nil {
		app.logger.Debug("listing for saved device failed", "device_id", address, "error", err)
	}
	for _, device := range devices {
		if device.Serial == address {
			saved, err := app.library.RememberDevice(cmd.Context(), device)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved %s as %q\n", saved.ID, saved.Name)
			return nil
		}
	}

	saved := domain.SavedDevice{ID: address, Transport: domain.TransportWireless, LastConnected: app.now()}
	if host, rawPort, err := net.SplitHostPort(address); err == nil {
		saved.Address = host
		saved.Port, _ = strconv.Atoi(rawPort)
	}
	if err := app.library.SaveDevice(cmd.Context(), saved); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", address)
	return nil
}
