package cmd

import (
	"fmt"
	"net"
	"strconv"
	"time"

	devicesrender "github.com/bnema/droidmirror/internal/adapters/render/devices"
	"github.com/bnema/droidmirror/internal/domain"
	"github.com/spf13/cobra"
)

type savedDeviceJSON struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Model         string     `json:"model,omitempty"`
	Address       string     `json:"address,omitempty"`
	Port          int        `json:"port,omitempty"`
	Transport     string     `json:"transport"`
	LastConnected *time.Time `json:"last_connected,omitempty"`
}

func newSavedCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "saved",
		Short: "Manage saved devices",
	}

	cmd.AddCommand(
		newSavedListCmd(app),
		newSavedAddCmd(app),
		newSavedRenameCmd(app),
		newSavedRemoveCmd(app),
	)

	return cmd
}

func newSavedListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List saved devices, most recently connected first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			saved, err := app.library.SavedDevices(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				out := make([]savedDeviceJSON, 0, len(saved))
				for _, device := range saved {
					entry := savedDeviceJSON{
						ID:        device.ID,
						Name:      device.Name,
						Model:     device.Model,
						Address:   device.Address,
						Port:      device.Port,
						Transport: string(device.Transport),
					}
					if !device.LastConnected.IsZero() {
						at := device.LastConnected
						entry.LastConnected = &at
					}
					out = append(out, entry)
				}
				return writeJSON(cmd, out)
			}

			return writeRendered(cmd, "saved devices", func() (string, error) {
				return app.renderSaved(saved, devicesrender.RenderOptions{Now: app.now()})
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print saved devices as JSON")

	return cmd
}

func newSavedAddCmd(app *app) *cobra.Command {
	var (
		name  string
		model string
	)

	cmd := &cobra.Command{
		Use:   "add <device-id>",
		Short: "Save a device by serial or host:port",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			device := domain.SavedDevice{ID: args[0], Name: name, Model: model}
			if domain.TransportFromSerial(device.ID) == domain.TransportWireless {
				host, rawPort, err := net.SplitHostPort(device.ID)
				if err != nil {
					return fmt.Errorf("invalid address %q: %w", device.ID, err)
				}
				port, err := strconv.Atoi(rawPort)
				if err != nil {
					return fmt.Errorf("invalid port in %q", device.ID)
				}
				device.Address = host
				device.Port = port
			}

			if err := app.library.SaveDevice(cmd.Context(), device); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", args[0])
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&model, "model", "", "Device model")

	return cmd
}

func newSavedRenameCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <device-id> <name>",
		Short: "Change the display name of a saved device",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.library.RenameDevice(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Renamed %s to %q\n", args[0], args[1])
			return nil
		},
	}
}

func newSavedRemoveCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:     "remove <device-id>",
		Aliases: []string{"rm"},
		Short:   "Forget a saved device",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.library.RemoveDevice(cmd.Context(), args[0]); err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %s\n", args[0])
			return nil
		},
	}
}
