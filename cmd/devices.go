package cmd

import (
	"github.com/bnema/droidmirror/internal/domain"
	"github.com/spf13/cobra"
)

type deviceJSON struct {
	Serial    string `json:"serial"`
	State     string `json:"state"`
	Transport string `json:"transport"`
	Model     string `json:"model"`
	Product   string `json:"product,omitempty"`
	Codename  string `json:"codename,omitempty"`
	IP        string `json:"ip,omitempty"`
}

func newDevicesCmd(app *app) *cobra.Command {
	var (
		asJSON bool
		save   bool
	)

	cmd := &cobra.Command{
		Use:   "devices",
		Short: "List devices visible to adb",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.requireBridge(); err != nil {
				return err
			}

			devices, err := listDevices(cmd, app)
			if err != nil {
				return err
			}

			if save {
				for _, device := range devices {
					if !device.IsConnected() {
						continue
					}
					if _, err := app.library.RememberDevice(cmd.Context(), device); err != nil {
						return err
					}
				}
			}

			if asJSON {
				out := make([]deviceJSON, 0, len(devices))
				for _, device := range devices {
					out = append(out, deviceJSON{
						Serial:    device.Serial,
						State:     string(device.State),
						Transport: string(device.Transport()),
						Model:     device.ModelName,
						Product:   device.Product,
						Codename:  device.Codename,
						IP:        device.IPAddress(),
					})
				}
				return writeJSON(cmd, out)
			}

			return writeRendered(cmd, "devices", func() (string, error) {
				return app.renderDevices(devices)
			})
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print devices as JSON")
	cmd.Flags().BoolVar(&save, "save", false, "Remember connected devices in the saved list")

	return cmd
}

// listDevices starts the adb server first so its daemon notices never end up
// in the listing.
func listDevices(cmd *cobra.Command, app *app) ([]domain.Device, error) {
	if err := app.bridge.StartServer(cmd.Context()); err != nil {
		app.logger.Debug("start adb server failed", "error", err)
	}
	return app.catalog.Enumerate(cmd.Context())
}
