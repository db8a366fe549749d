package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	devicesrender "github.com/bnema/droidmirror/internal/adapters/render/devices"
	"github.com/bnema/droidmirror/internal/domain"
	"github.com/spf13/cobra"
)

func newMirrorCmd(app *app) *cobra.Command {
	var (
		maxSize       int
		bitRate       int
		maxFPS        int
		alwaysOnTop   bool
		stayAwake     bool
		turnScreenOff bool
	)

	cmd := &cobra.Command{
		Use:   "mirror <device-id>...",
		Short: "Mirror one or more devices with scrcpy until every window is closed",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.requireMirror(); err != nil {
				return err
			}

			settings, err := app.library.Settings(cmd.Context())
			if err != nil {
				return err
			}
			opts := settings.MirrorOptions()

			flags := cmd.Flags()
			if flags.Changed("max-size") {
				opts.MaxSize = maxSize
			}
			if flags.Changed("bit-rate") {
				opts.BitRate = bitRate
			}
			if flags.Changed("max-fps") {
				opts.MaxFPS = maxFPS
			}
			if flags.Changed("always-on-top") {
				opts.AlwaysOnTop = alwaysOnTop
			}
			if flags.Changed("stay-awake") {
				opts.StayAwake = stayAwake
			}
			if flags.Changed("turn-screen-off") {
				opts.TurnScreenOff = turnScreenOff
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			results, startErr := app.mirror.StartMany(ctx, args, opts)
			started := 0
			for _, result := range results {
				if result.Err != nil {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "%v\n", result.Err)
					continue
				}
				started++
				if err := app.library.TouchDevice(cmd.Context(), result.DeviceID); err != nil {
					app.logger.Warn("touch saved device failed", "device_id", result.DeviceID, "error", err)
				}
			}
			if started == 0 {
				return startErr
			}

			if err := writeRendered(cmd, "sessions", func() (string, error) {
				return app.renderSessions(app.mirror.Sessions(), devicesrender.RenderOptions{Now: app.now()})
			}); err != nil {
				app.mirror.StopAll()
				return err
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Press Ctrl+C to stop mirroring.")

			app.mirror.Supervise(ctx, app.cfg.SuperviseInterval, func(id domain.SessionID) {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Session %s ended\n", id)
			})

			if startErr != nil {
				return fmt.Errorf("some devices could not be mirrored: %w", startErr)
			}
			if errors.Is(ctx.Err(), context.Canceled) && cmd.Context().Err() == nil {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Mirroring stopped.")
			}
			return nil
		},
	}

	defaults := domain.DefaultMirrorOptions()
	cmd.Flags().IntVar(&maxSize, "max-size", defaults.MaxSize, "Limit the longer screen dimension in pixels (0 leaves scrcpy's default)")
	cmd.Flags().IntVar(&bitRate, "bit-rate", defaults.BitRate, "Video bit rate in bits per second (0 leaves scrcpy's default)")
	cmd.Flags().IntVar(&maxFPS, "max-fps", defaults.MaxFPS, "Limit the frame rate (0 leaves scrcpy's default)")
	cmd.Flags().BoolVar(&alwaysOnTop, "always-on-top", defaults.AlwaysOnTop, "Keep the mirror window above other windows")
	cmd.Flags().BoolVar(&stayAwake, "stay-awake", defaults.StayAwake, "Keep the device awake while mirroring")
	cmd.Flags().BoolVar(&turnScreenOff, "turn-screen-off", defaults.TurnScreenOff, "Turn the device screen off while mirroring")

	return cmd
}
