package devices

import (
	"fmt"
	"strconv"
	"time"

	"github.com/bnema/droidmirror/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
)

type RenderOptions struct {
	Now time.Time
}

func RenderDevices(devices []domain.Device) (string, error) {
	return run(func(s styles) string { return devicesView(devices, s) })
}

func RenderSessions(sessions []domain.SessionInfo, opts RenderOptions) (string, error) {
	return run(func(s styles) string { return sessionsView(sessions, opts, s) })
}

func RenderSavedDevices(saved []domain.SavedDevice, opts RenderOptions) (string, error) {
	return run(func(s styles) string { return savedView(saved, opts, s) })
}

func RenderSettings(settings domain.Settings) (string, error) {
	return run(func(s styles) string { return settingsView(settings, s) })
}

func devicesView(devices []domain.Device, s styles) string {
	lines := []string{
		s.title.Render("Android Devices"),
		s.header.Render(fmt.Sprintf("devices: %d", len(devices))),
	}
	if len(devices) == 0 {
		lines = append(lines, s.empty.Render("No devices found. Connect a device with USB debugging enabled."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	rows := make([][]string, 0, len(devices))
	states := make([]domain.DeviceState, 0, len(devices))
	for _, device := range devices {
		rows = append(rows, []string{
			device.Serial,
			device.ModelName,
			string(device.State),
			string(device.Transport()),
			orDash(device.IPAddress()),
		})
		states = append(states, device.State)
	}

	t := newTable(s, []string{"SERIAL", "MODEL", "STATE", "TRANSPORT", "IP"}, rows, func(row, col int) lipgloss.Style {
		switch col {
		case 0:
			return s.serial
		case 2:
			if row >= 0 && row < len(states) {
				return s.state(states[row])
			}
			return s.detail
		default:
			return s.detail
		}
	})

	lines = append(lines, s.section.Render(t.Render()))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func sessionsView(sessions []domain.SessionInfo, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Mirroring Sessions"),
		s.header.Render(fmt.Sprintf("active: %d", len(sessions))),
	}
	if len(sessions) == 0 {
		lines = append(lines, s.empty.Render("No active sessions."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	rows := make([][]string, 0, len(sessions))
	for _, session := range sessions {
		rows = append(rows, []string{
			string(session.ID),
			session.DeviceID,
			strconv.Itoa(session.PID),
			since(session.StartedAt, opts.Now),
		})
	}

	t := newTable(s, []string{"SESSION", "DEVICE", "PID", "STARTED"}, rows, func(_, col int) lipgloss.Style {
		if col == 0 {
			return s.serial
		}
		return s.detail
	})

	lines = append(lines, s.section.Render(t.Render()))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func savedView(saved []domain.SavedDevice, opts RenderOptions, s styles) string {
	lines := []string{
		s.title.Render("Saved Devices"),
		s.header.Render(fmt.Sprintf("saved: %d", len(saved))),
	}
	if len(saved) == 0 {
		lines = append(lines, s.empty.Render("No saved devices."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	rows := make([][]string, 0, len(saved))
	for _, device := range saved {
		rows = append(rows, []string{
			device.ID,
			device.Name,
			orDash(device.Model),
			string(device.Transport),
			orDash(device.Endpoint()),
			since(device.LastConnected, opts.Now),
		})
	}

	t := newTable(s, []string{"ID", "NAME", "MODEL", "TRANSPORT", "ADDRESS", "LAST SEEN"}, rows, func(_, col int) lipgloss.Style {
		if col == 0 {
			return s.serial
		}
		return s.detail
	})

	lines = append(lines, s.section.Render(t.Render()))
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func settingsView(settings domain.Settings, s styles) string {
	rows := [][]string{
		{"resolution", settings.Resolution},
		{"bitrate", bitrate(settings.Bitrate)},
		{"max_fps", limit(settings.MaxFPS)},
		{"always_on_top", strconv.FormatBool(settings.AlwaysOnTop)},
		{"stay_awake", strconv.FormatBool(settings.StayAwake)},
		{"turn_screen_off", strconv.FormatBool(settings.TurnScreenOff)},
	}

	t := newTable(s, []string{"SETTING", "VALUE"}, rows, func(_, col int) lipgloss.Style {
		if col == 0 {
			return s.faint
		}
		return s.detail
	})

	return lipgloss.JoinVertical(lipgloss.Left,
		s.title.Render("Mirroring Settings"),
		s.section.Render(t.Render()),
	)
}

func newTable(s styles, headers []string, rows [][]string, cell func(row, col int) lipgloss.Style) *table.Table {
	return table.New().
		Border(lipgloss.HiddenBorder()).
		BorderHeader(false).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return s.column.PaddingRight(2)
			}
			return cell(row, col).PaddingRight(2)
		})
}

func since(at, now time.Time) string {
	if at.IsZero() {
		return "never"
	}
	if now.IsZero() {
		return at.Format(time.RFC3339)
	}
	return humanize.RelTime(at, now, "ago", "from now")
}

func bitrate(bps int) string {
	if bps <= 0 {
		return "tool default"
	}
	return humanize.SI(float64(bps), "b/s")
}

func limit(v int) string {
	if v <= 0 {
		return "tool default"
	}
	return humanize.Comma(int64(v))
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}
