package devices

import (
	"github.com/bnema/droidmirror/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	column    lipgloss.Style
	serial    lipgloss.Style
	detail    lipgloss.Style
	faint     lipgloss.Style
	empty     lipgloss.Style
	section   lipgloss.Style
	connected lipgloss.Style
	warning   lipgloss.Style
	offline   lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:     lipgloss.NewStyle().Bold(true),
		header:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		column:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("250")),
		serial:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		faint:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		empty:     lipgloss.NewStyle().Faint(true),
		section:   lipgloss.NewStyle().MarginTop(1),
		connected: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),
		warning:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214")),
		offline:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	}
}

func (s styles) state(state domain.DeviceState) lipgloss.Style {
	switch state {
	case domain.DeviceStateConnected:
		return s.connected
	case domain.DeviceStateUnauthorized:
		return s.warning
	default:
		return s.offline
	}
}
