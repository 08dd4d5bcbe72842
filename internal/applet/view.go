package applet

import (
	"PowerManager/internal/monitoring/cpu"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type styles struct {
	button       lipgloss.Style
	buttonActive lipgloss.Style
	popup        lipgloss.Style
	title        lipgloss.Style
	aggregate    lipgloss.Style
	core         lipgloss.Style
}

func defaultStyles() styles {
	button := lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("238"))
	return styles{
		button:       button,
		buttonActive: button.Background(lipgloss.Color("62")).Bold(true),
		popup: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Padding(1, 2),
		title:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		aggregate: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		core:      lipgloss.NewStyle(),
	}
}

// View renders the icon button and, while open, the popup beneath it
func (a *App) View() string {
	if a.quitting {
		return ""
	}

	button := a.styles.button
	if a.popup != nil {
		button = a.styles.buttonActive
	}

	parts := []string{button.Render(a.config.Applet.Icon + " CPU")}
	if a.popup != nil {
		parts = append(parts, a.viewPopup())
	}
	parts = append(parts, a.help.View(a.keys))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// viewPopup renders the popup container within the configured size limits
func (a *App) viewPopup() string {
	lines := cpu.Format(a.sample)

	content := make([]string, 0, len(lines.Cores)+3)
	if title := a.host.Title(); title != "" {
		content = append(content, a.styles.title.Render(title), "")
	}
	content = append(content, a.styles.aggregate.Render(lines.Aggregate))
	if a.config.Applet.ShowPerCore {
		for _, line := range lines.Cores {
			content = append(content, a.styles.core.Render(line))
		}
	}

	body := strings.Join(content, "\n")
	limits := a.config.Applet.Popup

	style := a.styles.popup.
		Width(clamp(lipgloss.Width(body)+a.styles.popup.GetHorizontalPadding(), limits.MinWidth, limits.MaxWidth)).
		Height(limits.MinHeight)

	if maxHeight := a.maxPopupHeight(); maxHeight > 0 {
		style = style.MaxHeight(maxHeight)
	}

	return style.Render(body)
}

// maxPopupHeight caps the popup at the configured limit and the terminal height
func (a *App) maxPopupHeight() int {
	limit := a.config.Applet.Popup.MaxHeight
	if a.height > 0 {
		// button and help lines stay visible
		available := a.height - 2
		if limit <= 0 || available < limit {
			limit = available
		}
	}
	return limit
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
