package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/limbcalc/internal/calc"
	"github.com/abhisek/limbcalc/internal/store"
	"github.com/abhisek/limbcalc/internal/ui/theme"
)

const arcadeTitleFull = ` ██╗     ██╗███╗   ███╗██████╗  ██████╗ █████╗ ██╗      ██████╗
 ██║     ██║████╗ ████║██╔══██╗██╔════╝██╔══██╗██║     ██╔════╝
 ██║     ██║██╔████╔██║██████╔╝██║     ███████║██║     ██║
 ██║     ██║██║╚██╔╝██║██╔══██╗██║     ██╔══██║██║     ██║
 ███████╗██║██║ ╚═╝ ██║██████╔╝╚██████╗██║  ██║███████╗╚██████╗
 ╚══════╝╚═╝╚═╝     ╚═╝╚═════╝  ╚═════╝╚═╝  ╚═╝╚══════╝ ╚═════╝`

const arcadeTitleCompact = "L · I · M · B · C · A · L · C"

// contentWidth returns the uniform inner width used for all sections.
func contentWidth(frameWidth int) int {
	// Leave room for cabinet border (2) + inner padding (4)
	w := frameWidth - 6
	if w > 66 {
		w = 66
	}
	if w < 20 {
		w = 20
	}
	return w
}

func renderTitle(cw int, compact bool) string {
	art := arcadeTitleFull
	if compact {
		art = arcadeTitleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(art))
}

// renderStatsBar summarizes stored attempts in a double-bordered box.
func renderStatsBar(st store.Stats, cw int, compact bool) string {
	counted := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	best := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)

	done := st.ByStatus[calc.StatusCompleted]
	var stats string
	switch {
	case st.Total == 0:
		stats = dim.Render("NO SUMS YET")
	case compact:
		stats = fmt.Sprintf("%s %s",
			counted.Render(fmt.Sprintf("✋%d", done)),
			best.Render(fmt.Sprintf("▲%d", st.LargestSum)))
	default:
		stats = fmt.Sprintf("%s  %s",
			counted.Render(fmt.Sprintf("✋ %d COUNTED", done)),
			best.Render(fmt.Sprintf("▲ BIGGEST %d", st.LargestSum)))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2). // account for border chars
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 22

// renderArcadeMenu renders each menu item as a fixed-width button, or as
// plain lines when compact.
func renderArcadeMenu(items []string, selected int, cw int, compact bool) string {
	selectedBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Bold(true).
		Foreground(theme.BgDark).
		Background(theme.ArcadeYellow).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.ArcadeYellow).
		Padding(0, 1)

	normalBtn := lipgloss.NewStyle().
		Width(buttonWidth).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)

	if compact {
		selectedBtn = lipgloss.NewStyle().Foreground(theme.BgDark).Background(theme.ArcadeYellow).Bold(true)
		normalBtn = lipgloss.NewStyle().Foreground(theme.Text)
	}

	buttons := make([]string, 0, len(items))
	for i, label := range items {
		if i == selected {
			buttons = append(buttons, selectedBtn.Render("▸ "+label))
		} else {
			buttons = append(buttons, normalBtn.Render("  "+label))
		}
	}

	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}

// renderUpdateNote renders a dim one-line update notification.
func renderUpdateNote(latestVersion string, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render(fmt.Sprintf("New version %s available", latestVersion))
}

// renderCabinetFrame wraps content in a double-border cabinet frame,
// centering it vertically and horizontally within the given dimensions.
func renderCabinetFrame(content string, width, height int) string {
	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Primary).
		Width(width - 2).
		Height(height - 2).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}
