package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/limbcalc/internal/ui/theme"
)

const (
	MinWidth  = 80
	MinHeight = 24

	CompactWidthThreshold  = 100
	CompactHeightThreshold = 30

	appName = "✋ Limbcalc"
)

// KeyHint represents a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsCompactWidth returns true if the terminal width is in compact range.
func IsCompactWidth(width int) bool {
	return width < CompactWidthThreshold
}

// IsCompactHeight returns true if the terminal height is in compact range.
func IsCompactHeight(height int) bool {
	return height < CompactHeightThreshold
}

// IsTooSmall reports whether the limb pictures and menus cannot fit.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// RenderMinSizeMessage asks for a larger terminal, showing what is
// needed next to what is available.
func RenderMinSizeMessage(width, height int) string {
	need := lipgloss.NewStyle().Foreground(theme.Accent).Bold(true)
	have := lipgloss.NewStyle().Foreground(theme.TextDim)

	body := lipgloss.JoinVertical(lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.Text).Render("Not enough room to count\non fingers and toes."),
		"",
		"needs "+need.Render(fmt.Sprintf("%d×%d", MinWidth, MinHeight)),
		have.Render(fmt.Sprintf("have %d×%d", width, height)),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, body)
}

// RenderHeader renders the title bar. While a count runs (count >= 0) the
// right side shows how many limbs of the total are lit.
func RenderHeader(title string, count, total int, width int) string {
	left := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(appName)
	center := lipgloss.NewStyle().Foreground(theme.Text).Render(title)

	var right string
	if count >= 0 {
		right = lipgloss.NewStyle().Foreground(theme.Accent).Render(fmt.Sprintf("%d/%d limbs", count, total))
	}

	return bar(width).Render(spread(width-4, left, center, right))
}

// RenderFooter renders the key hints separated by dots.
func RenderFooter(hints []KeyHint, width int) string {
	key := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	desc := lipgloss.NewStyle().Foreground(theme.TextDim)
	sep := desc.Render(" · ")

	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, key.Render(h.Key)+" "+desc.Render(h.Description))
	}
	return bar(width).Render(" " + strings.Join(parts, sep))
}

// RenderFrame stacks header, content and footer, giving the content
// whatever height the two bars leave.
func RenderFrame(header, content, footer string, width, height int) string {
	contentHeight := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(contentHeight).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// bar is the bordered strip used above and below the content.
func bar(width int) lipgloss.Style {
	return lipgloss.NewStyle().
		Width(width).
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border)
}

// spread places left at the start, center in the middle and right at the
// end of a line of the given width, keeping at least one space between.
func spread(width int, left, center, right string) string {
	lw, cw, rw := lipgloss.Width(left), lipgloss.Width(center), lipgloss.Width(right)

	leftGap := max((width-cw)/2-lw, 1)
	rightGap := max(width-lw-leftGap-cw-rw, 1)
	return left + strings.Repeat(" ", leftGap) + center + strings.Repeat(" ", rightGap) + right
}
