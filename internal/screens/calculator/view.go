package calculator

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/limbcalc/internal/calc"
	"github.com/abhisek/limbcalc/internal/limbs"
	"github.com/abhisek/limbcalc/internal/ui/components"
	"github.com/abhisek/limbcalc/internal/ui/theme"
)

const (
	pictureWidth  = 44
	pictureHeight = 5

	glyphCounted = "●"
	glyphIdle    = "○"
)

func (s *CalculatorScreen) View(width, height int) string {
	var body string
	switch s.machine.Kind() {
	case calc.KindAnimating:
		sess, _ := s.machine.Session()
		body = s.renderAnimating(sess, width)
	case calc.KindResult:
		body = s.renderResult()
	default:
		body = s.renderInput()
	}
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(body)
}

func (s *CalculatorScreen) renderInput() string {
	prompt := theme.Title.Render("Add two numbers")
	hint := theme.Hint.Render(fmt.Sprintf("Type something like 6+5. Sums up to %d fit on fingers and toes.", calc.MaxLimbs))
	box := theme.Card.Width(30).Render(s.input.View())
	return lipgloss.JoinVertical(lipgloss.Center, prompt, "", box, "", hint)
}

func (s *CalculatorScreen) renderResult() string {
	style := theme.Correct
	if s.machine.Err() != nil {
		style = theme.Incorrect
	}
	text := style.Render(s.machine.ResultText())
	return lipgloss.JoinVertical(lipgloss.Center,
		theme.Card.Render(s.input.View()),
		"",
		text,
		"",
		theme.Hint.Render("Press Enter to count again"),
	)
}

func (s *CalculatorScreen) renderAnimating(sess calc.Session, width int) string {
	expr := lipgloss.NewStyle().Foreground(theme.FirstOperand).Bold(true).Render(fmt.Sprint(sess.Operand1)) +
		theme.Body.Render(" + ") +
		lipgloss.NewStyle().Foreground(theme.SecondOperand).Bold(true).Render(fmt.Sprint(sess.Operand2))

	sections := []string{theme.Title.Render("Counting..."), "", expr, ""}
	sections = append(sections, renderLimbs(sess)...)

	bar := components.ProgressBar{
		Current: sess.Count,
		Total:   sess.Total,
		Width:   min(pictureWidth, width-4),
		Fill:    operandColor(sess, sess.Count),
	}
	sections = append(sections, "", bar.View())

	if sess.Count > 0 {
		if p, err := limbs.Resolve(calc.Cue(sess.Count)); err == nil {
			sections = append(sections, theme.Hint.Render(p.Label()))
		}
	}
	return lipgloss.JoinVertical(lipgloss.Center, sections...)
}

// renderLimbs draws one picture per limb group, placing each slot at its
// anchor. Counted slots take the colour of the operand they belong to.
func renderLimbs(sess calc.Session) []string {
	byGroup := map[limbs.Group][]limbs.Position{}
	for _, p := range limbs.Slots(sess.Total) {
		byGroup[p.Group] = append(byGroup[p.Group], p)
	}

	var out []string
	for _, g := range []limbs.Group{limbs.Hands, limbs.Feet} {
		slots, ok := byGroup[g]
		if !ok {
			continue
		}
		out = append(out, renderPicture(sess, slots), renderCaption(g))
	}
	return out
}

func renderPicture(sess calc.Session, slots []limbs.Position) string {
	var grid [pictureHeight][pictureWidth]string
	for _, p := range slots {
		x := int(math.Round(p.Anchor.X * (pictureWidth - 1)))
		y := int(math.Round(p.Anchor.Y * (pictureHeight - 1)))

		n := int(p.Cue)
		glyph := lipgloss.NewStyle().Foreground(theme.LimbIdle).Render(glyphIdle)
		if n <= sess.Count {
			glyph = lipgloss.NewStyle().Foreground(operandColor(sess, n)).Render(glyphCounted)
		}
		grid[y][x] = glyph
	}

	rows := make([]string, 0, pictureHeight)
	for _, row := range grid {
		var b strings.Builder
		for _, cell := range row {
			if cell == "" {
				cell = " "
			}
			b.WriteString(cell)
		}
		rows = append(rows, strings.TrimRight(b.String(), " "))
	}
	// Keep the block width stable so captions line up.
	return lipgloss.NewStyle().Width(pictureWidth).Render(strings.Join(rows, "\n"))
}

func renderCaption(g limbs.Group) string {
	left := fmt.Sprintf("left %s", limbName(g))
	right := fmt.Sprintf("right %s", limbName(g))
	gap := pictureWidth - len(left) - len(right)
	if gap < 1 {
		gap = 1
	}
	return theme.Hint.Render(left + strings.Repeat(" ", gap) + right)
}

func limbName(g limbs.Group) string {
	if g == limbs.Feet {
		return "foot"
	}
	return "hand"
}

func operandColor(sess calc.Session, n int) color.Color {
	if sess.FromFirst(n) {
		return theme.FirstOperand
	}
	return theme.SecondOperand
}
