package home

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/limbcalc/internal/calc"
	"github.com/abhisek/limbcalc/internal/router"
	"github.com/abhisek/limbcalc/internal/screen"
	"github.com/abhisek/limbcalc/internal/screens/calculator"
	"github.com/abhisek/limbcalc/internal/screens/history"
	"github.com/abhisek/limbcalc/internal/store"
	"github.com/abhisek/limbcalc/internal/ui/components"
	"github.com/abhisek/limbcalc/internal/ui/layout"
)

// Options configures the home screen and the screens it opens.
type Options struct {
	Calculator    calculator.Options
	Attempts      store.AttemptRepo // optional; hides stats and history when nil
	LatestVersion string            // shown as an update note when set
}

type statsLoadedMsg struct {
	Stats store.Stats
	Err   error
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	opts   Options
	menu   components.Menu
	labels []string
	stats  store.Stats
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)
var _ screen.Resumer = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(opts Options) *HomeScreen {
	items := []components.MenuItem{
		{Label: "COUNT!", Hotkey: "c", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: calculator.New(opts.Calculator)}
			}
		}},
	}
	if opts.Attempts != nil {
		items = append(items, components.MenuItem{Label: "HISTORY", Hotkey: "h", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: history.New(opts.Attempts)}
			}
		}})
	}
	items = append(items, components.MenuItem{Label: "QUIT", Hotkey: "q", Action: func() tea.Cmd {
		return tea.Quit
	}})

	labels := make([]string, len(items))
	for i, it := range items {
		labels[i] = it.Label
	}

	return &HomeScreen{
		opts:   opts,
		menu:   components.NewMenu(items),
		labels: labels,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.loadStats()
}

// Resume refreshes the stats when the home screen is shown again.
func (h *HomeScreen) Resume() tea.Cmd {
	return h.loadStats()
}

func (h *HomeScreen) loadStats() tea.Cmd {
	repo := h.opts.Attempts
	if repo == nil {
		return nil
	}
	return func() tea.Msg {
		st, err := repo.Stats(context.Background())
		return statsLoadedMsg{Stats: st, Err: err}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(statsLoadedMsg); ok {
		if msg.Err == nil {
			h.stats = msg.Stats
		}
		return h, nil
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; add back header (3) + footer (3) + frame gaps
	compact := layout.IsCompactHeight(height+8) || layout.IsCompactWidth(width)

	cw := contentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(h.mascotVariant(), cw))
	}
	if h.opts.Attempts != nil {
		sections = append(sections, renderStatsBar(h.stats, cw, compact))
	}
	sections = append(sections, renderArcadeMenu(h.labels, h.menu.Selected, cw, compact))
	if h.opts.LatestVersion != "" {
		sections = append(sections, renderUpdateNote(h.opts.LatestVersion, cw))
	}

	return renderCabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}

// mascotVariant celebrates once a sum has used every finger and toe.
func (h *HomeScreen) mascotVariant() MascotVariant {
	if h.stats.LargestSum >= calc.MaxLimbs {
		return MascotCelebrating
	}
	return MascotIdle
}
