package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/limbcalc/internal/calc"
	"github.com/abhisek/limbcalc/internal/router"
	"github.com/abhisek/limbcalc/internal/store"
)

// mockAttemptRepo implements store.AttemptRepo for testing.
type mockAttemptRepo struct {
	attempts []store.Attempt
	err      error
	opts     store.QueryOpts
}

func (m *mockAttemptRepo) Append(_ context.Context, a store.Attempt) (store.Attempt, error) {
	return a, nil
}
func (m *mockAttemptRepo) Query(_ context.Context, opts store.QueryOpts) ([]store.Attempt, error) {
	m.opts = opts
	return m.attempts, m.err
}
func (m *mockAttemptRepo) Stats(_ context.Context) (store.Stats, error) {
	return store.Stats{}, nil
}
func (m *mockAttemptRepo) Clear(_ context.Context) (int64, error) {
	return 0, nil
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func loaded(t *testing.T, repo *mockAttemptRepo) *HistoryScreen {
	t.Helper()
	s := New(repo)
	s.Update(s.Init()())
	return s
}

func TestHistoryScreen_Empty(t *testing.T) {
	s := loaded(t, &mockAttemptRepo{})
	if !strings.Contains(s.View(80, 20), "Nothing counted yet") {
		t.Error("expected empty message")
	}
}

func TestHistoryScreen_LoadingAndError(t *testing.T) {
	s := New(&mockAttemptRepo{})
	if !strings.Contains(s.View(80, 20), "Loading") {
		t.Error("expected loading message before data arrives")
	}

	s = loaded(t, &mockAttemptRepo{err: errors.New("locked")})
	if !strings.Contains(s.View(80, 20), "Error: locked") {
		t.Error("expected error message")
	}
}

func TestHistoryScreen_ListsAttempts(t *testing.T) {
	ts := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	repo := &mockAttemptRepo{attempts: []store.Attempt{
		{Sequence: 3, Timestamp: ts, Input: "9+9", Total: 18, Count: 4, Status: calc.StatusCancelled},
		{Sequence: 2, Timestamp: ts, Input: "abc", Status: calc.StatusRejected, Message: "Error: Invalid numbers."},
		{Sequence: 1, Timestamp: ts, Input: "6+5", Total: 11, Count: 11, Status: calc.StatusCompleted, SessionID: "s-1"},
	}}
	s := loaded(t, repo)

	if repo.opts.Limit != pageSize {
		t.Errorf("query limit = %d, want %d", repo.opts.Limit, pageSize)
	}

	view := s.View(100, 30)
	for _, want := range []string{"stopped at 4 of 18", "rejected", "= 11"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Contains(view, "Invalid numbers") {
		t.Error("details shown before expanding")
	}

	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyEnter))
	if !strings.Contains(s.View(100, 30), "Error: Invalid numbers.") {
		t.Error("expected message after expanding")
	}

	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyDown))
	if s.selected != 2 {
		t.Errorf("selected = %d, want clamp at 2", s.selected)
	}
}

func TestHistoryScreen_EscPops(t *testing.T) {
	s := loaded(t, &mockAttemptRepo{})
	_, cmd := s.Update(specialKey(tea.KeyEscape))
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}
