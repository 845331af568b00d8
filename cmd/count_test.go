package cmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/limbcalc/internal/calc"
	"github.com/abhisek/limbcalc/internal/store"
)

func openTestStore(t *testing.T) *store.Store {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	st, err := store.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

var fastCount = countOptions{Interval: time.Millisecond, Hz: 1000}

func TestRunCountPrintsEachLimb(t *testing.T) {
	st := openTestStore(t)
	var out, errOut bytes.Buffer
	var cues calc.CueQueue

	err := runCount(context.Background(), &out, &errOut, "6+5", fastCount, &cues, st.AttemptRepo())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 13) // toes note + 11 limbs + result
	assert.Equal(t, "(using toes too)", lines[0])
	assert.Equal(t, " 1  left hand, finger 1", lines[1])
	assert.Equal(t, "11  left foot, toe 1", lines[11])
	assert.Equal(t, "6 + 5 = 11", lines[12])
	assert.Empty(t, errOut.String())
	assert.Len(t, cues.Drain(), 11)

	attempts, err := st.AttemptRepo().Query(context.Background(), store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, calc.StatusCompleted, attempts[0].Status)
}

func TestRunCountQuiet(t *testing.T) {
	var out, errOut bytes.Buffer
	opts := fastCount
	opts.Quiet = true

	require.NoError(t, runCount(context.Background(), &out, &errOut, "2+3", opts, nil, nil))
	assert.Equal(t, "2 + 3 = 5\n", out.String())
}

func TestRunCountRejects(t *testing.T) {
	tests := []struct {
		expr     string
		message  string
		sentinel error
	}{
		{"3", "Error: Use the format 'number+number'.", calc.ErrFormat},
		{"-1+2", "Error: Invalid numbers.", calc.ErrNumber},
		{"15+10", "Error: Sum (25) is greater than 20. I've run out of limbs!", calc.ErrLimit},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			st := openTestStore(t)
			var out, errOut bytes.Buffer

			err := runCount(context.Background(), &out, &errOut, tt.expr, fastCount, nil, st.AttemptRepo())
			require.Error(t, err)
			assert.True(t, errors.Is(err, errNotCounted))
			assert.True(t, errors.Is(err, tt.sentinel))
			assert.Equal(t, tt.message+"\n", errOut.String())
			assert.Empty(t, out.String())

			attempts, err := st.AttemptRepo().Query(context.Background(), store.QueryOpts{})
			require.NoError(t, err)
			require.Len(t, attempts, 1)
			assert.Equal(t, calc.StatusRejected, attempts[0].Status)
		})
	}
}

func TestRunCountInterrupted(t *testing.T) {
	st := openTestStore(t)
	var out, errOut bytes.Buffer

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	opts := countOptions{Interval: time.Hour, Hz: 100}

	err := runCount(ctx, &out, &errOut, "9+9", opts, nil, st.AttemptRepo())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errNotCounted))
	assert.Equal(t, "Stopped at 0 of 18.\n", errOut.String())

	attempts, err := st.AttemptRepo().Query(context.Background(), store.QueryOpts{})
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, calc.StatusCancelled, attempts[0].Status)
}
