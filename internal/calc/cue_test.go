package calc

import (
	"errors"
	"testing"
)

func TestCueFor(t *testing.T) {
	tests := []struct {
		count, total int
		want         Cue
		wantErr      bool
	}{
		{1, 1, 1, false},
		{5, 11, 5, false},
		{20, 20, 20, false},
		{0, 5, 0, true},
		{6, 5, 0, true},
		{21, 25, 0, true},
		{-1, 5, 0, true},
	}
	for _, tt := range tests {
		got, err := CueFor(tt.count, tt.total)
		if tt.wantErr {
			if !errors.Is(err, ErrCueRange) {
				t.Errorf("CueFor(%d, %d) error = %v, want ErrCueRange", tt.count, tt.total, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("CueFor(%d, %d) unexpected error: %v", tt.count, tt.total, err)
			continue
		}
		if got != tt.want {
			t.Errorf("CueFor(%d, %d) = %d, want %d", tt.count, tt.total, got, tt.want)
		}
	}
}

func TestCueQueueDrain(t *testing.T) {
	var q CueQueue
	q.Emit(1)
	q.Emit(2)
	if q.Len() != 2 {
		t.Fatalf("Len = %d, want 2", q.Len())
	}
	got := q.Drain()
	if len(got) != 2 || got[0] != 1 || got[1] != 2 {
		t.Errorf("Drain = %v, want [1 2]", got)
	}
	if q.Len() != 0 {
		t.Errorf("expected empty queue after drain, got %d", q.Len())
	}
}

func TestTeeSkipsNilSinks(t *testing.T) {
	var a, b CueQueue
	sink := Tee(&a, nil, &b)
	sink.Emit(3)
	if a.Len() != 1 || b.Len() != 1 {
		t.Errorf("expected both queues to receive the cue, got %d and %d", a.Len(), b.Len())
	}
}

func TestCueFuncAdapter(t *testing.T) {
	var got []Cue
	var sink CueSink = CueFunc(func(c Cue) { got = append(got, c) })
	sink.Emit(7)
	if len(got) != 1 || got[0] != 7 {
		t.Errorf("got %v, want [7]", got)
	}
}
