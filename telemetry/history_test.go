package telemetry

import "testing"

func TestHistoryAlwaysFull(t *testing.T) {
	h := NewHistory(100)

	if h.Len() != 100 {
		t.Fatalf("Len = %d, want 100", h.Len())
	}
	if got := len(h.Values()); got != 100 {
		t.Errorf("len(Values()) = %d before any push, want 100", got)
	}

	for i := 0; i < 37; i++ {
		h.Push(float64(i))
	}
	if got := len(h.Values()); got != 100 {
		t.Errorf("len(Values()) = %d after pushes, want 100", got)
	}
}

func TestHistoryFIFOOrder(t *testing.T) {
	h := NewHistory(5)

	for i := 1; i <= 8; i++ {
		h.Push(float64(i))
	}

	// The most recent 5 values, oldest first.
	want := []float64{4, 5, 6, 7, 8}
	got := h.Values()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Values()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
	if h.Last() != 8 {
		t.Errorf("Last = %v, want 8", h.Last())
	}
}

func TestHistoryManyPushesKeepMostRecent(t *testing.T) {
	h := NewHistory(100)
	for i := 0; i < 1000; i++ {
		h.Push(float64(i))
	}

	got := h.Values()
	for i := 0; i < 100; i++ {
		want := float64(900 + i)
		if got[i] != want {
			t.Fatalf("Values()[%d] = %v, want %v", i, got[i], want)
		}
	}
}

func TestHistoryDegenerateCapacity(t *testing.T) {
	h := NewHistory(0)
	if h.Len() != 1 {
		t.Errorf("Len = %d for clamped capacity, want 1", h.Len())
	}
	h.Push(3)
	if h.Last() != 3 {
		t.Errorf("Last = %v, want 3", h.Last())
	}
}
