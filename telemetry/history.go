// Package telemetry provides the activity history buffers, the log
// console feed, windowed activity stats, and CSV output.
package telemetry

// History is a fixed-capacity FIFO ring of activity samples. The buffer
// starts zero-filled so it always holds exactly its capacity; pushing
// evicts the oldest sample. Values are never reordered.
type History struct {
	values     []float64
	writeIndex int
}

// NewHistory creates a zero-filled history of the given capacity.
func NewHistory(capacity int) *History {
	if capacity < 1 {
		capacity = 1
	}
	return &History{values: make([]float64, capacity)}
}

// Push appends a sample, evicting the oldest.
func (h *History) Push(v float64) {
	h.values[h.writeIndex] = v
	h.writeIndex = (h.writeIndex + 1) % len(h.values)
}

// Len returns the buffer capacity (and length; the buffer is always full).
func (h *History) Len() int {
	return len(h.values)
}

// Values returns the samples oldest-first.
func (h *History) Values() []float64 {
	out := make([]float64, len(h.values))
	for i := range h.values {
		out[i] = h.values[(h.writeIndex+i)%len(h.values)]
	}
	return out
}

// Last returns the most recent sample.
func (h *History) Last() float64 {
	idx := h.writeIndex - 1
	if idx < 0 {
		idx += len(h.values)
	}
	return h.values[idx]
}
