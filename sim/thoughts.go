package sim

import (
	"math/rand"
	"time"
)

// thoughtFadeIn is the ramp-up period after spawn.
const thoughtFadeIn = 300 * time.Millisecond

// Thought is one live floating annotation. It fades in on spawn, holds for
// a randomized window, fades out, and is then removed.
type Thought struct {
	Text   string
	Anchor AnchorID
	Stack  int // vertical slot among thoughts sharing the anchor

	born time.Time
	hold time.Duration
	fade time.Duration
}

// Alpha returns the thought's opacity at the given time, in [0,1].
func (t *Thought) Alpha(now time.Time) float64 {
	age := now.Sub(t.born)
	switch {
	case age < 0:
		return 0
	case age < thoughtFadeIn:
		return float64(age) / float64(thoughtFadeIn)
	case age < t.hold:
		return 1
	case age < t.hold+t.fade:
		return 1 - float64(age-t.hold)/float64(t.fade)
	default:
		return 0
	}
}

// expired reports whether the thought's lifecycle has completed.
func (t *Thought) expired(now time.Time) bool {
	return now.Sub(t.born) >= t.hold+t.fade
}

// Board owns the live thought annotations. Spawns come in via the
// scheduler on stage entry; stage transitions clear the board.
type Board struct {
	now func() time.Time
	rng *rand.Rand

	holdMin float64 // seconds
	holdMax float64
	fadeSec float64

	active []Thought
}

// NewBoard creates a thought board. holdMin/holdMax bound the randomized
// fully-visible window in seconds; fade is the fade-out duration.
func NewBoard(now func() time.Time, rng *rand.Rand, holdMin, holdMax, fade float64) *Board {
	return &Board{
		now:     now,
		rng:     rng,
		holdMin: holdMin,
		holdMax: holdMax,
		fadeSec: fade,
	}
}

// Spawn adds a thought at the given anchor. Thoughts sharing an anchor
// stack vertically in spawn order.
func (b *Board) Spawn(text string, anchor AnchorID) {
	stack := 0
	for i := range b.active {
		if b.active[i].Anchor == anchor {
			stack++
		}
	}

	holdSec := b.holdMin + b.rng.Float64()*(b.holdMax-b.holdMin)
	b.active = append(b.active, Thought{
		Text:   text,
		Anchor: anchor,
		Stack:  stack,
		born:   b.now(),
		hold:   time.Duration(holdSec * float64(time.Second)),
		fade:   time.Duration(b.fadeSec * float64(time.Second)),
	})
}

// Update removes thoughts whose lifecycle has completed.
func (b *Board) Update() {
	now := b.now()
	kept := b.active[:0]
	for i := range b.active {
		if !b.active[i].expired(now) {
			kept = append(kept, b.active[i])
		}
	}
	b.active = kept
}

// Clear removes all live thoughts immediately.
func (b *Board) Clear() {
	b.active = b.active[:0]
}

// Active returns the live thoughts in spawn order.
func (b *Board) Active() []Thought {
	return b.active
}
