package telemetry

import (
	"log/slog"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// WindowStats holds aggregated pathway activity for one stats window.
type WindowStats struct {
	WindowStartTick int32   `csv:"-"`
	WindowEndTick   int32   `csv:"window_end"`
	SimTimeSec      float64 `csv:"sim_time"`
	Step            int     `csv:"step"`

	PhoneMean float64 `csv:"phone_mean"`
	PhoneMin  float64 `csv:"phone_min"`
	PhoneMax  float64 `csv:"phone_max"`

	SportMean float64 `csv:"sport_mean"`
	SportMin  float64 `csv:"sport_min"`
	SportMax  float64 `csv:"sport_max"`

	Advances int `csv:"advances"`
	Retreats int `csv:"retreats"`
}

// LogValue implements slog.LogValuer for structured logging.
func (s WindowStats) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("window_end", int(s.WindowEndTick)),
		slog.Float64("sim_time", s.SimTimeSec),
		slog.Int("step", s.Step),
		slog.Float64("phone_mean", s.PhoneMean),
		slog.Float64("phone_min", s.PhoneMin),
		slog.Float64("phone_max", s.PhoneMax),
		slog.Float64("sport_mean", s.SportMean),
		slog.Float64("sport_min", s.SportMin),
		slog.Float64("sport_max", s.SportMax),
		slog.Int("advances", s.Advances),
		slog.Int("retreats", s.Retreats),
	)
}

// LogStats logs the window stats using slog.
func (s WindowStats) LogStats() {
	slog.Info("stats",
		"window_end", s.WindowEndTick,
		"sim_time", s.SimTimeSec,
		"step", s.Step,
		"phone_mean", s.PhoneMean,
		"phone_min", s.PhoneMin,
		"phone_max", s.PhoneMax,
		"sport_mean", s.SportMean,
		"sport_min", s.SportMin,
		"sport_max", s.SportMax,
		"advances", s.Advances,
		"retreats", s.Retreats,
	)
}

// Collector accumulates displayed activity samples within time windows and
// produces WindowStats.
type Collector struct {
	windowTicks int32
	dt          float64

	windowStartTick int32

	phoneSamples []float64
	sportSamples []float64
	advances     int
	retreats     int
}

// NewCollector creates a stats collector. windowTicks is the window length
// in simulation ticks; dt the seconds per tick.
func NewCollector(windowTicks int, dt float64) *Collector {
	if windowTicks < 1 {
		windowTicks = 1
	}
	return &Collector{
		windowTicks: int32(windowTicks),
		dt:          dt,
	}
}

// Sample records one tick's displayed activity values.
func (c *Collector) Sample(phone, sport float64) {
	c.phoneSamples = append(c.phoneSamples, phone)
	c.sportSamples = append(c.sportSamples, sport)
}

// RecordAdvance counts a user advance action.
func (c *Collector) RecordAdvance() {
	c.advances++
}

// RecordRetreat counts a user retreat action.
func (c *Collector) RecordRetreat() {
	c.retreats++
}

// ShouldFlush returns true once a full window of ticks has elapsed.
func (c *Collector) ShouldFlush(currentTick int32) bool {
	return currentTick-c.windowStartTick >= c.windowTicks
}

// Flush produces a WindowStats and resets counters for the next window.
func (c *Collector) Flush(currentTick int32, step int) WindowStats {
	stats := WindowStats{
		WindowStartTick: c.windowStartTick,
		WindowEndTick:   currentTick,
		SimTimeSec:      float64(currentTick) * c.dt,
		Step:            step,
		Advances:        c.advances,
		Retreats:        c.retreats,
	}

	if len(c.phoneSamples) > 0 {
		stats.PhoneMean = stat.Mean(c.phoneSamples, nil)
		stats.PhoneMin = floats.Min(c.phoneSamples)
		stats.PhoneMax = floats.Max(c.phoneSamples)
	}
	if len(c.sportSamples) > 0 {
		stats.SportMean = stat.Mean(c.sportSamples, nil)
		stats.SportMin = floats.Min(c.sportSamples)
		stats.SportMax = floats.Max(c.sportSamples)
	}

	c.windowStartTick = currentTick
	c.phoneSamples = c.phoneSamples[:0]
	c.sportSamples = c.sportSamples[:0]
	c.advances = 0
	c.retreats = 0

	return stats
}
