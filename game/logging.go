package game

import (
	"log/slog"

	"github.com/tmorel/basalviz/telemetry"
)

// flushStats closes the current stats window and routes the result to the
// configured sinks.
func (g *Game) flushStats() {
	stats := g.collector.Flush(g.tick, g.state.Step)

	if g.logStats {
		stats.LogStats()
	}

	if err := g.output.WriteStats([]telemetry.WindowStats{stats}); err != nil {
		slog.Error("failed to write stats", "error", err)
	}
}
