// Package game owns the complete visualization state and the frame loop.
package game

import (
	"math/rand"
	"time"

	"github.com/tmorel/basalviz/camera"
	"github.com/tmorel/basalviz/config"
	"github.com/tmorel/basalviz/geom"
	"github.com/tmorel/basalviz/renderer"
	"github.com/tmorel/basalviz/sim"
	"github.com/tmorel/basalviz/telemetry"
	"github.com/tmorel/basalviz/ui"
)

// Options configures a new Game.
type Options struct {
	Seed      int64
	Headless  bool
	Autoplay  bool
	LogStats  bool
	OutputDir string
}

// Game holds the complete visualization state. All per-frame mutation
// happens from Update; there is exactly one writer.
type Game struct {
	cfg *config.Config
	rng *rand.Rand

	// Simulation core
	state    *sim.State
	phone    *sim.Pathway
	sport    *sim.Pathway
	flow     *sim.FlowField
	sched    *sim.Scheduler
	thoughts *sim.Board

	// Telemetry
	console   *telemetry.Console
	phoneHist *telemetry.History
	sportHist *telemetry.History
	collector *telemetry.Collector
	output    *telemetry.OutputManager

	// View
	cam       *camera.Orbit
	brainR    *renderer.BrainRenderer
	pathwayR  *renderer.PathwayRenderer
	flowR     *renderer.FlowRenderer
	uiR       *ui.Renderer
	narrative *ui.NarrativePanel
	consoleP  *ui.ConsolePanel
	phoneMon  *ui.ActivityMonitor
	sportMon  *ui.ActivityMonitor
	overlay   *ui.SceneOverlay

	// State
	tick     int32
	paused   bool
	simNow   time.Time
	pointerX float64
	pointerY float64
	pending  ui.Action

	headless bool
	autoplay bool
	logStats bool
}

// NewGameWithOptions creates a game instance from the loaded config.
func NewGameWithOptions(opts Options) (*Game, error) {
	cfg := config.Cfg()

	g := &Game{
		cfg:      cfg,
		rng:      rand.New(rand.NewSource(opts.Seed)),
		simNow:   time.Now(),
		headless: opts.Headless,
		autoplay: opts.Autoplay,
		logStats: opts.LogStats,
	}

	g.state = sim.NewState(cfg.Pathway.Smoothing)
	g.sched = sim.NewScheduler(g.now)
	g.thoughts = sim.NewBoard(g.now, g.rng, cfg.Thoughts.HoldMin, cfg.Thoughts.HoldMax, cfg.Thoughts.Fade)
	g.console = telemetry.NewConsole(cfg.Console.Capacity, g.now)
	g.phoneHist = telemetry.NewHistory(cfg.Monitor.HistorySize)
	g.sportHist = telemetry.NewHistory(cfg.Monitor.HistorySize)
	g.collector = telemetry.NewCollector(cfg.Derived.WindowTicks, cfg.Sim.DT)

	om, err := telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	g.output = om

	g.buildPathways()
	g.flow = sim.NewFlowField(
		geom.DefaultPaths(),
		cfg.Flow.ParticlesPerPath,
		cfg.Flow.SpeedMin,
		cfg.Flow.SpeedMax,
		g.rng,
	)

	g.cam = camera.New(cfg.Camera.Pitch, cfg.Camera.Distance, cfg.Camera.MinDistance, cfg.Camera.MaxDistance)
	g.cam.TargetY = 0.4

	if !opts.Headless {
		g.buildView()
	}

	return g, nil
}

// now returns the simulation clock, which advances a fixed dt per tick.
func (g *Game) now() time.Time {
	return g.simNow
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int32 {
	return g.tick
}

// Step returns the current narrative step.
func (g *Game) Step() int {
	return g.state.Step
}

// Console returns the log feed.
func (g *Game) Console() *telemetry.Console {
	return g.console
}

// Advance moves the narrative forward one stage, wrapping into a full
// reset after the last stage.
func (g *Game) Advance() {
	g.collector.RecordAdvance()
	if g.state.Advance() {
		g.console.Reset()
	}
}

// Retreat moves the narrative back one stage; a no-op at stage 0.
func (g *Game) Retreat() {
	if g.state.Retreat() {
		g.collector.RecordRetreat()
	}
}

// Update runs input handling and one simulation tick.
func (g *Game) Update() {
	g.handleInput()

	if g.paused {
		return
	}
	g.simulationStep()
}

// UpdateHeadless runs one simulation tick without any input or rendering.
func (g *Game) UpdateHeadless() {
	if g.autoplay && g.tick > 0 && int(g.tick)%g.cfg.Derived.AutoplayTicks == 0 {
		g.Advance()
	}
	g.simulationStep()
}

// simulationStep runs a single tick.
func (g *Game) simulationStep() {
	// 1. Fire due one-shot effects (staggered log lines, thought spawns)
	g.sched.Run()

	// 2. Apply any pending stage transition exactly once
	if stage, changed := g.state.Transition(); changed {
		g.onStageEnter(stage)
	}

	// 3. Smooth displayed activity toward stage targets
	g.state.Smooth()

	// 4. Advance pathway pulses and ambient flow
	g.phone.Step(g.state.PhoneDisplayed, g.state.Step, g.rng)
	g.sport.Step(g.state.SportDisplayed, g.state.Step, g.rng)
	g.flow.Step()

	// 5. Expire finished thought bubbles
	g.thoughts.Update()

	// 6. Telemetry
	g.phoneHist.Push(g.state.PhoneDisplayed)
	g.sportHist.Push(g.state.SportDisplayed)
	g.collector.Sample(g.state.PhoneDisplayed, g.state.SportDisplayed)
	if g.collector.ShouldFlush(g.tick) {
		g.flushStats()
	}

	g.tick++
	g.simNow = g.simNow.Add(time.Duration(g.cfg.Sim.DT * float64(time.Second)))
}

// onStageEnter schedules the one-shot effects for a newly entered stage.
// Bumping the scheduler generation first cancels anything still pending
// from the previous stage, so rapid re-transitions never leak stale lines.
func (g *Game) onStageEnter(stage sim.Stage) {
	g.sched.Bump()
	g.thoughts.Clear()

	spacing := time.Duration(g.cfg.Console.LineDelayMs) * time.Millisecond
	for i, line := range stage.LogLines {
		line := line
		g.sched.After(time.Duration(i)*spacing, func() {
			g.console.Post(line)
		})
	}

	for _, spec := range stage.Thoughts {
		spec := spec
		g.sched.After(spec.Delay, func() {
			g.thoughts.Spawn(spec.Text, spec.Anchor)
		})
	}
}

// Unload releases resources.
func (g *Game) Unload() {
	if g.output != nil {
		g.output.Close()
	}
}
