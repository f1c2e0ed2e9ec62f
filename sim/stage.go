// Package sim implements the decision-pathway simulation core: the staged
// narrative state machine, the pathway pulse dynamics, thought annotations,
// anatomical labels, and the ambient flow field. The package is free of
// rendering concerns so the whole core runs headless.
package sim

import "time"

// AnchorID names one of the fixed 3D anchor locations thought bubbles
// attach to.
type AnchorID int

const (
	AnchorCortex AnchorID = iota
	AnchorStriatum
	AnchorThalamus
)

// ThoughtSpec describes a thought bubble a stage spawns on entry.
type ThoughtSpec struct {
	Text   string
	Anchor AnchorID
	Delay  time.Duration // offset from stage entry
}

// Stage is one step of the guided narrative. Stages are static
// configuration and never mutated.
type Stage struct {
	Title       string
	Description string
	PhoneTarget float64
	SportTarget float64
	Button      string
	LogLines    []string
	Thoughts    []ThoughtSpec
}

// NumStages is the length of the narrative.
const NumStages = 4

// Stages holds the fixed narrative, indexed by step.
var Stages = [NumStages]Stage{
	{
		Title: "Resting state",
		Description: "The cortex hums along with no dominant plan. Two possible " +
			"actions sit in the striatum at equal strength: pick up the phone, " +
			"or get up and exercise.",
		PhoneTarget: 0.3,
		SportTarget: 0.3,
		Button:      "Notification arrives",
		LogLines: []string{
			"cortex: ambient activity, no plan selected",
			"striatum: phone and exercise ensembles balanced",
			"thalamus: motor gate closed",
		},
		Thoughts: []ThoughtSpec{
			{Text: "...should do something", Anchor: AnchorCortex, Delay: 800 * time.Millisecond},
		},
	},
	{
		Title: "The cue hits",
		Description: "A notification buzzes. The phone pathway lights up as " +
			"dopamine from the SNc tags it as immediately rewarding.",
		PhoneTarget: 0.9,
		SportTarget: 0.3,
		Button:      "Let it build",
		LogLines: []string{
			"cortex: cue detected, attention captured",
			"SNc: phasic dopamine burst",
			"striatum: phone ensemble firing climbs",
		},
		Thoughts: []ThoughtSpec{
			{Text: "just a quick look", Anchor: AnchorCortex, Delay: 500 * time.Millisecond},
			{Text: "reward predicted here", Anchor: AnchorStriatum, Delay: 1400 * time.Millisecond},
		},
	},
	{
		Title: "Competition",
		Description: "The basal ganglia can only let one plan through. The " +
			"boosted phone ensemble drives the indirect pathway to suppress " +
			"its rival; the exercise signal turns sluggish.",
		PhoneTarget: 0.9,
		SportTarget: 0.1,
		Button:      "Resolve",
		LogLines: []string{
			"GPi: inhibition onto competing plan",
			"striatum: exercise ensemble suppressed",
			"exercise pathway: conduction degraded",
		},
		Thoughts: []ThoughtSpec{
			{Text: "exercise can wait", Anchor: AnchorStriatum, Delay: 600 * time.Millisecond},
			{Text: "losing the vote", Anchor: AnchorThalamus, Delay: 1600 * time.Millisecond},
		},
	},
	{
		Title: "Decision",
		Description: "The thalamic gate opens for the winning plan. The hand " +
			"reaches for the phone before the rest of the brain has a say.",
		PhoneTarget: 1.0,
		SportTarget: 0.05,
		Button:      "Start over",
		LogLines: []string{
			"thalamus: gate open for phone plan",
			"motor cortex: reach initiated",
			"exercise plan: shelved",
		},
		Thoughts: []ThoughtSpec{
			{Text: "unlocking...", Anchor: AnchorThalamus, Delay: 400 * time.Millisecond},
			{Text: "five minutes, tops", Anchor: AnchorCortex, Delay: 1200 * time.Millisecond},
		},
	},
}
