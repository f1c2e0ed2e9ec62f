package telemetry

import (
	"math"
	"testing"
)

func TestCollectorShouldFlush(t *testing.T) {
	c := NewCollector(300, 1.0/60.0)

	if c.ShouldFlush(299) {
		t.Error("should not flush before the window elapses")
	}
	if !c.ShouldFlush(300) {
		t.Error("should flush at the window boundary")
	}
}

func TestCollectorFlushStats(t *testing.T) {
	c := NewCollector(10, 0.1)

	c.Sample(0.2, 0.8)
	c.Sample(0.4, 0.6)
	c.Sample(0.6, 0.4)
	c.RecordAdvance()
	c.RecordAdvance()
	c.RecordRetreat()

	stats := c.Flush(10, 2)

	if math.Abs(stats.PhoneMean-0.4) > 1e-9 {
		t.Errorf("phone mean = %v, want 0.4", stats.PhoneMean)
	}
	if stats.PhoneMin != 0.2 || stats.PhoneMax != 0.6 {
		t.Errorf("phone min/max = %v/%v, want 0.2/0.6", stats.PhoneMin, stats.PhoneMax)
	}
	if math.Abs(stats.SportMean-0.6) > 1e-9 {
		t.Errorf("sport mean = %v, want 0.6", stats.SportMean)
	}
	if stats.Advances != 2 || stats.Retreats != 1 {
		t.Errorf("advances/retreats = %d/%d, want 2/1", stats.Advances, stats.Retreats)
	}
	if stats.Step != 2 {
		t.Errorf("step = %d, want 2", stats.Step)
	}
	if math.Abs(stats.SimTimeSec-1.0) > 1e-9 {
		t.Errorf("sim_time = %v, want 1.0", stats.SimTimeSec)
	}
}

func TestCollectorFlushResetsWindow(t *testing.T) {
	c := NewCollector(10, 0.1)
	c.Sample(1, 1)
	c.RecordAdvance()
	c.Flush(10, 0)

	stats := c.Flush(20, 0)
	if stats.PhoneMean != 0 || stats.SportMean != 0 {
		t.Errorf("second window carried samples: %v/%v", stats.PhoneMean, stats.SportMean)
	}
	if stats.Advances != 0 {
		t.Errorf("second window carried advances: %d", stats.Advances)
	}
	if stats.WindowStartTick != 10 {
		t.Errorf("window start = %d, want 10", stats.WindowStartTick)
	}
}

func TestCollectorEmptyWindow(t *testing.T) {
	c := NewCollector(10, 0.1)
	stats := c.Flush(10, 1)

	if stats.PhoneMean != 0 || stats.PhoneMin != 0 || stats.PhoneMax != 0 {
		t.Error("empty window should produce zero stats")
	}
}
