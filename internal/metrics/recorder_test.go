package metrics

import (
	"testing"
	"time"
)

// testRecorder counts calls; shared by tests in this package.
type testRecorder struct {
	stageDurations map[string]int
	buildDurations int
	buildOutcomes  map[string]int
	links          int
	unmatched      int
}

func newTestRecorder() *testRecorder {
	return &testRecorder{stageDurations: map[string]int{}, buildOutcomes: map[string]int{}}
}

func (t *testRecorder) ObserveStageDuration(stage string, _ time.Duration) { t.stageDurations[stage]++ }
func (t *testRecorder) ObserveBuildDuration(time.Duration)                { t.buildDurations++ }
func (t *testRecorder) IncBuildOutcome(outcome string)                    { t.buildOutcomes[outcome]++ }
func (t *testRecorder) SetLinkCount(n int)                                { t.links = n }
func (t *testRecorder) IncUnmatchedRule()                                 { t.unmatched++ }

var (
	_ Recorder = NoopRecorder{}
	_ Recorder = (*testRecorder)(nil)
	_ Recorder = (*PrometheusRecorder)(nil)
)

func TestRecorderCalls(t *testing.T) {
	var r Recorder = newTestRecorder()
	r.ObserveStageDuration("load", time.Millisecond)
	r.ObserveStageDuration("load", time.Millisecond)
	r.ObserveBuildDuration(time.Second)
	r.IncBuildOutcome(OutcomeSuccess)
	r.SetLinkCount(4)
	r.IncUnmatchedRule()

	tr := r.(*testRecorder)
	if tr.stageDurations["load"] != 2 {
		t.Errorf("stage observations = %d, want 2", tr.stageDurations["load"])
	}
	if tr.buildDurations != 1 || tr.buildOutcomes[OutcomeSuccess] != 1 {
		t.Errorf("unexpected build counters: %+v", tr)
	}
	if tr.links != 4 || tr.unmatched != 1 {
		t.Errorf("links=%d unmatched=%d", tr.links, tr.unmatched)
	}

	// NoopRecorder accepts everything.
	NoopRecorder{}.IncBuildOutcome(OutcomeCanceled)
}
