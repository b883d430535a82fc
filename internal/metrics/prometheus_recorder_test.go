package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.ObserveStageDuration("navigation", 150*time.Millisecond)
	pr.ObserveBuildDuration(500 * time.Millisecond)
	pr.IncBuildOutcome(OutcomeSuccess)
	pr.IncBuildOutcome(OutcomeSuccess)
	pr.SetLinkCount(7)
	pr.IncUnmatchedRule()

	if got := testutil.ToFloat64(pr.buildOutcome.WithLabelValues(OutcomeSuccess)); got != 2 {
		t.Fatalf("expected 2 successful builds, got %v", got)
	}
	if got := testutil.ToFloat64(pr.linkCount); got != 7 {
		t.Fatalf("expected link gauge 7, got %v", got)
	}
	if got := testutil.ToFloat64(pr.unmatchedRules); got != 1 {
		t.Fatalf("expected 1 unmatched rule, got %v", got)
	}

	mfs, err := reg.Gather()
	if err != nil {
		t.Fatalf("gather: %v", err)
	}
	if len(mfs) == 0 {
		t.Fatalf("expected metrics, got none")
	}
}

func TestPrometheusRecorder_WriteTextfile(t *testing.T) {
	pr := NewPrometheusRecorder(nil)
	pr.SetLinkCount(3)

	path := filepath.Join(t.TempDir(), "docnav.prom")
	if err := pr.WriteTextfile(path); err != nil {
		t.Fatalf("write textfile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read textfile: %v", err)
	}
	if !strings.Contains(string(data), "docnav_navigation_links 3") {
		t.Fatalf("expected link gauge in textfile, got:\n%s", data)
	}
}
