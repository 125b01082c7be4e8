package metrics

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kievzenit/ylogo/internal/interpreter"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCollectorCountsRun(t *testing.T) {
	collector := NewCollector()

	_, err := interpreter.Run([]byte(`MAKE "N 3 REPEAT :N [ FORWARD 10 RIGHT 120 ]`), interpreter.RunOptions{
		Observer: collector,
	})
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	if got := testutil.ToFloat64(collector.statements.WithLabelValues("FORWARD")); got != 3 {
		t.Fatalf("FORWARD statements = %g, expected 3", got)
	}
	if got := testutil.ToFloat64(collector.statements.WithLabelValues("MAKE")); got != 1 {
		t.Fatalf("MAKE statements = %g, expected 1", got)
	}
	if got := testutil.ToFloat64(collector.segments); got != 3 {
		t.Fatalf("segments = %g, expected 3", got)
	}
	if got := testutil.ToFloat64(collector.iterations); got != 3 {
		t.Fatalf("iterations = %g, expected 3", got)
	}
	if got := testutil.ToFloat64(collector.runs.WithLabelValues("ok")); got != 1 {
		t.Fatalf("ok runs = %g, expected 1", got)
	}
}

func TestCollectorOutcomeByPhase(t *testing.T) {
	collector := NewCollector()

	sources := []string{"FORWARD @", "FORWARD", "FORWARD :X"}
	for _, source := range sources {
		if _, err := interpreter.Run([]byte(source), interpreter.RunOptions{Observer: collector}); err == nil {
			t.Fatalf("Run(%q) expected an error", source)
		}
	}
	collector.RunFinished(nil, errors.New("plain failure"), time.Millisecond)

	for label, want := range map[string]float64{"lex": 1, "parse": 1, "run": 2, "ok": 0} {
		if got := testutil.ToFloat64(collector.runs.WithLabelValues(label)); got != want {
			t.Fatalf("%s runs = %g, expected %g", label, got, want)
		}
	}
}

func TestWriteFile(t *testing.T) {
	collector := NewCollector()
	collector.StatementExecuted("PENUP")
	collector.RunFinished(&interpreter.Result{Segments: 2}, nil, 5*time.Millisecond)

	path := filepath.Join(t.TempDir(), "ylogo.prom")
	if err := collector.WriteFile(path); err != nil {
		t.Fatalf("WriteFile returned error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read metrics: %v", err)
	}

	out := string(data)
	for _, want := range []string{
		`ylogo_statements_executed_total{kind="PENUP"} 1`,
		`ylogo_segments_drawn_total 2`,
		`ylogo_runs_total{result="ok"} 1`,
		`ylogo_run_duration_seconds_count 1`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("metrics file does not contain %q:\n%s", want, out)
		}
	}
}
