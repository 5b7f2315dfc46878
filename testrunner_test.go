package sway

import (
	"testing"
)

func TestLoadTestScript(t *testing.T) {
	script := `{
		"steps": [
			{"action": "alpha", "layer": "card", "value": 0, "duration": 0.3, "curve": "spring"},
			{"action": "wait", "frames": 5},
			{"action": "position", "layer": "card", "x": 10, "y": 20}
		]
	}`
	runner, err := LoadTestScript([]byte(script), nil)
	if err != nil {
		t.Fatalf("LoadTestScript: %v", err)
	}
	if len(runner.steps) != 3 {
		t.Fatalf("steps = %d, want 3", len(runner.steps))
	}
	tr := runner.steps[0].transition
	if tr.Duration() != 0.3 || tr.Curve().Kind != CurveSpring {
		t.Errorf("step 0 transition = %v", tr)
	}
	if runner.steps[2].transition.IsAnimated() {
		t.Error("step without duration should be immediate")
	}
	if runner.Done() {
		t.Error("runner should not be done before stepping")
	}
}

func TestLoadTestScriptDefaultCurve(t *testing.T) {
	runner, err := LoadTestScript([]byte(`{"steps":[{"action":"scale","layer":"a","value":2,"duration":1}]}`), nil)
	if err != nil {
		t.Fatalf("LoadTestScript: %v", err)
	}
	if got := runner.steps[0].transition.Curve().Kind; got != CurveEaseInOut {
		t.Errorf("default curve kind = %v, want ease in-out", got)
	}
}

func TestLoadTestScriptPreset(t *testing.T) {
	presets := Presets{"fade": Animated(0.25, Linear)}
	runner, err := LoadTestScript([]byte(`{"steps":[{"action":"alpha","layer":"a","preset":"fade"}]}`), presets)
	if err != nil {
		t.Fatalf("LoadTestScript: %v", err)
	}
	if got := runner.steps[0].transition.Duration(); got != 0.25 {
		t.Errorf("preset duration = %v, want 0.25", got)
	}
}

func TestLoadTestScriptErrors(t *testing.T) {
	tests := map[string]string{
		"invalid json":   `{not json`,
		"no steps":       `{"steps": []}`,
		"unknown preset": `{"steps":[{"action":"alpha","preset":"missing"}]}`,
		"bad curve":      `{"steps":[{"action":"alpha","duration":1,"curve":"wobbly"}]}`,
	}
	for name, script := range tests {
		if _, err := LoadTestScript([]byte(script), nil); err == nil {
			t.Errorf("%s: expected error", name)
		}
	}
}

func TestTestRunnerWait(t *testing.T) {
	runner, err := LoadTestScript([]byte(`{"steps":[{"action":"wait","frames":3}]}`), nil)
	if err != nil {
		t.Fatalf("LoadTestScript: %v", err)
	}
	s, clock := newTestScene()
	s.SetTestRunner(runner)

	frames := 0
	for !runner.Done() && frames < 10 {
		runFrames(s, clock, 1, 1.0/60)
		frames++
	}
	if frames != 3 {
		t.Errorf("done after %d frames, want 3", frames)
	}
}

func TestTestRunnerScriptedTransitions(t *testing.T) {
	script := `{
		"steps": [
			{"action": "alpha", "layer": "card", "value": 0, "duration": 0.2, "curve": "linear"},
			{"action": "frame", "layer": "card", "x": 5, "y": 5, "width": 20, "height": 20},
			{"action": "wait", "frames": 5}
		]
	}`
	runner, err := LoadTestScript([]byte(script), nil)
	if err != nil {
		t.Fatalf("LoadTestScript: %v", err)
	}
	s, clock := newTestScene()
	l := addTestLayer(s, "card", Rect{0, 0, 10, 10})
	s.SetTestRunner(runner)

	for i := 0; i < 20 && !runner.Done(); i++ {
		runFrames(s, clock, 1, 0.1)
	}
	if !runner.Done() {
		t.Fatal("runner did not finish")
	}
	if l.PresentationAlpha() != 0 {
		t.Errorf("alpha = %v, want 0", l.PresentationAlpha())
	}
	if l.Frame() != (Rect{5, 5, 20, 20}) {
		t.Errorf("frame = %+v", l.Frame())
	}
	results := runner.Results()
	if len(results) != 2 || !results[0] || !results[1] {
		t.Errorf("results = %v, want [true true]", results)
	}
}

func TestTestRunnerScriptedScroll(t *testing.T) {
	script := `{
		"steps": [
			{"action": "scroll", "target": "list", "y": 100, "animated": true},
			{"action": "wait", "frames": 60}
		]
	}`
	runner, err := LoadTestScript([]byte(script), nil)
	if err != nil {
		t.Fatalf("LoadTestScript: %v", err)
	}
	s, clock := newTestScene()
	viewport := addTestLayer(s, "list", Rect{0, 0, 100, 100})
	s.NewScrollView(viewport, ScrollOptions{})
	s.SetTestRunner(runner)

	for i := 0; i < 100 && !runner.Done(); i++ {
		runFrames(s, clock, 1, 1.0/60)
	}
	if viewport.BoundsOrigin() != (Vec2{0, 100}) {
		t.Errorf("bounds origin = %+v, want {0 100}", viewport.BoundsOrigin())
	}
	if results := runner.Results(); len(results) != 1 || !results[0] {
		t.Errorf("results = %v, want [true]", results)
	}
}

func TestTestRunnerCancelScroll(t *testing.T) {
	script := `{
		"steps": [
			{"action": "scroll", "target": "list", "y": 300, "animated": true},
			{"action": "cancelScroll", "target": "list"}
		]
	}`
	runner, err := LoadTestScript([]byte(script), nil)
	if err != nil {
		t.Fatalf("LoadTestScript: %v", err)
	}
	s, clock := newTestScene()
	viewport := addTestLayer(s, "list", Rect{0, 0, 100, 400})
	sv := s.NewScrollView(viewport, ScrollOptions{})
	s.SetTestRunner(runner)

	runFrames(s, clock, 3, 1.0/60)
	if sv.IsConverging() {
		t.Error("scroll should be cancelled")
	}
	if results := runner.Results(); len(results) != 1 || results[0] {
		t.Errorf("results = %v, want [false]", results)
	}
}

func TestTestRunnerUnknownTargetsIgnored(t *testing.T) {
	script := `{
		"steps": [
			{"action": "alpha", "layer": "nobody", "value": 0},
			{"action": "scroll", "target": "nothing", "y": 10},
			{"action": "teleport", "layer": "root"}
		]
	}`
	runner, err := LoadTestScript([]byte(script), nil)
	if err != nil {
		t.Fatalf("LoadTestScript: %v", err)
	}
	s, clock := newTestScene()
	s.SetTestRunner(runner)
	runFrames(s, clock, 3, 1.0/60)
	if !runner.Done() || len(runner.Results()) != 0 {
		t.Errorf("done=%v results=%v", runner.Done(), runner.Results())
	}
}

func TestTestRunnerScreenshotQueues(t *testing.T) {
	runner, err := LoadTestScript([]byte(`{"steps":[{"action":"screenshot","label":"start"}]}`), nil)
	if err != nil {
		t.Fatalf("LoadTestScript: %v", err)
	}
	s, clock := newTestScene()
	s.SetTestRunner(runner)
	runFrames(s, clock, 1, 1.0/60)
	if len(s.screenshotQueue) != 1 || s.screenshotQueue[0] != "start" {
		t.Errorf("queue = %v, want [start]", s.screenshotQueue)
	}
}
