package sway

import (
	"encoding/json"
	"fmt"
)

// testStep represents a single action in a test script.
type testStep struct {
	Action   string  `json:"action"`
	Layer    string  `json:"layer,omitempty"`
	Target   string  `json:"target,omitempty"`
	X        float64 `json:"x,omitempty"`
	Y        float64 `json:"y,omitempty"`
	Width    float64 `json:"width,omitempty"`
	Height   float64 `json:"height,omitempty"`
	Value    float64 `json:"value,omitempty"`
	Points   []Vec2  `json:"points,omitempty"`
	Duration float64 `json:"duration,omitempty"`
	Curve    string  `json:"curve,omitempty"`
	Preset   string  `json:"preset,omitempty"`
	Animated bool    `json:"animated,omitempty"`
	Frames   int     `json:"frames,omitempty"`
	Label    string  `json:"label,omitempty"`

	transition Transition
}

// testScript is the top-level JSON structure for a test script.
type testScript struct {
	Steps []testStep `json:"steps"`
}

// TestRunner sequences transitions and scrolls across frames for automated
// testing. Attach to a Scene via SetTestRunner.
//
// Supported actions: frame, position, size, alpha, scale, stroke, keyframes,
// scroll, cancelScroll, screenshot and wait. Transition steps take either a
// preset name or a duration and curve.
type TestRunner struct {
	steps     []testStep
	presets   Presets
	cursor    int
	waitCount int
	done      bool
	results   []bool
}

// LoadTestScript parses a JSON test script and returns a TestRunner ready
// to be attached to a Scene via SetTestRunner. presets may be nil.
func LoadTestScript(jsonData []byte, presets Presets) (*TestRunner, error) {
	var script testScript
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse test script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse test script: no steps")
	}
	for i := range script.Steps {
		st := &script.Steps[i]
		if st.Preset != "" {
			tr, ok := presets[st.Preset]
			if !ok {
				return nil, fmt.Errorf("parse test script: step %d: unknown preset %q", i, st.Preset)
			}
			st.transition = tr
			continue
		}
		if st.Duration > 0 {
			curve := EaseInOut
			if st.Curve != "" {
				c, err := ParseCurve(st.Curve)
				if err != nil {
					return nil, fmt.Errorf("parse test script: step %d: %w", i, err)
				}
				curve = c
			}
			st.transition = Animated(st.Duration, curve)
		}
	}
	return &TestRunner{steps: script.Steps, presets: presets}, nil
}

// SetTestRunner attaches a TestRunner to the scene. The runner's step method
// is called from Scene.Update before the display link steps each frame.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.testRunner = runner
}

// Done reports whether all steps in the test script have been executed.
func (r *TestRunner) Done() bool {
	return r.done
}

// Results returns the completion values reported so far, in the order the
// requests settled.
func (r *TestRunner) Results() []bool {
	return r.results
}

func (r *TestRunner) record(completed bool) {
	r.results = append(r.results, completed)
}

// step advances the test runner by one frame. Called from Scene.Update.
func (r *TestRunner) step(s *Scene) {
	if r.done {
		return
	}
	// Count down wait frames.
	if r.waitCount > 0 {
		r.waitCount--
		if r.waitCount == 0 && r.cursor >= len(r.steps) {
			r.done = true
		}
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++
	r.exec(s, st)

	// Check if we've reached the end after executing.
	if r.cursor >= len(r.steps) && r.waitCount == 0 {
		r.done = true
	}
}

func (r *TestRunner) exec(s *Scene, st testStep) {
	if st.Action == "wait" {
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
		return
	}
	if st.Action == "screenshot" {
		s.Screenshot(st.Label)
		return
	}
	if st.Action == "scroll" || st.Action == "cancelScroll" {
		sv := s.ScrollView(st.Target)
		if sv == nil {
			debugLogf("test runner: no scroll view %q", st.Target)
			return
		}
		if st.Action == "cancelScroll" {
			sv.Cancel()
			return
		}
		sv.ScrollTo(Vec2{st.X, st.Y}, st.Animated, r.record)
		return
	}

	l := s.root.Find(st.Layer)
	if l == nil {
		debugLogf("test runner: no layer %q", st.Layer)
		return
	}
	tr := st.transition
	switch st.Action {
	case "frame":
		UpdateFrame(tr, l, Rect{st.X, st.Y, st.Width, st.Height}, r.record)
	case "position":
		UpdatePosition(tr, l, Vec2{st.X, st.Y}, r.record)
	case "size":
		UpdateSize(tr, l, Size{st.Width, st.Height}, r.record)
	case "alpha":
		UpdateAlpha(tr, l, st.Value, r.record)
	case "scale":
		UpdateScale(tr, l, st.Value, r.record)
	case "stroke":
		UpdateStrokeEnd(tr, l, st.Value, r.record)
	case "keyframes":
		AnimatePositionKeyframes(tr, l, st.Points, r.record)
	default:
		debugLogf("test runner: unknown action %q", st.Action)
	}
}
