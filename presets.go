package sway

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// presetEntry is one named transition as written in a presets file.
type presetEntry struct {
	Duration    float64 `toml:"duration" yaml:"duration" json:"duration"`
	Curve       string  `toml:"curve" yaml:"curve" json:"curve"`
	FromCurrent bool    `toml:"fromCurrent" yaml:"fromCurrent" json:"fromCurrent"`
}

// presetFile is the top-level structure of a presets file:
//
//	[transitions.appear]
//	duration = 0.3
//	curve = "spring"
type presetFile struct {
	Transitions map[string]presetEntry `toml:"transitions" yaml:"transitions" json:"transitions"`
}

// Presets maps names to transitions, so durations and curves can be tuned
// without recompiling.
type Presets map[string]Transition

// Get returns the named transition, or Immediate if there is none.
func (p Presets) Get(name string) Transition {
	return p[name]
}

// LoadPresetsFile reads and parses a presets file. See LoadPresets.
func LoadPresetsFile(path string) (Presets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load presets: %w", err)
	}
	return LoadPresets(path, data)
}

// LoadPresets parses presets from data. The format is chosen by the extension
// of name: .toml, .yaml/.yml or .json.
func LoadPresets(name string, data []byte) (Presets, error) {
	var file presetFile
	var err error
	switch ext := strings.ToLower(filepath.Ext(name)); ext {
	case ".toml":
		err = toml.Unmarshal(data, &file)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &file)
	case ".json":
		err = json.Unmarshal(data, &file)
	default:
		return nil, fmt.Errorf("load presets %q: unsupported format %q", name, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("load presets %q: %w", name, err)
	}

	presets := make(Presets, len(file.Transitions))
	for key, entry := range file.Transitions {
		tr, err := entry.transition()
		if err != nil {
			return nil, fmt.Errorf("load presets %q: transition %q: %w", name, key, err)
		}
		presets[key] = tr
	}
	return presets, nil
}

func (e presetEntry) transition() (Transition, error) {
	if e.Duration < 0 {
		return Immediate, fmt.Errorf("negative duration %v", e.Duration)
	}
	curve := EaseInOut
	if e.Curve != "" {
		c, err := ParseCurve(e.Curve)
		if err != nil {
			return Immediate, err
		}
		curve = c
	}
	tr := Animated(e.Duration, curve)
	if e.FromCurrent {
		tr = tr.FromCurrentState()
	}
	return tr, nil
}

// ParseCurve parses a curve name: linear, easeInOut, easeOut, legacy, spring,
// system, bezier(x1,y1,x2,y2) or spring(frequency,damping). Names are
// case-insensitive.
func ParseCurve(s string) (Curve, error) {
	s = strings.TrimSpace(s)
	name, args, hasArgs, err := splitCall(s)
	if err != nil {
		return Linear, err
	}
	name = strings.ToLower(name)

	if !hasArgs {
		switch name {
		case "linear":
			return Linear, nil
		case "easeinout":
			return EaseInOut, nil
		case "easeout":
			return EaseOut, nil
		case "legacy":
			return Legacy, nil
		case "spring":
			return Spring, nil
		case "system":
			return SystemCurve, nil
		}
		return Linear, fmt.Errorf("unknown curve %q", s)
	}

	switch name {
	case "bezier":
		if len(args) != 4 {
			return Linear, fmt.Errorf("curve %q: bezier takes 4 arguments, got %d", s, len(args))
		}
		return Bezier(args[0], args[1], args[2], args[3]), nil
	case "spring":
		if len(args) != 2 {
			return Linear, fmt.Errorf("curve %q: spring takes 2 arguments, got %d", s, len(args))
		}
		return SpringCurve(args[0], args[1]), nil
	}
	return Linear, fmt.Errorf("unknown curve %q", s)
}

// splitCall splits "name(a, b, ...)" into name and numeric arguments.
func splitCall(s string) (name string, args []float64, hasArgs bool, err error) {
	open := strings.IndexByte(s, '(')
	if open < 0 {
		return s, nil, false, nil
	}
	if !strings.HasSuffix(s, ")") {
		return "", nil, false, fmt.Errorf("curve %q: missing closing parenthesis", s)
	}
	name = strings.TrimSpace(s[:open])
	inner := s[open+1 : len(s)-1]
	for _, field := range strings.Split(inner, ",") {
		v, perr := strconv.ParseFloat(strings.TrimSpace(field), 64)
		if perr != nil {
			return "", nil, false, fmt.Errorf("curve %q: %w", s, perr)
		}
		args = append(args, v)
	}
	return name, args, true, nil
}
