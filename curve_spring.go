package sway

import "github.com/charmbracelet/harmonica"

// springCurveSamples is the resolution of tables built by SpringCurve.
const springCurveSamples = 64

// SpringCurve tabulates a damped spring released at 0 toward 1 over unit time.
// frequency is the angular frequency per unit of animation time and damping
// the damping ratio (1 is critical, below 1 overshoots). The last sample is
// pinned to 1 so the curve always lands on its target. A non-positive
// frequency returns the fixed Spring curve.
func SpringCurve(frequency, damping float64) Curve {
	if frequency <= 0 {
		return Spring
	}
	if damping < 0 {
		damping = 0
	}
	spring := harmonica.NewSpring(1.0/springCurveSamples, frequency, damping)

	samples := make([]curveSample, springCurveSamples+1)
	var pos, vel float64
	for i := 1; i < springCurveSamples; i++ {
		pos, vel = spring.Update(pos, vel, 1)
		samples[i] = curveSample{t: float64(i) / springCurveSamples, v: pos}
	}
	samples[springCurveSamples] = curveSample{t: 1, v: 1}
	return Curve{Kind: CurveTable, table: samples}
}
