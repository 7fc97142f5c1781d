// Package ramp provides smoothed scalar control values for glitch-free
// parameter changes in audio-rate processing.
package ramp

import "math"

// Linear interpolates a control value toward a target in equal steps over a
// fixed ramp length. It is the building block for click-free frequency and
// gain changes: instead of jumping, the value is advanced once per sample
// via NextValue until it lands exactly on the target.
//
// A Linear is not safe for concurrent use.
type Linear struct {
	current float64
	target  float64
	step    float64

	countdown     int
	stepsToTarget int
}

// NewLinear returns a ramp holding initial as both current and target value.
// Until Reset is called the ramp length is zero and SetValue applies
// immediately.
func NewLinear(initial float64) *Linear {
	return &Linear{current: initial, target: initial}
}

// Reset sets the ramp length from sample rate and duration and snaps the
// current value onto the target, cancelling any ramp in flight. Non-positive
// inputs leave the ramp length at zero, so later SetValue calls apply
// immediately.
func (l *Linear) Reset(sampleRate, rampLengthSeconds float64) {
	steps := 0
	if sampleRate > 0 && rampLengthSeconds > 0 {
		steps = int(math.Floor(rampLengthSeconds * sampleRate))
	}
	l.stepsToTarget = steps
	l.current = l.target
	l.countdown = 0
}

// SetValue sets a new target. When force is true, or when the ramp length is
// zero, the value is applied instantaneously. Re-setting the current target
// does not restart a ramp.
func (l *Linear) SetValue(target float64, force bool) {
	if force || l.stepsToTarget <= 0 {
		l.target = target
		l.current = target
		l.countdown = 0
		return
	}

	if target == l.target {
		return
	}

	l.target = target
	l.countdown = l.stepsToTarget
	l.step = (l.target - l.current) / float64(l.countdown)
}

// NextValue advances the ramp by one step and returns the new value. The
// final step lands exactly on the target. Once settled it keeps returning
// the target.
func (l *Linear) NextValue() float64 {
	if l.countdown <= 0 {
		return l.target
	}

	l.countdown--
	if l.countdown == 0 {
		l.current = l.target
	} else {
		l.current += l.step
	}

	return l.current
}

// IsSmoothing reports whether the value is still moving toward the target.
func (l *Linear) IsSmoothing() bool {
	return l.countdown > 0
}

// TargetValue returns the most recently requested target.
func (l *Linear) TargetValue() float64 {
	return l.target
}

// CurrentValue returns the value of the last step without advancing.
func (l *Linear) CurrentValue() float64 {
	if l.countdown <= 0 {
		return l.target
	}
	return l.current
}
