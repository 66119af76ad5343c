package maze

import "github.com/vovakirdan/joystick-maze/internal/core"

// AxisSample is one raw reading of both joystick axes.
type AxisSample struct {
	X, Y int
}

// MapAxis converts a raw sample into a movement delta. Each axis is handled
// independently: below low moves -step, above high moves +step, anything in
// [low, high] does not move. The same thresholds apply to both axes.
func MapAxis(sample AxisSample, low, high, step int) core.Vec2 {
	return core.Vec2{
		X: mapValue(sample.X, low, high, step),
		Y: mapValue(sample.Y, low, high, step),
	}
}

func mapValue(v, low, high, step int) int {
	switch {
	case v < low:
		return -step
	case v > high:
		return step
	default:
		return 0
	}
}

// Thresholds is a low/high pair compared directly against raw readings.
type Thresholds struct {
	Low  int
	High int
}

// Shift returns t moved by offset.
func (t Thresholds) Shift(offset int) Thresholds {
	return Thresholds{Low: t.Low + offset, High: t.High + offset}
}

// Mapper maps samples with per-axis thresholds and a fixed step.
type Mapper struct {
	X, Y Thresholds
	Step int
}

// NewMapper returns a mapper that applies t to both axes.
func NewMapper(t Thresholds, step int) Mapper {
	return Mapper{X: t, Y: t, Step: step}
}

// Map converts sample into a movement delta.
func (m Mapper) Map(sample AxisSample) core.Vec2 {
	return core.Vec2{
		X: mapValue(sample.X, m.X.Low, m.X.High, m.Step),
		Y: mapValue(sample.Y, m.Y.Low, m.Y.High, m.Step),
	}
}

// Recentered shifts each axis' thresholds by how far the calibrated rest
// position sits from nominal, the reading of an ideal centred stick.
func (m Mapper) Recentered(cal Calibration, nominal int) Mapper {
	return Mapper{
		X:    m.X.Shift(cal.XCenter - nominal),
		Y:    m.Y.Shift(cal.YCenter - nominal),
		Step: m.Step,
	}
}
