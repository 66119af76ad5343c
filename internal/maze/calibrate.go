package maze

import (
	"fmt"
	"time"

	"github.com/vovakirdan/joystick-maze/internal/hw"
)

// Calibration is the rest-position baseline captured at startup.
type Calibration struct {
	XCenter int
	YCenter int
}

// Calibrate takes count samples from src, sleeping interval after each one,
// and returns the truncated integer average of each axis. It blocks for
// count*interval. A read error aborts calibration.
func Calibrate(src hw.AxisReader, clk hw.Clock, count int, interval time.Duration) (Calibration, error) {
	if count <= 0 {
		return Calibration{}, nil
	}

	var xSum, ySum int
	for i := 0; i < count; i++ {
		sample, err := ReadSample(src)
		if err != nil {
			return Calibration{}, fmt.Errorf("calibrate: sample %d: %w", i, err)
		}
		xSum += sample.X
		ySum += sample.Y
		clk.Sleep(interval)
	}

	return Calibration{
		XCenter: xSum / count,
		YCenter: ySum / count,
	}, nil
}

// ReadSample reads X then Y from src.
func ReadSample(src hw.AxisReader) (AxisSample, error) {
	x, err := src.ReadX()
	if err != nil {
		return AxisSample{}, err
	}
	y, err := src.ReadY()
	if err != nil {
		return AxisSample{}, err
	}
	return AxisSample{X: x, Y: y}, nil
}
