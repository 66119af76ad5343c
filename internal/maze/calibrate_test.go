package maze

import (
	"errors"
	"testing"
	"time"

	"github.com/vovakirdan/joystick-maze/internal/hw/hwtest"
)

func TestCalibrateAveraging(t *testing.T) {
	var script []hwtest.Sample
	for v := 10; v <= 100; v += 10 {
		script = append(script, hwtest.Sample{X: v, Y: 2000 + v})
	}
	stick := hwtest.NewStick(0, script...)
	clock := &hwtest.Clock{}

	cal, err := Calibrate(stick, clock, 10, 100*time.Millisecond)
	if err != nil {
		t.Fatalf("Calibrate() failed: %v", err)
	}

	if cal.XCenter != 55 {
		t.Errorf("XCenter = %d, expected 55", cal.XCenter)
	}
	if cal.YCenter != 2055 {
		t.Errorf("YCenter = %d, expected 2055", cal.YCenter)
	}
	if stick.Reads() != 10 {
		t.Errorf("expected 10 samples, got %d", stick.Reads())
	}
	if clock.Now != time.Second {
		t.Errorf("calibration should block for 10*100ms, virtual time = %s", clock.Now)
	}
}

func TestCalibrateTruncates(t *testing.T) {
	stick := hwtest.NewStick(0,
		hwtest.Sample{X: 1, Y: 2},
		hwtest.Sample{X: 2, Y: 2},
		hwtest.Sample{X: 2, Y: 3},
	)

	cal, err := Calibrate(stick, &hwtest.Clock{}, 3, 0)
	if err != nil {
		t.Fatalf("Calibrate() failed: %v", err)
	}
	// 5/3 and 7/3 truncate to 1 and 2
	if cal.XCenter != 1 || cal.YCenter != 2 {
		t.Errorf("Calibrate() = %+v, expected {1 2}", cal)
	}
}

func TestCalibrateZeroCount(t *testing.T) {
	stick := hwtest.NewStick(2048)

	cal, err := Calibrate(stick, &hwtest.Clock{}, 0, time.Second)
	if err != nil {
		t.Fatalf("Calibrate() failed: %v", err)
	}
	if cal != (Calibration{}) {
		t.Errorf("zero count should return zero calibration, got %+v", cal)
	}
	if stick.Reads() != 0 {
		t.Error("zero count should not read the stick")
	}
}

func TestCalibrateReadError(t *testing.T) {
	boom := errors.New("adc timeout")
	stick := hwtest.NewStick(0,
		hwtest.Sample{X: 2048, Y: 2048},
		hwtest.Sample{Err: boom},
	)

	_, err := Calibrate(stick, &hwtest.Clock{}, 5, time.Millisecond)
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped read error, got %v", err)
	}
}
