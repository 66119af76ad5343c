package sim

import (
	"encoding/binary"
	"math"
)

// DutyFull is the duty level that keeps a PWM output high for the whole
// period. Levels are 10-bit, so 512 is a half-on square wave.
const DutyFull = 1024

// waveAmplitude keeps the synthesised buzzer well below clipping.
const waveAmplitude int16 = math.MaxInt16 / 5

// SquareWave renders the buzzer as 16-bit little-endian stereo PCM. It reads
// the buzzer on every frame, so tone changes made by the driver are heard
// within one audio buffer.
type SquareWave struct {
	buzzer     *Buzzer
	sampleRate int
	phase      float64
}

// NewSquareWave creates a PCM stream for buzzer at sampleRate frames per
// second.
func NewSquareWave(buzzer *Buzzer, sampleRate int) *SquareWave {
	return &SquareWave{buzzer: buzzer, sampleRate: sampleRate}
}

// Read fills p with whole stereo frames and never fails.
func (w *SquareWave) Read(p []byte) (int, error) {
	const frameSize = 4
	n := len(p) / frameSize * frameSize

	for i := 0; i < n; i += frameSize {
		v := w.next()
		binary.LittleEndian.PutUint16(p[i:], uint16(v))
		binary.LittleEndian.PutUint16(p[i+2:], uint16(v))
	}
	return n, nil
}

func (w *SquareWave) next() int16 {
	hz, duty := w.buzzer.Frequency(), w.buzzer.Duty()
	if hz <= 0 || duty <= 0 {
		w.phase = 0
		return 0
	}

	high := float64(min(duty, DutyFull)) / DutyFull
	w.phase += float64(hz) / float64(w.sampleRate)
	w.phase -= math.Floor(w.phase)

	if w.phase < high {
		return waveAmplitude
	}
	return -waveAmplitude
}
