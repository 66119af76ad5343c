// Package window runs the maze on a simulated board in a desktop window.
// The panel is scaled up pixel for pixel, the buzzer plays through the
// sound card and a gamepad stick stands in for the analogue joystick.
package window

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/vovakirdan/joystick-maze/internal/config"
	"github.com/vovakirdan/joystick-maze/internal/core"
	"github.com/vovakirdan/joystick-maze/internal/platform/sim"
	"github.com/vovakirdan/joystick-maze/internal/registry"
)

const (
	sampleRate  = 44100
	audioBuffer = 40 * time.Millisecond
	stickDead   = 0.15 // Gamepad drift below this reads as centred
)

var panelOff = color.RGBA{R: 0x08, G: 0x08, B: 0x10, A: 0xff}

func init() {
	registry.Register("window", func() registry.Frontend { return Frontend{} })
}

// Frontend plays the maze in a desktop window.
type Frontend struct{}

// ID implements registry.Frontend.
func (Frontend) ID() string { return "window" }

// Title implements registry.Frontend.
func (Frontend) Title() string { return "Window simulator" }

// Run implements registry.Frontend.
func (Frontend) Run(ctx context.Context, cfg config.Config, rt core.RuntimeConfig, logger *log.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if rt.Scale <= 0 {
		rt.Scale = core.DefaultConfig().Scale
	}
	session := sim.NewSession(cfg, sim.DefaultHold, logger)

	if !rt.Mute {
		player, err := audio.NewContext(sampleRate).NewPlayer(sim.NewSquareWave(session.Buzzer, sampleRate))
		if err != nil {
			return fmt.Errorf("window: audio: %w", err)
		}
		player.SetBufferSize(audioBuffer)
		player.Play()
		defer player.Close()
	}

	g := &Game{
		ctx:     ctx,
		session: session,
		rawMax:  cfg.Input.RawMax,
		scale:   rt.Scale,
		on:      rt.Tint.RGBA(),
		panel:   ebiten.NewImage(cfg.Display.Width, cfg.Display.Height),
	}

	ebiten.SetWindowSize(cfg.Display.Width*rt.Scale, cfg.Display.Height*rt.Scale)
	ebiten.SetWindowTitle("Joystick Maze")

	g.done = session.Start(ctx)
	err := ebiten.RunGame(g)
	cancel()

	driverErr := g.driverErr
	if !g.stopped {
		driverErr = <-g.done
	}
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("window: %w", err)
	}
	return driverErr
}

// Game adapts a simulator session to ebiten.Game.
type Game struct {
	ctx     context.Context
	session *sim.Session
	rawMax  int
	scale   int
	on      color.RGBA
	panel   *ebiten.Image

	done      <-chan error
	stopped   bool
	driverErr error
}

// Update samples the keyboard and gamepads into the virtual stick.
func (g *Game) Update() error {
	select {
	case err := <-g.done:
		g.stopped = true
		g.driverErr = err
		return ebiten.Termination
	default:
	}
	if g.ctx.Err() != nil || ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	x, y, pressed := readInput()
	g.session.Stick.SetRaw(sim.AxisToRaw(x, g.rawMax), sim.AxisToRaw(y, g.rawMax), pressed)
	return nil
}

// Draw paints the last flushed frame.
func (g *Game) Draw(screen *ebiten.Image) {
	g.panel.WritePixels(sim.Pixels(g.session.Panel.Snapshot(), g.on, panelOff))

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.scale), float64(g.scale))
	screen.DrawImage(g.panel, op)
}

// Layout keeps the window an exact multiple of the panel.
func (g *Game) Layout(_, _ int) (int, int) {
	b := g.panel.Bounds()
	return b.Dx() * g.scale, b.Dy() * g.scale
}

// readInput returns the stick position in [-1, 1] per axis and the button.
// Keys win over the gamepad so a drifting pad never fights the keyboard.
func readInput() (x, y float64, pressed bool) {
	for _, id := range ebiten.AppendGamepadIDs(nil) {
		var ax, ay float64
		if ebiten.IsStandardGamepadLayoutAvailable(id) {
			ax = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
			ay = ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
			pressed = pressed || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightBottom)
		} else {
			ax = ebiten.GamepadAxisValue(id, 0)
			ay = ebiten.GamepadAxisValue(id, 1)
			pressed = pressed || ebiten.IsGamepadButtonPressed(id, ebiten.GamepadButton0)
		}
		if ax*ax+ay*ay > stickDead*stickDead {
			x, y = ax, ay
		}
	}

	if kx := keyAxis(ebiten.KeyA, ebiten.KeyArrowLeft, ebiten.KeyD, ebiten.KeyArrowRight); kx != 0 {
		x = kx
	}
	if ky := keyAxis(ebiten.KeyW, ebiten.KeyArrowUp, ebiten.KeyS, ebiten.KeyArrowDown); ky != 0 {
		y = ky
	}
	pressed = pressed || ebiten.IsKeyPressed(ebiten.KeyR) || ebiten.IsKeyPressed(ebiten.KeyEnter)
	return x, y, pressed
}

func keyAxis(neg1, neg2, pos1, pos2 ebiten.Key) float64 {
	v := 0.0
	if ebiten.IsKeyPressed(neg1) || ebiten.IsKeyPressed(neg2) {
		v--
	}
	if ebiten.IsKeyPressed(pos1) || ebiten.IsKeyPressed(pos2) {
		v++
	}
	return v
}
