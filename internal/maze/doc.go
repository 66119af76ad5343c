// Package maze is the game-state core: joystick calibration, threshold
// mapping, wall collision and the ball state machine.
//
// Everything here except Calibrate is pure and allocation-free per frame.
// Hardware is reached only through the interfaces in package hw, and game
// events are returned as Outcome values instead of driving the buzzer or the
// display directly.
package maze
