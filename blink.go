// SPDX-License-Identifier: MIT
//
// Copyright © 2020 Kent Gibson <warthog618@gmail.com>.

//
//
// Package blink provides a small state machine that drives an LED on a GPIO
// pin at a fixed interval.
//
// The blink logic is kept separate from the hardware: the Controller owns
// the on/off state and the period, while the Blinker maps that state to
// levels on an output pin provided by the caller. The Controller never
// touches hardware.
//
// Example of use:
//
// 	gpio.Open()
// 	defer gpio.Close()
//
// 	pin := gpio.NewPin(16)
// 	pin.Low()
// 	pin.Output()
//
// 	c := blink.New()
// 	blink.NewBlinker(c, pin).Run(context.Background())
//
package blink

import (
	"time"
)

// State represents the logical state of the LED.
type State bool

// The LED is either Off or On.
const (
	Off State = false
	On  State = true
)

// Level returns the level to drive onto the pin for the state.
// On maps to true (high) and Off to false (low).
func (s State) Level() bool {
	return bool(s)
}

func (s State) String() string {
	if s == On {
		return "on"
	}
	return "off"
}

// Limits on the blink period. Periods outside this range are clamped at
// construction.
const (
	MinPeriod = 10 * time.Millisecond
	MaxPeriod = 10 * time.Second
)

// DefaultPeriod is the period used by New.
const DefaultPeriod = 500 * time.Millisecond

// Controller tracks the state of a blinking LED.
//
// The period is fixed at construction. The state is mutated only by Toggle.
type Controller struct {
	state   State
	period  time.Duration
	toggles uint64
}

// New creates a Controller with the LED off and the default period.
func New() *Controller {
	return NewWithPeriod(DefaultPeriod)
}

// NewWithPeriod creates a Controller with the LED off and the given period.
// The period is clamped to [MinPeriod, MaxPeriod].
func NewWithPeriod(period time.Duration) *Controller {
	return &Controller{state: Off, period: clampPeriod(period)}
}

// Toggle flips the LED state and returns the new state.
// Toggling twice returns the controller to its original state.
func (c *Controller) Toggle() State {
	c.state = !c.state
	c.toggles++
	return c.state
}

// State returns the current LED state.
func (c *Controller) State() State {
	return c.state
}

// IsOn returns true if the LED is on.
func (c *Controller) IsOn() bool {
	return c.state == On
}

// IsOff returns true if the LED is off.
func (c *Controller) IsOff() bool {
	return c.state == Off
}

// Period returns the blink period.
// The period is constant for the lifetime of the Controller.
func (c *Controller) Period() time.Duration {
	return c.period
}

// Toggles returns the number of times the LED has been toggled.
func (c *Controller) Toggles() uint64 {
	return c.toggles
}

func clampPeriod(period time.Duration) time.Duration {
	if period < MinPeriod {
		return MinPeriod
	}
	if period > MaxPeriod {
		return MaxPeriod
	}
	return period
}
