// SPDX-License-Identifier: MIT
//
// Copyright © 2020 Kent Gibson <warthog618@gmail.com>.

package blink

import (
	"context"
	"time"
)

// Pin is the output capability required to drive the LED.
//
// The pin is assumed to be already configured as a digital output.
// It is implemented by *gpio.Pin.
type Pin interface {
	High()
	Low()
}

// Blinker drives a Pin from a Controller.
//
// The Blinker owns the pin while Run is active - nothing else should write
// to it.
type Blinker struct {
	c   *Controller
	pin Pin
	// after provides the wait between toggles - replaceable for testing.
	after func(time.Duration) <-chan time.Time
}

// NewBlinker creates a Blinker that toggles pin at the controller period.
func NewBlinker(c *Controller, pin Pin) *Blinker {
	return &Blinker{c: c, pin: pin, after: time.After}
}

// Run toggles the pin at the controller period until ctx is done.
//
// Each iteration toggles the controller, drives the resulting level onto the
// pin, and then waits one period. Returns the ctx error on cancellation.
func (b *Blinker) Run(ctx context.Context) error {
	return b.RunN(ctx, 0)
}

// RunN is Run limited to n toggles, with 0 meaning no limit.
// The limit counts only toggles performed by this call, not any the
// controller has already accumulated.
// Returns nil once the limit is reached.
func (b *Blinker) RunN(ctx context.Context, n uint64) error {
	for done := uint64(0); ; {
		if b.c.Toggle().Level() {
			b.pin.High()
		} else {
			b.pin.Low()
		}
		done++
		if n > 0 && done >= n {
			return nil
		}
		select {
		case <-b.after(b.c.Period()):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
