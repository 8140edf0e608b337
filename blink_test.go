// SPDX-License-Identifier: MIT
//
// Copyright © 2020 Kent Gibson <warthog618@gmail.com>.

// Test suite for the blink controller.
package blink_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/warthog618/blink"
)

func TestNew(t *testing.T) {
	c := blink.New()
	assert.Equal(t, blink.Off, c.State())
	assert.Equal(t, blink.DefaultPeriod, c.Period())
	assert.Equal(t, uint64(0), c.Toggles())
	assert.True(t, c.IsOff())
	assert.False(t, c.IsOn())
	assert.False(t, c.State().Level())
}

func TestNewWithPeriod(t *testing.T) {
	c := blink.NewWithPeriod(time.Second)
	assert.Equal(t, blink.Off, c.State())
	assert.Equal(t, time.Second, c.Period())
}

func TestNewWithPeriodClampsLow(t *testing.T) {
	c := blink.NewWithPeriod(time.Millisecond)
	assert.Equal(t, blink.MinPeriod, c.Period())
}

func TestNewWithPeriodClampsHigh(t *testing.T) {
	c := blink.NewWithPeriod(time.Minute)
	assert.Equal(t, blink.MaxPeriod, c.Period())
}

func TestToggle(t *testing.T) {
	c := blink.New()
	assert.Equal(t, blink.On, c.Toggle())
	assert.True(t, c.IsOn())
	assert.True(t, c.State().Level())
	assert.Equal(t, blink.Off, c.Toggle())
	assert.True(t, c.IsOff())
	assert.False(t, c.State().Level())
}

func TestToggleSequence(t *testing.T) {
	c := blink.New()
	xs := []blink.State{blink.On, blink.Off, blink.On, blink.Off}
	for i, xv := range xs {
		assert.Equal(t, xv, c.Toggle(), "toggle %d", i+1)
	}
	assert.Equal(t, uint64(len(xs)), c.Toggles())
}

func TestToggleRoundTrip(t *testing.T) {
	c := blink.New()
	for i := 0; i < 3; i++ {
		s := c.State()
		c.Toggle()
		c.Toggle()
		assert.Equal(t, s, c.State(), "round trip %d", i+1)
	}
}

func TestTogglesCount(t *testing.T) {
	c := blink.New()
	for i := 1; i <= 5; i++ {
		c.Toggle()
		assert.Equal(t, uint64(i), c.Toggles())
	}
}

func TestPeriodInvariant(t *testing.T) {
	c := blink.NewWithPeriod(250 * time.Millisecond)
	for i := 0; i < 10; i++ {
		c.Toggle()
		assert.Equal(t, 250*time.Millisecond, c.Period())
	}
}

func TestStateLevel(t *testing.T) {
	assert.True(t, blink.On.Level())
	assert.False(t, blink.Off.Level())
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "on", blink.On.String())
	assert.Equal(t, "off", blink.Off.String())
}
