// SPDX-License-Identifier: MIT
//
// Copyright © 2020 Kent Gibson <warthog618@gmail.com>.

// Test suite for mem module.
package gpio_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/warthog618/blink/gpio"
)

func requirePi(t *testing.T) {
	t.Helper()
	if _, err := os.Stat("/dev/gpiomem"); err != nil {
		t.Skip("no /dev/gpiomem")
	}
}

func TestOpen(t *testing.T) {
	requirePi(t)
	assert.Nil(t, gpio.Open())
	defer gpio.Close()
}

func TestOpenOpened(t *testing.T) {
	requirePi(t)
	assert.Nil(t, gpio.Open())
	defer gpio.Close()
	assert.Equal(t, gpio.ErrAlreadyOpen, gpio.Open())
}

func TestReOpen(t *testing.T) {
	requirePi(t)
	assert.Nil(t, gpio.Open())
	gpio.Close()
	assert.Nil(t, gpio.Open())
	defer gpio.Close()
}

func TestChip(t *testing.T) {
	requirePi(t)
	assert.Nil(t, gpio.Open())
	defer gpio.Close()
	assert.NotEqual(t, gpio.BCMUnknown, gpio.Chip())
}
