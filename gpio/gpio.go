// SPDX-License-Identifier: MIT
//
// Copyright © 2020 Kent Gibson <warthog618@gmail.com>.

//
//
// Package gpio provides output control of GPIO pins on the Raspberry Pi
// (rev 2 and later).
//
// The package supports the subset of pin operations needed to drive an LED:
// - Pin mode/direction (input/output)
// - Pin write (high/low)
// - Pin read (high/low)
//
// The package intentionally does not support:
//  - the alternate pin functions (nothing here drives peripherals)
//  - active low (to prevent confusion this package reflects only the actual
//    hardware levels)
//
// Pins are identified by the raw BCM2835 GPIO number, not the position on
// the J8 header.
//
// See the spec for full details of the BCM2835 controller:
// http://www.raspberrypi.org/wp-content/uploads/2012/02/BCM2835-ARM-Peripherals.pdf
//
package gpio

// Pin represents a single GPIO pin.
type Pin struct {
	// Immutable fields
	pin      int
	fsel     int
	levelReg int
	clearReg int
	setReg   int
	mask     uint32
	// Mutable fields
	shadow Level
}

// Level represents the high (true) or low (false) level of a Pin.
type Level bool

// Mode defines the IO mode of a Pin.
type Mode int

// pin mode is 3 bits wide in the fsel registers.
const modeMask uint32 = 7

// A pin can be set in Input or Output mode.
const (
	Input Mode = iota
	Output
)

// Level of pin, High / Low
const (
	Low  Level = false
	High Level = true
)

// MaxGPIOPin is the number of user GPIO pins on the Pi.
const MaxGPIOPin = 28

// NewPin creates a new pin object.
// The pin number provided is the BCM GPIO number.
//
// NewPin panics if called before the GPIO registers are mapped with Open,
// and returns nil if the pin number is out of range.
func NewPin(pin int) *Pin {
	if len(mem) == 0 {
		panic("GPIO not initialised.")
	}
	if pin < 0 || pin >= MaxGPIOPin {
		return nil
	}

	// Pre-calculate commonly used register addresses and bit masks.

	// All user pins are on the first bank, but the register math is kept
	// general as it costs nothing.
	bank := pin / 32
	mask := uint32(1 << uint(pin&0x1f))

	p := &Pin{
		pin: pin,
		// Pin fsel register, 0 - 5 depending on pin
		fsel: pin / 10,
		// Input level register offset, 13 / 14 depending on bank
		levelReg: 13 + bank,
		// Clear register, 10 / 11 depending on bank
		clearReg: 10 + bank,
		// Set register, 7 / 8 depending on bank
		setReg: 7 + bank,
		mask:   mask,
	}
	if mem[p.levelReg]&mask != 0 {
		p.shadow = High
	}
	return p
}

// Input sets pin as Input.
func (pin *Pin) Input() {
	pin.SetMode(Input)
}

// Output sets pin as Output.
func (pin *Pin) Output() {
	pin.SetMode(Output)
}

// High sets pin High.
func (pin *Pin) High() {
	pin.Write(High)
}

// Low sets pin Low.
func (pin *Pin) Low() {
	pin.Write(Low)
}

// Mode returns the mode of the pin in the Function Select register.
func (pin *Pin) Mode() Mode {
	modeShift := uint(pin.pin%10) * 3
	return Mode(mem[pin.fsel] >> modeShift & modeMask)
}

// SetMode sets the pin Mode.
func (pin *Pin) SetMode(mode Mode) {
	// shift for pin mode field within fsel register.
	modeShift := uint(pin.pin%10) * 3

	memlock.Lock()
	defer memlock.Unlock()

	mem[pin.fsel] = mem[pin.fsel]&^(modeMask<<modeShift) | uint32(mode)<<modeShift
}

// Shadow returns the value of the last write to an output pin or the last
// read on an input pin.
func (pin *Pin) Shadow() Level {
	return pin.shadow
}

// Number returns the BCM GPIO number that this Pin represents.
func (pin *Pin) Number() int {
	return pin.pin
}

// Read returns the pin level (high/low).
func (pin *Pin) Read() (level Level) {
	if (mem[pin.levelReg] & pin.mask) != 0 {
		level = High
	}
	pin.shadow = level
	return
}

// Write sets the pin level (high/low).
func (pin *Pin) Write(level Level) {
	if level == Low {
		mem[pin.clearReg] = pin.mask
	} else {
		mem[pin.setReg] = pin.mask
	}
	pin.shadow = level
}

// Toggle inverts the pin level.
func (pin *Pin) Toggle() {
	if pin.shadow {
		pin.Write(Low)
	} else {
		pin.Write(High)
	}
}
