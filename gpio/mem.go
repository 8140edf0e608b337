// SPDX-License-Identifier: MIT
//
// Copyright © 2020 Kent Gibson <warthog618@gmail.com>.

// +build linux

package gpio

import (
	"encoding/binary"
	"errors"
	"os"
	"sync"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Chipset identifies the BCM chip variant controlling the GPIO block.
type Chipset int

// The chip variants distinguished by Open.
// The BCM2836 and BCM2837 are register compatible with the BCM2835 and are
// reported as BCM2835.
const (
	BCMUnknown Chipset = iota
	BCM2835
	BCM2711
)

// Arrays for 8 / 32 bit access to memory and a semaphore for write locking
var (
	// The memlock covers read/modify/write access to the mem block.
	// Individual reads and writes can skip the lock on the assumption that
	// concurrent register writes are atomic. e.g. Read, Write and Mode.
	memlock sync.Mutex
	mem     []uint32
	mem8    []uint8
	chipset Chipset
)

const memLength = 4096

// Open memory maps the GPIO registers from /dev/gpiomem.
//
// Open must be called once at startup, before any pins are created, and the
// mapping remains valid until Close.
func Open() (err error) {
	if len(mem) != 0 {
		return ErrAlreadyOpen
	}
	file, err := os.OpenFile(
		"/dev/gpiomem",
		os.O_RDWR|os.O_SYNC,
		0)

	if err != nil {
		return
	}
	defer file.Close()

	memlock.Lock()
	defer memlock.Unlock()

	mem8, err = unix.Mmap(
		int(file.Fd()),
		0,
		memLength,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_SHARED)

	if err != nil {
		return
	}

	mem = unsafe.Slice((*uint32)(unsafe.Pointer(&mem8[0])), memLength/4)
	chipset = detectChip()

	return nil
}

// Close unmaps the GPIO registers.
func Close() error {
	memlock.Lock()
	defer memlock.Unlock()
	mem = nil
	chipset = BCMUnknown
	return unix.Munmap(mem8)
}

// Chip returns the chipset detected by Open.
func Chip() Chipset {
	return chipset
}

// detectChip identifies the SoC from the device tree ranges, which map the
// peripheral block to its physical base address.
func detectChip() Chipset {
	b, err := os.ReadFile("/proc/device-tree/soc/ranges")
	if err != nil || len(b) < 12 {
		return BCMUnknown
	}
	base := binary.BigEndian.Uint32(b[4:])
	if base == 0 && len(b) >= 16 {
		// later device trees use a 64 bit parent address.
		base = binary.BigEndian.Uint32(b[8:])
	}
	switch base {
	case 0x20000000, 0x3f000000:
		return BCM2835
	case 0xfe000000:
		return BCM2711
	default:
		return BCMUnknown
	}
}

var (
	// ErrAlreadyOpen indicates the mem is already open.
	ErrAlreadyOpen = errors.New("already open")
)
