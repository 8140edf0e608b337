// SPDX-License-Identifier: MIT
//
// Copyright © 2020 Kent Gibson <warthog618@gmail.com>.

// +build linux

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/warthog618/blink"
	"github.com/warthog618/blink/gpio"
)

func init() {
	runCmd.Flags().UintVarP(&runOpts.Pin, "pin", "p", 16, "the BCM number of the pin to drive")
	runCmd.Flags().DurationVarP(&runOpts.Period, "period", "t", blink.DefaultPeriod, "the time between toggles")
	runCmd.Flags().Uint64VarP(&runOpts.Count, "count", "n", 0, "exit after n toggles")
	runCmd.Flags().BoolVarP(&runOpts.ActiveLow, "active-low", "l", false, "treat the LED as active low")
	runCmd.SetHelpTemplate(runCmd.HelpTemplate() + extendedRunHelp)
	rootCmd.AddCommand(runCmd)
}

var (
	runCmd = &cobra.Command{
		Use:     "run",
		Short:   "Blink the LED",
		Long:    `Toggle the pin high and low at a fixed interval until interrupted.`,
		Args:    cobra.NoArgs,
		RunE:    run,
		Example: "  blinkctl run -p 16 -t 250ms",
	}
	runOpts = struct {
		Pin       uint
		Period    time.Duration
		Count     uint64
		ActiveLow bool
	}{}
)

var extendedRunHelp = `
The pin is forced into output mode while running and reverted to input on
exit. Do not run this on a Raspberry Pi which has the pin externally driven.
`

func run(cmd *cobra.Command, args []string) error {
	if err := checkPin(runOpts.Pin); err != nil {
		return err
	}
	err := gpio.Open()
	if err != nil {
		return err
	}
	defer gpio.Close()
	pin := gpio.NewPin(int(runOpts.Pin))
	defer pin.Input()
	pin.Low()
	pin.Output()

	var out blink.Pin = pin
	if runOpts.ActiveLow {
		out = invertedPin{pin}
	}

	// capture exit signals to ensure pin is reverted to input on exit.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)
	go func() {
		<-quit
		cancel()
	}()

	c := blink.NewWithPeriod(runOpts.Period)
	err = blink.NewBlinker(c, out).RunN(ctx, runOpts.Count)
	if err == context.Canceled {
		err = nil
	}
	return err
}

// invertedPin drives the hardware level opposite to the requested level,
// for LEDs wired between the pin and the supply rail.
type invertedPin struct {
	pin blink.Pin
}

func (p invertedPin) High() {
	p.pin.Low()
}

func (p invertedPin) Low() {
	p.pin.High()
}
