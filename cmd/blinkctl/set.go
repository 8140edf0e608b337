// SPDX-License-Identifier: MIT
//
// Copyright © 2020 Kent Gibson <warthog618@gmail.com>.

// +build linux

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/warthog618/blink/gpio"
)

func init() {
	setCmd.Flags().UintVarP(&setOpts.Pin, "pin", "p", 16, "the BCM number of the pin to drive")
	setCmd.Flags().BoolVarP(&setOpts.ActiveLow, "active-low", "l", false, "treat the LED as active low")
	setCmd.SetHelpTemplate(setCmd.HelpTemplate() + extendedSetHelp)
	rootCmd.AddCommand(setCmd)
}

var (
	setCmd = &cobra.Command{
		Use:     "set <level>",
		Short:   "Set the level of the LED pin",
		Args:    cobra.ExactArgs(1),
		RunE:    set,
		Example: "  blinkctl set high\n  blinkctl set -p 17 0",
	}
	setOpts = struct {
		Pin       uint
		ActiveLow bool
	}{}
)

var extendedSetHelp = `
Levels:
  Levels may be [high|hi|true|1|low|lo|false|0] and are case insensitive.

Note that setting the pin forces it into output mode.
`

func set(cmd *cobra.Command, args []string) error {
	v, err := parseLevel(args[0])
	if err != nil {
		return err
	}
	if err = checkPin(setOpts.Pin); err != nil {
		return err
	}
	if setOpts.ActiveLow {
		v = !v
	}
	err = gpio.Open()
	if err != nil {
		return err
	}
	defer gpio.Close()
	pin := gpio.NewPin(int(setOpts.Pin))
	pin.Output()
	pin.Write(v)
	return nil
}

func parseLevel(arg string) (gpio.Level, error) {
	if l, ok := levelNames[strings.ToLower(arg)]; ok {
		return l, nil
	}
	return gpio.Low, fmt.Errorf("can't parse level '%s'", arg)
}

var levelNames = map[string]gpio.Level{
	"high":  gpio.High,
	"hi":    gpio.High,
	"true":  gpio.High,
	"1":     gpio.High,
	"low":   gpio.Low,
	"lo":    gpio.Low,
	"false": gpio.Low,
	"0":     gpio.Low,
}
