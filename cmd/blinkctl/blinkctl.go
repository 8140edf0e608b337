// SPDX-License-Identifier: MIT
//
// Copyright © 2020 Kent Gibson <warthog618@gmail.com>.

// +build linux

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/warthog618/blink/gpio"
)

var version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:   "blinkctl",
	Short: "blinkctl is a utility to blink an LED on a Raspberry Pi GPIO pin",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
	Version: version,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func checkPin(pin uint) error {
	if pin >= gpio.MaxGPIOPin {
		return fmt.Errorf("unknown pin '%d'", pin)
	}
	return nil
}
