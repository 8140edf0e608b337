// SPDX-License-Identifier: MIT
//
// Copyright © 2020 Kent Gibson <warthog618@gmail.com>.

// +build linux

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/warthog618/blink"
	"github.com/warthog618/blink/gpio"
	"github.com/warthog618/config"
	"github.com/warthog618/config/blob"
	"github.com/warthog618/config/blob/decoder/json"
	"github.com/warthog618/config/dict"
	"github.com/warthog618/config/env"
	"github.com/warthog618/config/pflag"
)

// This example blinks an LED on GPIO 16, which is pin J8 36.
// The default pin and period are defined in loadConfig, but can be altered
// via configuration (env, flag or config file).
// The pin is driven as an output so do not run this on a Raspberry Pi which
// has the pin externally driven.
func main() {
	cfg := loadConfig()
	p := int(cfg.MustGet("pin").Int())
	if p < 0 || p >= gpio.MaxGPIOPin {
		panic(fmt.Sprintf("unknown pin '%d'", p))
	}
	err := gpio.Open()
	if err != nil {
		panic(err)
	}
	defer gpio.Close()
	pin := gpio.NewPin(p)
	defer pin.Input()
	pin.Low()
	pin.Output()

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

	c := blink.NewWithPeriod(cfg.MustGet("period").Duration())
	fmt.Printf("Blinking pin %d every %v...\n", pin.Number(), c.Period())
	blink.NewBlinker(c, pin).Run(ctx)
}

func loadConfig() *config.Config {
	defaultConfig := map[string]interface{}{
		"pin":    16,
		"period": "500ms",
	}
	def := dict.New(dict.WithMap(defaultConfig))
	shortFlags := []pflag.Flag{
		{Short: 'c', Name: "config-file"},
		{Short: 'p', Name: "pin"},
		{Short: 't', Name: "period"},
	}
	// highest priority sources first - flags override environment
	cfg := config.New(
		pflag.New(pflag.WithFlags(shortFlags)),
		env.New(env.WithEnvPrefix("BLINKER_")),
		config.WithDefault(def))
	cfg.Append(
		blob.NewConfigFile(cfg, "config.file", "blinker.json", json.NewDecoder()))
	cfg = cfg.GetConfig("", config.WithMust)
	return cfg
}
