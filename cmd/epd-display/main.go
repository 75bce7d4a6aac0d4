// Copyright 2026 The epd6c-go Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Command epd-display loads a packed frame buffer from disk and drives
// it to the panel: initialize, optionally clear, display, sleep.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joseph-levine/epd6c-go/epd"
	"github.com/joseph-levine/epd6c-go/internal/frame"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("epd-display: ")

	clear := flag.Bool("clear", false, "clear the panel to white before displaying")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-clear] <frame.bin>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) != 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(args[0], *clear); err != nil {
		log.Fatal(err)
	}
}

func run(framePath string, clear bool) error {
	f, err := os.ReadFile(framePath)
	if err != nil {
		return fmt.Errorf("read frame: %w", err)
	}
	if err := frame.Validate(f); err != nil {
		return fmt.Errorf("validate frame: %w", err)
	}

	d, err := epd.New(sysfsOpener)
	if err != nil {
		return fmt.Errorf("open driver: %w", err)
	}
	defer d.Close()

	log.Print("initializing panel")
	if err := d.Init(); err != nil {
		return fmt.Errorf("init: %w", err)
	}

	if clear {
		log.Print("clearing panel")
		if err := d.Clear(); err != nil {
			return fmt.Errorf("clear: %w", err)
		}
	}

	log.Printf("displaying %s", framePath)
	if err := d.Display(f); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	log.Print("entering deep sleep")
	if err := d.Sleep(); err != nil {
		return fmt.Errorf("sleep: %w", err)
	}
	return nil
}
