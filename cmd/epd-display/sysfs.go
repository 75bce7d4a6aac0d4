// Copyright 2026 The epd6c-go Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joseph-levine/epd6c-go/internal/pin"
)

// sysfsOpener is a minimal pin.Opener backed by the Linux sysfs GPIO
// interface (/sys/class/gpio). It is the simplest real backend available
// without a memory-mapped register driver, in the spirit of periph's own
// host/sysfs fallback for boards without a dedicated bcm283x binding.
// Production deployments wanting lower latency should supply their own
// pin.Opener backed by a memory-mapped or gpio-chip driver instead.
func sysfsOpener(p pin.Pin) (pin.IO, error) {
	n := int(p)
	if err := os.WriteFile("/sys/class/gpio/export", []byte(strconv.Itoa(n)), 0o200); err != nil && !os.IsExist(err) {
		if !alreadyExported(n) {
			return nil, fmt.Errorf("export gpio%d: %w", n, err)
		}
	}
	return &sysfsPin{n: n}, nil
}

func alreadyExported(n int) bool {
	_, err := os.Stat(fmt.Sprintf("/sys/class/gpio/gpio%d", n))
	return err == nil
}

type sysfsPin struct {
	n int
}

func (s *sysfsPin) path(leaf string) string {
	return fmt.Sprintf("/sys/class/gpio/gpio%d/%s", s.n, leaf)
}

func (s *sysfsPin) SetDirection(d pin.Direction) error {
	dir := "out"
	if d == pin.Input {
		dir = "in"
	}
	return os.WriteFile(s.path("direction"), []byte(dir), 0o200)
}

func (s *sysfsPin) Write(level pin.Level) error {
	v := "0"
	if level == pin.High {
		v = "1"
	}
	return os.WriteFile(s.path("value"), []byte(v), 0o200)
}

func (s *sysfsPin) Read() (pin.Level, error) {
	data, err := os.ReadFile(s.path("value"))
	if err != nil {
		return pin.Low, err
	}
	if len(data) > 0 && data[0] == '1' {
		return pin.High, nil
	}
	return pin.Low, nil
}
