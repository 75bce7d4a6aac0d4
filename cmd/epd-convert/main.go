// Copyright 2026 The epd6c-go Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Command epd-convert turns an arbitrary image into a packed frame
// buffer ready for epd-display, and optionally writes a PNG preview of
// what the dithered six-color render will look like.
package main

import (
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"

	"github.com/joseph-levine/epd6c-go/internal/imagepipe"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("epd-convert: ")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s <input_image> <output.bin> [<dithered.png>]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) < 2 || len(args) > 3 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(args[0], args[1], optionalArg(args, 2)); err != nil {
		log.Fatal(err)
	}
}

func optionalArg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}

func run(inputPath, outputPath, previewPath string) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer in.Close()

	result, err := imagepipe.Convert(in)
	if err != nil {
		return fmt.Errorf("convert: %w", err)
	}

	if err := os.WriteFile(outputPath, result.Frame, 0o644); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	log.Printf("wrote %d bytes to %s", len(result.Frame), outputPath)

	if previewPath == "" {
		return nil
	}
	out, err := os.Create(previewPath)
	if err != nil {
		return fmt.Errorf("create preview: %w", err)
	}
	defer out.Close()
	if err := png.Encode(out, result.Dithered); err != nil {
		return fmt.Errorf("encode preview: %w", err)
	}
	log.Printf("wrote dithered preview to %s", previewPath)
	return nil
}
