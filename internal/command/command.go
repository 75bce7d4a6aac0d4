// Copyright 2026 The epd6c-go Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package command is the closed catalog of controller opcodes and their
// fixed parameter payloads.
package command

// Code identifies one opcode in the catalog.
type Code int

const (
	Psr Code = iota
	Pwr
	Pof
	PowerOn
	BtstN
	BtstP
	DeepSleep
	Dtm
	Drf
	Cdi
	Tcon
	Tres
	AnTm
	Agid
	BuckBoostVddn
	TftVcomPower
	EnBuf
	BoostVddpEn
	Ccset
	Pws
	Cmd66
)

// entry is an opcode plus its fixed payload. PowerOn and Dtm carry no
// payload in the catalog: Dtm's payload is the frame data, supplied
// separately by the caller.
type entry struct {
	opcode  byte
	payload []byte
}

var catalog = map[Code]entry{
	Psr:           {0x00, []byte{0xDF, 0x69}},
	Pwr:           {0x01, []byte{0x0F, 0x00, 0x28, 0x2C, 0x28, 0x38}},
	Pof:           {0x02, []byte{0x00}},
	PowerOn:       {0x04, nil},
	BtstN:         {0x05, []byte{0xE8, 0x28}},
	BtstP:         {0x06, []byte{0xE8, 0x28}},
	DeepSleep:     {0x07, []byte{0xA5}},
	Dtm:           {0x10, nil},
	Drf:           {0x12, []byte{0x00}},
	Cdi:           {0x50, []byte{0xF7}},
	Tcon:          {0x60, []byte{0x03, 0x03}},
	Tres:          {0x61, []byte{0x04, 0xB0, 0x03, 0x20}},
	AnTm:          {0x74, []byte{0xC0, 0x1C, 0x1C, 0xCC, 0xCC, 0xCC, 0x15, 0x15, 0x55}},
	Agid:          {0x86, []byte{0x10}},
	BuckBoostVddn: {0xB0, []byte{0x01}},
	TftVcomPower:  {0xB1, []byte{0x02}},
	EnBuf:         {0xB6, []byte{0x07}},
	BoostVddpEn:   {0xB7, []byte{0x01}},
	Ccset:         {0xE0, []byte{0x01}},
	Pws:           {0xE3, []byte{0x22}},
	Cmd66:         {0xF0, []byte{0x49, 0x55, 0x13, 0x5D, 0x05, 0x10}},
}

// Opcode returns the wire opcode byte for c.
func (c Code) Opcode() byte {
	return catalog[c].opcode
}

// Payload returns the fixed parameter bytes for c, or nil if c carries
// no fixed payload (PowerOn, and Dtm whose payload is the frame data).
func (c Code) Payload() []byte {
	return catalog[c].payload
}

// Bytes returns the full wire sequence for c: opcode followed by its
// fixed payload, if any.
func (c Code) Bytes() []byte {
	e := catalog[c]
	out := make([]byte, 0, 1+len(e.payload))
	out = append(out, e.opcode)
	out = append(out, e.payload...)
	return out
}
