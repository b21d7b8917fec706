// Package irbits encodes infrared remote-control frames into pulse trains.
//
// The core value type lives in package bitvector: a width-tracked
// arbitrary-precision integer with arithmetic, bitwise and range-selection
// operators whose width rules protocol decoders depend on. Package timing
// turns the bits of a vector into signed mark/space durations.
//
// This package adds protocol profiles on top: a Profile bundles the timing
// table, encoding and frame width of one protocol, and a Registry holds
// profiles loaded from configuration.
//
// # Quick Start
//
//	reg := irbits.NewRegistry(irbits.WithLogger(irbits.NewTextLogger(slog.LevelInfo)))
//	if _, err := reg.LoadFile(ctx, "profiles.json"); err != nil {
//		return err
//	}
//
//	pulses, err := reg.Encode(ctx, "nec", bitvector.Int(0x20DF10EF))
//
// # Working with frames
//
// Frames are BitVectors, so protocol code can build them field by field and
// the timing context travels with every derived vector:
//
//	frame, _ := reg.Frame("nec", bitvector.Int(0x20))
//	cmd := bitvector.New(bitvector.Int(0x10), bitvector.WithWidth(8))
//	frame.SetAt(bitvector.Int(16), cmd)
//	frame.SetAt(bitvector.Int(24), cmd.Invert())
//	pulses, _ := frame.Timings()
//
// # Configuration
//
// Profile files are JSON and decoded through package codec:
//
//	{"profiles": [
//	  {"name": "nec", "timings": [560, -560, 560, -1690], "encoding": "lsb_first", "width": 32}
//	]}
package irbits
