// Package testutil provides testing utilities for irbits.
//
// This package is intended for use in tests only. It provides a seeded,
// thread-safe RNG for generating arbitrary-precision values and widths for
// property checks.
//
//	rng := testutil.NewRNG(seed)
//	w := rng.Width(128)        // [0, 128]
//	x := rng.Value(w)          // uniform in [0, 2^w)
//	y := rng.SignedValue(w)    // uniform in (-2^w, 2^w)
package testutil
