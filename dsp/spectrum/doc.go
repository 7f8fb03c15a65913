// Package spectrum computes single-shot magnitude spectra and short-time
// time-frequency grids from real-valued sample buffers.
//
// All functions treat empty or silent input as a data condition: they return
// degenerate (zero-valued) results instead of errors, so callers can feed
// arbitrary decoded audio without guarding. Magnitudes from [Compute] are
// scaled so a single sinusoid of amplitude A reports a magnitude of
// approximately A.
package spectrum
