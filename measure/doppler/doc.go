// Package doppler estimates the speed of a passing sound source from a
// Doppler-shifted recording using multi-band spectral centroid tracking.
//
// The estimator scans a set of candidate frequency bands over a short-time
// spectrum, tracks a heavily power-weighted centroid inside each band, and
// scores each band for how Doppler-like its frequency trajectory is (a large,
// near-monotonic drop). When the primary analysis resolution scores poorly it
// retries at alternate window sizes: large windows resolve slow sources
// better (fine frequency resolution), small windows fast sources (fine time
// resolution). The winning band's approach and recede frequency plateaus are
// inverted through the classical Doppler equations:
//
//	v     = c * (f_approach - f_recede) / (f_approach + f_recede)
//	f_src = 2 * f_approach * f_recede / (f_approach + f_recede)
//
// # Usage
//
//	res := doppler.Estimate(samples, doppler.Config{SampleRate: 44100})
//	if res.Failed() {
//	    // res.Err describes the rejection (no signature, shift too
//	    // small, implausible speed); numeric fields are zero.
//	}
//
// Every failure path returns the same Result shape with Err set; the package
// never panics on degenerate input.
package doppler
