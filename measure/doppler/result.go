package doppler

// Algorithm identifies the estimation method carried in every Result.
const Algorithm = "Multi-Band Spectral Centroid Tracking (Adaptive Resolution)"

// Rejection messages. Implausible-velocity rejections carry a formatted
// message including the offending speed.
const (
	msgNoSignature   = "No clear Doppler signature found in any band"
	msgShiftTooSmall = "Doppler shift too small (stationary source?)"
)

// Band is a frequency interval in Hz with Low < High.
type Band struct {
	Low  float64
	High float64
}

// Result is the outcome of a velocity estimation.
//
// On failure Err is non-empty, all numeric fields are zero, and the curves
// are empty; success and failure share the same shape so callers can treat
// them uniformly.
type Result struct {
	VelocityKmh   float64
	VelocityMs    float64
	EstimatedFreq float64 // estimated true source frequency, Hz
	ApproachFreq  float64 // plateau before closest approach, Hz
	RecedeFreq    float64 // plateau after closest approach, Hz
	DominantFreq  float64 // global dominant-frequency hint, Hz

	Band  Band    // winning candidate band
	Score float64 // winning Doppler-likeness score

	// Downsampled smoothed frequency-over-time curve for display.
	FreqOverTime []float64
	FreqTimeAxis []float64

	Algorithm string
	Err       string
}

// Failed reports whether the estimation was rejected.
func (r Result) Failed() bool { return r.Err != "" }

func errorResult(msg string) Result {
	return Result{Algorithm: Algorithm, Err: msg}
}
