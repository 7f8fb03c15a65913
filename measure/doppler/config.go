package doppler

// SpeedOfSound is the speed of sound in air in m/s used for the velocity
// inversion.
const SpeedOfSound = 343.0

const (
	defaultFreqMinHz            = 50.0
	defaultFreqMaxHz            = 5000.0
	defaultCentroidExponent     = 4.0
	defaultMonotonicityExponent = 3.0
	defaultFallbackThreshold    = 0.02
	defaultMinScore             = 0.0001
	defaultMinRelativeShift     = 0.005
	defaultMaxSpeedKmh          = 600.0
	defaultOverlap              = 0.875

	// Primary analysis window bounds in samples.
	minAnalysisWindow = 2048
	maxAnalysisWindow = 16384

	// Active-region detection: frames whose band energy exceeds this
	// fraction of the peak energy count as active; fewer than
	// minActiveFrames active frames means the whole signal is treated as
	// active. The active span is widened by activeEdgeBuffer frames.
	energyActiveFraction = 0.001
	minActiveFrames      = 10
	activeEdgeBuffer     = 5

	// Fraction of the active span used for each endpoint plateau median.
	plateauFraction = 5

	// Maximum number of points in the Result display curve.
	displayPoints = 500
)

// Config holds estimation parameters. The zero value of every field selects
// the calibrated default, so Config{SampleRate: sr} is a valid configuration.
//
// CentroidExponent and MonotonicityExponent are empirically tuned: the
// quartic magnitude weighting keeps broadband noise from masking the tonal
// ridge inside a band, and cubing the monotonicity fraction heavily penalizes
// bands whose centroid is not consistently falling.
type Config struct {
	SampleRate float64

	// Frequency search range in Hz. Candidate bands are clipped to it.
	FreqMin float64
	FreqMax float64

	// CentroidExponent is applied to grid magnitudes before centroid
	// weighting. MonotonicityExponent is applied to the fraction of
	// falling frames in the score.
	CentroidExponent     float64
	MonotonicityExponent float64

	// FallbackThreshold is the score below which alternate window sizes
	// are tried. MinScore is the minimal viable score for a result.
	FallbackThreshold float64
	MinScore          float64

	// MinRelativeShift rejects near-stationary sources; MaxSpeedKmh
	// rejects implausible estimates.
	MinRelativeShift float64
	MaxSpeedKmh      float64

	// Overlap is the STFT frame overlap fraction.
	Overlap float64

	// PrimaryWindow overrides the automatic analysis window size choice.
	// FallbackWindows lists alternate sizes tried when the primary score
	// is below FallbackThreshold.
	PrimaryWindow   int
	FallbackWindows []int

	// Bands overrides automatic candidate band construction.
	Bands []Band
}

func normalizeConfig(cfg Config) Config {
	if cfg.FreqMin <= 0 {
		cfg.FreqMin = defaultFreqMinHz
	}

	if cfg.FreqMax <= cfg.FreqMin {
		cfg.FreqMax = defaultFreqMaxHz
	}

	if cfg.CentroidExponent <= 0 {
		cfg.CentroidExponent = defaultCentroidExponent
	}

	if cfg.MonotonicityExponent <= 0 {
		cfg.MonotonicityExponent = defaultMonotonicityExponent
	}

	if cfg.FallbackThreshold <= 0 {
		cfg.FallbackThreshold = defaultFallbackThreshold
	}

	if cfg.MinScore <= 0 {
		cfg.MinScore = defaultMinScore
	}

	if cfg.MinRelativeShift <= 0 {
		cfg.MinRelativeShift = defaultMinRelativeShift
	}

	if cfg.MaxSpeedKmh <= 0 {
		cfg.MaxSpeedKmh = defaultMaxSpeedKmh
	}

	if cfg.Overlap <= 0 || cfg.Overlap >= 1 {
		cfg.Overlap = defaultOverlap
	}

	if cfg.FallbackWindows == nil {
		cfg.FallbackWindows = []int{4096, 2048, 8192}
	}

	return cfg
}
