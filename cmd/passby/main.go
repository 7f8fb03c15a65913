// Command passby estimates the speed of a passing vehicle from a
// Doppler-shifted audio recording.
//
// Usage:
//
//	passby [flags] recording.wav
//
// Without a file argument, -sim synthesizes a pass instead:
//
//	passby -sim -freq 440 -speed 80
//	passby -sim -speed 120 -noise 0.05 -chart pass.html
//	passby -band 200:2000 recording.mp3
//	passby -features -split recording.wav
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-doppler/dsp/core"
	"github.com/cwbudde/algo-doppler/dsp/filter"
	"github.com/cwbudde/algo-doppler/dsp/signal"
	"github.com/cwbudde/algo-doppler/measure/doppler"
	"github.com/cwbudde/algo-doppler/stats/features"
	timestats "github.com/cwbudde/algo-doppler/stats/time"
)

const bandFilterOrder = 5

func main() {
	sim := flag.Bool("sim", false, "synthesize a pass instead of reading a file")
	freq := flag.Float64("freq", 440, "source frequency in Hz (with -sim)")
	speed := flag.Float64("speed", 80, "vehicle speed in km/h (with -sim)")
	duration := flag.Float64("duration", 6, "pass duration in seconds (with -sim)")
	distance := flag.Float64("distance", 0, "listener distance from the road in meters (with -sim, 0 = default)")
	rate := flag.Float64("rate", 44100, "sample rate in Hz (with -sim)")
	noise := flag.Float64("noise", 0, "white noise amplitude mixed into the synthesized pass (with -sim)")
	band := flag.String("band", "", "band-pass the input first, as low:high in Hz (e.g. 200:2000)")
	chart := flag.String("chart", "", "write an HTML chart of the tracked frequency to this file")
	showFeatures := flag.Bool("features", false, "print spectral feature summary")
	showSplit := flag.Bool("split", false, "print approach/recede split point")
	showStats := flag.Bool("stats", false, "print time-domain signal statistics")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: passby [flags] [recording.wav|.mp3|.ogg]\n\n")
		fmt.Fprintf(os.Stderr, "Estimates vehicle speed from a Doppler-shifted recording.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  passby recording.wav\n")
		fmt.Fprintf(os.Stderr, "  passby -band 200:2000 recording.mp3\n")
		fmt.Fprintf(os.Stderr, "  passby -sim -freq 440 -speed 80 -chart pass.html\n")
	}
	flag.Parse()

	samples, sampleRate, err := loadInput(*sim, flag.Args(), signal.DopplerPass{
		SourceFreq: *freq,
		SpeedKmh:   *speed,
		Duration:   *duration,
		Distance:   *distance,
		SampleRate: *rate,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if *sim && *noise > 0 {
		samples, err = addNoise(samples, *noise, sampleRate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
	}

	if *band != "" {
		low, high, err := parseBand(*band)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		samples = filter.Bandpass(low, high, bandFilterOrder, sampleRate).Process(samples)
	}

	res := doppler.Estimate(samples, doppler.Config{SampleRate: sampleRate})

	printResult(res, sampleRate, len(samples))

	if *showStats {
		printStats(timestats.Calculate(samples, sampleRate))
	}

	if *showFeatures {
		printFeatures(features.Summarize(samples, sampleRate))
	}

	if *showSplit {
		printSplit(doppler.SplitApproachRecede(samples, doppler.Config{SampleRate: sampleRate}), sampleRate)
	}

	if *chart != "" {
		if err := writeChart(*chart, res); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("chart written to %s\n", *chart)
	}

	if res.Failed() {
		os.Exit(1)
	}
}

func loadInput(sim bool, args []string, pass signal.DopplerPass) ([]float64, float64, error) {
	if sim {
		p, err := pass.Generate()
		if err != nil {
			return nil, 0, err
		}

		return p.Signal, p.SampleRate, nil
	}

	if len(args) != 1 {
		return nil, 0, fmt.Errorf("expected exactly one input file (or -sim); got %d", len(args))
	}

	return loadAudio(args[0])
}

// addNoise layers seeded white noise over a synthesized pass and restores
// unit peak amplitude.
func addNoise(samples []float64, amplitude, sampleRate float64) ([]float64, error) {
	gen := signal.NewGenerator(1, core.WithSampleRate(sampleRate))

	n, err := gen.WhiteNoise(amplitude, len(samples))
	if err != nil {
		return nil, err
	}

	return signal.Normalize(signal.Mix(samples, n), 1.0)
}

func parseBand(s string) (low, high float64, err error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid band %q: want low:high", s)
	}

	low, err = strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid band low %q: %w", parts[0], err)
	}

	high, err = strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid band high %q: %w", parts[1], err)
	}

	if low <= 0 || high <= low {
		return 0, 0, fmt.Errorf("invalid band %q: want 0 < low < high", s)
	}

	return low, high, nil
}

func printResult(res doppler.Result, sampleRate float64, numSamples int) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Input\t%.0f Hz, %.2f s\n", sampleRate, float64(numSamples)/sampleRate)
	fmt.Fprintf(tw, "Algorithm\t%s\n", res.Algorithm)

	if res.Failed() {
		fmt.Fprintf(tw, "Result\t%s\n", res.Err)
		tw.Flush()

		return
	}

	fmt.Fprintf(tw, "Velocity\t%.1f km/h (%.2f m/s)\n", res.VelocityKmh, res.VelocityMs)
	fmt.Fprintf(tw, "Source frequency\t%.1f Hz\n", res.EstimatedFreq)
	fmt.Fprintf(tw, "Approach / recede\t%.1f Hz / %.1f Hz\n", res.ApproachFreq, res.RecedeFreq)
	fmt.Fprintf(tw, "Tracking band\t%.0f - %.0f Hz\n", res.Band.Low, res.Band.High)
	fmt.Fprintf(tw, "Score\t%.4f\n", res.Score)
	tw.Flush()
}

func printStats(s timestats.Stats) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "RMS\t%.6f\n", s.RMS)
	fmt.Fprintf(tw, "Peak to peak\t%.6f\n", s.PeakToPeak)
	fmt.Fprintf(tw, "SNR\t%.2f dB\n", s.SNR_dB)
	fmt.Fprintf(tw, "Zero crossings\t%d\n", s.ZeroCrossings)
	tw.Flush()
}

func printFeatures(f features.Summary) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Spectral centroid\t%.2f Hz\n", f.SpectralCentroid)
	fmt.Fprintf(tw, "Spectral bandwidth\t%.2f Hz\n", f.SpectralBandwidth)
	fmt.Fprintf(tw, "Spectral rolloff\t%.2f Hz\n", f.SpectralRolloff)
	fmt.Fprintf(tw, "Zero-crossing rate\t%.6f\n", f.ZeroCrossingRate)
	fmt.Fprintf(tw, "Dominant frequency\t%.2f Hz\n", f.DominantFreq)
	fmt.Fprintf(tw, "Harmonic ratio\t%.4f\n", f.HarmonicRatio)
	tw.Flush()
}

func printSplit(s doppler.Split, sampleRate float64) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Closest approach\t%.2f s\n", s.TransitionTime)
	fmt.Fprintf(tw, "Approach phase\t%.2f s\n", float64(s.ApproachLen)/sampleRate)
	fmt.Fprintf(tw, "Recede phase\t%.2f s\n", float64(s.RecedeLen)/sampleRate)
	tw.Flush()
}
