// Command ringinfo analyzes a synthetic ringdown signal and prints its
// dominant frequencies.
//
// It generates a damped sinusoid, conditions it the way a spectral
// pipeline would (mean removal, Tukey window), transforms it to the
// frequency domain and reports every spectral peak above the amplitude
// floor.
//
// Examples:
//
//	ringinfo
//	ringinfo -freq 250 -tau 0.02 -samples 8192
//	ringinfo -noise 0.05 -floor 1e-4
//	ringinfo -integrate -pcut 0.1
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"math"
	"os"
	"text/tabwriter"
	"time"

	"github.com/lmittmann/tint"

	"github.com/nrkit/relseries/series"
	"github.com/nrkit/relseries/signal"
)

func main() {
	freq := flag.Float64("freq", 150, "ringdown frequency in Hz")
	tau := flag.Float64("tau", 0.05, "damping time in seconds")
	duration := flag.Float64("duration", 1, "signal duration in seconds")
	samples := flag.Int("samples", 4096, "number of samples")
	noise := flag.Float64("noise", 0, "white noise amplitude")
	alpha := flag.Float64("alpha", 0.25, "tukey window tapered fraction")
	floor := flag.Float64("floor", 1e-3, "spectral amplitude floor for peak detection")
	integrate := flag.Bool("integrate", false, "integrate once in the frequency domain before peak detection")
	pcut := flag.Float64("pcut", 0.5, "longest period kept by spectral integration, in seconds")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}

	logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	}))

	if err := run(logger, *freq, *tau, *duration, *samples, *noise, *alpha, *floor, *integrate, *pcut); err != nil {
		logger.Error("analysis failed", "err", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, freq, tau, duration float64, samples int, noise, alpha, floor float64, integrate bool, pcut float64) error {
	s, err := buildSignal(freq, tau, duration, samples, noise)
	if err != nil {
		return err
	}

	dt, err := s.DX()
	if err != nil {
		return err
	}

	logger.Info("signal generated",
		"samples", s.Len(),
		"dt", dt,
		"freq", freq,
		"tau", tau,
		"noise", noise)

	s.MeanRemoveInPlace()
	if err := s.TukeyWindowInPlace(alpha); err != nil {
		return err
	}

	logger.Debug("signal conditioned", "alpha", alpha, "abs_max", s.AbsMax())

	spectrum, err := s.ToFrequencyDomain()
	if err != nil {
		return err
	}

	logger.Debug("spectrum computed",
		"bins", spectrum.Len(),
		"df", mustDX(spectrum),
		"f_max", spectrum.XMax())

	if integrate {
		spectrum, err = analyzeIntegrated(logger, s, pcut)
		if err != nil {
			return err
		}
	}

	// Negative frequencies mirror the positive ones for a real signal.
	positive, err := spectrum.Cropped(0, spectrum.XMax())
	if err != nil {
		return err
	}

	found, err := positive.PeaksFrequencies(floor)
	if err != nil {
		return err
	}

	if len(found) == 0 {
		logger.Info("no spectral peaks above floor", "floor", floor)
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "FREQ [Hz]\tAMPLITUDE\tPROMINENCE\tWIDTH [Hz]")

	for _, p := range found {
		fmt.Fprintf(w, "%.3f\t%.6g\t%.6g\t%.4f\n", p.X, p.Y, p.Prominence, p.Width)
	}

	return w.Flush()
}

// buildSignal generates the damped sinusoid with optional additive noise.
func buildSignal(freq, tau, duration float64, samples int, noise float64) (*series.Series, error) {
	t, err := signal.Linspace(0, duration, samples)
	if err != nil {
		return nil, err
	}

	v, err := signal.DampedSinusoid(t, 1, 2*math.Pi*freq, tau, 0)
	if err != nil {
		return nil, err
	}

	if noise > 0 {
		n, err := signal.WhiteNoise(samples, noise, 1)
		if err != nil {
			return nil, err
		}

		for i := range v {
			v[i] += n[i]
		}
	}

	return series.New(t, v)
}

// analyzeIntegrated replaces the spectrum with that of the spectrally
// integrated signal, the standard trick for turning a strain rate into a
// strain without low-frequency drift.
func analyzeIntegrated(logger *slog.Logger, s *series.Series, pcut float64) (*series.Series, error) {
	integrated, err := s.FixedFrequencyIntegrated(1, pcut)
	if err != nil {
		return nil, err
	}

	logger.Info("integrated in the frequency domain", "pcut", pcut)

	return integrated.ToFrequencyDomain()
}

func mustDX(s *series.Series) float64 {
	dx, err := s.DX()
	if err != nil {
		return 0
	}

	return dx
}
