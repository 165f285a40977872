package series

import (
	"github.com/cwbudde/algo-vecmath"

	"github.com/nrkit/relseries/window"
)

// WindowInPlace multiplies the values by the coefficients of the given
// window type, tapering the series edges before spectral analysis. Like
// the other analysis paths it fails with ErrMaskedData on a masked
// series; remove the masked points first.
func (s *Series) WindowInPlace(t window.Type, opts ...window.Option) error {
	if err := s.requireUnmasked("windowing"); err != nil {
		return err
	}

	s.applyCoefficients(window.Generate(t, len(s.x), opts...))

	return nil
}

// Windowed returns a new series multiplied by the given window.
func (s *Series) Windowed(t window.Type, opts ...window.Option) (*Series, error) {
	out := s.Copy()
	if err := out.WindowInPlace(t, opts...); err != nil {
		return nil, err
	}

	return out, nil
}

// TukeyWindowInPlace applies a Tukey window with tapered fraction alpha.
func (s *Series) TukeyWindowInPlace(alpha float64) error {
	if err := s.requireUnmasked("windowing"); err != nil {
		return err
	}

	coeffs, err := window.Tukey(len(s.x), alpha)
	if err != nil {
		return err
	}

	s.applyCoefficients(coeffs)

	return nil
}

// TukeyWindowed returns a new series multiplied by a Tukey window with
// tapered fraction alpha.
func (s *Series) TukeyWindowed(alpha float64) (*Series, error) {
	out := s.Copy()
	if err := out.TukeyWindowInPlace(alpha); err != nil {
		return nil, err
	}

	return out, nil
}

func (s *Series) applyCoefficients(coeffs []float64) {
	vecmath.MulBlockInPlace(s.re, coeffs)

	if s.im != nil {
		vecmath.MulBlockInPlace(s.im, coeffs)
	}
}
