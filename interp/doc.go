// Package interp provides natural cubic spline interpolation on strictly
// increasing knots.
//
// A Spline is built once from knot/value pairs and can then be evaluated,
// differentiated, and integrated at arbitrary points inside its domain.
//
// Common workflows:
//   - NewSpline(x, y) followed by At / Derivative / Integral
//   - Resample(x, y, newX) one-shot grid transfer
package interp
