// Package series implements the masked series abstraction at the heart of
// numerical-relativity post-processing: an ordered sequence of
// (coordinate, value) pairs with strictly increasing coordinates, where the
// coordinate is time for waveform data and frequency for its transform.
//
// Values may be real or complex. An optional mask hides individual points
// from reductions (Mean, Max, ...) without changing the series length;
// operations that need a clean domain (spline evaluation, calculus,
// resampling, smoothing, windowing, spectral transforms) reject masked
// input until the masked points are removed.
//
// Every transforming operation comes in two forms following the
// algo-vecmath convention: Xxx returns a new independently owned series,
// XxxInPlace mutates the receiver.
//
// Common workflows:
//   - New / NewComplex, then element-wise algebra via Add, Mul, Scale
//   - ResampleCommon to align series from different output grids
//   - Eval / Differentiated / Integrated for spline calculus
//   - MeanRemoveInPlace + WindowInPlace + ToFrequencyDomain +
//     PeaksFrequencies for spectral analysis
package series
