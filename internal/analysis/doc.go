// Package analysis provides numeric postprocessing for simulation output.
//
// The package includes the routines the plotting layer builds on:
//
//   - [MovingAverage]: valid-mode sliding-window smoothing of a series
//   - [KDE]: Gaussian kernel density estimate on a uniform grid
//
// # Smoothing
//
// MovingAverage keeps only fully-overlapped window positions, so the
// smoothed series is shorter than its input and aligns with the tail of
// the time axis:
//
//	smooth := analysis.MovingAverage(temps, 10)
//	times := tbl.X[9:]
package analysis
