// Package reference holds independent implementations of valid-mode 2-D
// correlation used to cross-check the windowed implementation in dsp/conv2d.
//
// Neither oracle shares code with dsp/conv2d: [Direct] walks output cells with
// a textbook four-level loop, and [FFT] multiplies spectra computed with
// algo-fft.
package reference
