// Package noise implements deterministic procedural texture synthesis.
//
// Given a seed and a set of numeric parameters, Generate produces a
// reproducible RGBA pixel buffer showing one of five noise looks: film
// grain, soft grain, speckle, dust, or horizontal scan-lines. The same
// options always produce a byte-identical buffer, across runs and
// platforms — that reproducibility is the central contract of the
// package and every sampler is written around it.
//
// The pipeline has three stages. A seeded stream (internal/prng) is the
// sole randomness source. The field generator consumes it in strict
// raster order, one sample per scale×scale cell (per output row for the
// lines variant). The compositor then maps raw samples through contrast
// remapping, tint blending and alpha scaling into final pixels,
// broadcasting each cell's color over its block with no smoothing —
// the hard block edges are the visual signature of the scale knob.
//
// Generation is synchronous and allocation-light: one pass, one output
// buffer, no shared state between calls. A 4096×4096 generation at
// scale 1 walks ~16.7M cells and is CPU-bound; run it off the caller's
// hot path if latency matters.
package noise
