// Package forge provides shared raster and color primitives for the
// designforge asset-generation toolkit.
//
// The root package holds the pieces every generator needs: the Pixmap
// pixel buffer, the RGBA color type, PNG/BMP/data-URI export adapters,
// and the package-level logger. The generators themselves live in
// focused subpackages:
//
//   - noise:     deterministic procedural texture synthesis
//   - gradient:  CSS gradient builder with raster previews
//   - pattern:   SVG pattern builder
//   - shadow:    layered CSS box-shadow builder
//   - contrast:  WCAG contrast arithmetic and reports
//   - typescale: modular typographic scales
//   - timeline:  CSS keyframe timeline builder
//   - regexlab:  regex test runner
//   - icons:     multi-size icon bundle rendering
//   - dataset:   deterministic synthetic record generation
//
// All generation is deterministic: given the same options (including a
// seed where one applies), every generator produces byte-identical
// output across runs and platforms.
package forge
