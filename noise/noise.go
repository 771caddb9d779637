package noise

import (
	"github.com/designforge/forge"
	"github.com/designforge/forge/internal/prng"
)

// Generate produces a texture from opts and returns it as a pixel
// buffer of exactly opts.Width×opts.Height RGBA pixels (after
// clamping). The buffer is freshly allocated on every call and owned
// by the caller; Generate keeps no state between calls and is safe to
// invoke from any goroutine.
//
// For identical options — seed included — the returned buffer is
// byte-for-byte identical on every run and platform. On validation
// failure Generate returns nil and one of the package's sentinel
// errors; it never returns a partially populated buffer.
func Generate(opts Options) (*forge.Pixmap, error) {
	if err := opts.normalize(); err != nil {
		return nil, err
	}

	stream := prng.New(opts.Seed)
	f := generateField(stream, &opts)
	pm := composite(f, &opts)

	forge.Logger().Debug("noise: generated texture",
		"variant", opts.Variant.String(),
		"width", opts.Width,
		"height", opts.Height,
		"scale", opts.Scale,
		"cells", len(f.values),
	)
	return pm, nil
}
