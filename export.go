package forge

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image/png"
	"os"

	"golang.org/x/image/bmp"
)

// ErrEncodingFailure reports that an external image encoder could not
// produce bytes for a pixel buffer. Export adapters wrap the encoder's
// error so callers can distinguish encoder failures from bad
// parameters with errors.Is.
var ErrEncodingFailure = errors.New("forge: image encoding failed")

// EncodePNG encodes the pixmap as PNG and returns the raw file bytes.
// Encoding is delegated to the standard library encoder; the pixmap
// itself is not modified. Failures are wrapped with ErrEncodingFailure.
func (p *Pixmap) EncodePNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, p.ToImage()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingFailure, err)
	}
	return buf.Bytes(), nil
}

// EncodeBMP encodes the pixmap as BMP and returns the raw file bytes.
func (p *Pixmap) EncodeBMP() ([]byte, error) {
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, p.ToImage()); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncodingFailure, err)
	}
	return buf.Bytes(), nil
}

// DataURI encodes the pixmap as PNG and wraps the bytes in a
// base64 data URI suitable for embedding in HTML or CSS.
func (p *Pixmap) DataURI() (string, error) {
	raw, err := p.EncodePNG()
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(raw), nil
}

// SavePNG saves the pixmap to a PNG file.
func (p *Pixmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is user-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	if err := png.Encode(f, p.ToImage()); err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingFailure, err)
	}
	return nil
}
