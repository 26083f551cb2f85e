// Package imagex converts illustration bytes between the raw artifact form,
// canonical PNG and the data URI shown to clients.
package imagex

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	"image/png"
	"strings"
)

const pngDataURIPrefix = "data:image/png;base64,"

var ErrNotDataURI = errors.New("not a PNG data URI")

// ToPNG decodes any registered raster format and re-encodes it as PNG.
func ToPNG(raw []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// ToDataURI re-encodes raw as PNG and wraps it in a base64 data URI.
// Empty input yields "" and no error: entries without an image have no URI.
func ToDataURI(raw []byte) (string, error) {
	if len(raw) == 0 {
		return "", nil
	}
	data, err := ToPNG(raw)
	if err != nil {
		return "", err
	}
	return pngDataURIPrefix + base64.StdEncoding.EncodeToString(data), nil
}

// FromDataURI returns the PNG bytes carried by uri.
func FromDataURI(uri string) ([]byte, error) {
	if !strings.HasPrefix(uri, pngDataURIPrefix) {
		return nil, ErrNotDataURI
	}
	data, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(uri, pngDataURIPrefix))
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}
	return data, nil
}
