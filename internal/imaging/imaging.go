// Package imaging prepares background images for slide rendering.
package imaging

import (
	"bytes"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"

	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
)

// Background dimensions matching the 16:9 canvas.
const (
	BackgroundWidth  = 1920
	BackgroundHeight = 1080
)

// Fit decodes an image (PNG, JPEG, GIF or BMP), scales it to exactly
// width x height and re-encodes it as PNG. Any decode or encode failure
// returns the original bytes unchanged; resizing is a convenience, never a
// reason to fail.
func Fit(data []byte, width, height int) []byte {
	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return data
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)

	var buf bytes.Buffer
	if err := png.Encode(&buf, dst); err != nil {
		return data
	}
	return buf.Bytes()
}
