package soundseal

import (
	"image"
	"math"
)

// PackPixels maps a flat payload buffer onto an RGBA pixel grid. Each
// pixel carries three payload bytes in its R, G and B channels, in
// row-major order; alpha is fixed at 255 and carries no data.
//
// The grid is chosen roughly square: width = ceil(sqrt(pixels)),
// height = ceil(pixels / width). Decoding only relies on the row-major
// R-then-G-then-B order, not on the exact dimensions. Capacity beyond
// the payload is zero-filled.
func PackPixels(payload []byte) *image.NRGBA {
	pixels := (len(payload) + BytesPerPixel - 1) / BytesPerPixel
	if pixels == 0 {
		return image.NewNRGBA(image.Rect(0, 0, 0, 0))
	}

	width := int(math.Ceil(math.Sqrt(float64(pixels))))
	height := (pixels + width - 1) / width

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < width*height; i++ {
		off := i * 4
		for c := 0; c < BytesPerPixel; c++ {
			if idx := i*BytesPerPixel + c; idx < len(payload) {
				img.Pix[off+c] = payload[idx]
			}
		}
		img.Pix[off+3] = 0xFF
	}

	return img
}

// UnpackPixels reads the R, G and B channels of every pixel in
// row-major order, producing a flat buffer of width*height*3 bytes.
// Alpha is ignored. Validation of the recovered bytes is entirely
// ParsePayload's job; trailing pad bytes are discarded there.
func UnpackPixels(img image.Image) []byte {
	bounds := img.Bounds()
	out := make([]byte, 0, bounds.Dx()*bounds.Dy()*BytesPerPixel)

	if src, ok := img.(*image.NRGBA); ok {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			row := src.Pix[src.PixOffset(bounds.Min.X, y):src.PixOffset(bounds.Max.X, y)]
			for x := 0; x < len(row); x += 4 {
				out = append(out, row[x], row[x+1], row[x+2])
			}
		}
		return out
	}

	// Generic path. Alpha is always 255 in well-formed artifacts, so
	// premultiplied color values equal the stored bytes.
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			out = append(out, byte(r>>8), byte(g>>8), byte(b>>8))
		}
	}
	return out
}
