package imaging

import (
	"fmt"
	"image"
	"log/slog"

	"golang.org/x/image/draw"
)

const (
	// contrastFactor is the fixed multiplier applied around the midpoint.
	contrastFactor = 1.3

	// minWidth and minHeight define the minimum pixel footprint for OCR
	// input. Smaller images are upscaled preserving aspect ratio.
	minWidth  = 800
	minHeight = 1000
)

// Enhance converts the image to grayscale, boosts contrast by a fixed
// factor, and upscales it when below the minimum footprint.
func Enhance(img image.Image) (image.Image, error) {
	if img == nil {
		return nil, fmt.Errorf("nil image")
	}
	bounds := img.Bounds()
	if bounds.Dx() <= 0 || bounds.Dy() <= 0 {
		return nil, fmt.Errorf("empty image bounds %v", bounds)
	}

	gray := toGray(img)
	boosted := boostContrast(gray, contrastFactor)
	return upscale(boosted), nil
}

// EnhanceOrOriginal applies Enhance, falling back to the unprocessed image
// with a logged warning if enhancement fails. This is the one recovery path
// in the pipeline; everything else fails the whole document.
func EnhanceOrOriginal(img image.Image, logger *slog.Logger) image.Image {
	if logger == nil {
		logger = slog.Default()
	}
	enhanced, err := Enhance(img)
	if err != nil {
		logger.Warn("image enhancement failed, using original image", "error", err)
		return img
	}
	return enhanced
}

func toGray(img image.Image) *image.Gray {
	if gray, ok := img.(*image.Gray); ok {
		return gray
	}
	bounds := img.Bounds()
	gray := image.NewGray(bounds)
	draw.Draw(gray, bounds, img, bounds.Min, draw.Src)
	return gray
}

// boostContrast scales pixel intensity away from the midpoint (128) by the
// given factor, clamping to [0, 255].
func boostContrast(img *image.Gray, factor float64) *image.Gray {
	bounds := img.Bounds()
	out := image.NewGray(bounds)
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			v := float64(img.GrayAt(x, y).Y)
			v = 128 + (v-128)*factor
			if v < 0 {
				v = 0
			} else if v > 255 {
				v = 255
			}
			out.Pix[out.PixOffset(x, y)] = uint8(v + 0.5)
		}
	}
	return out
}

// upscale resizes the image with Catmull-Rom interpolation when either
// dimension is below the minimum footprint. Larger images pass through.
func upscale(img *image.Gray) image.Image {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width >= minWidth && height >= minHeight {
		return img
	}

	scale := float64(minWidth) / float64(width)
	if s := float64(minHeight) / float64(height); s > scale {
		scale = s
	}
	newW := int(float64(width) * scale)
	newH := int(float64(height) * scale)

	out := image.NewGray(image.Rect(0, 0, newW, newH))
	draw.CatmullRom.Scale(out, out.Bounds(), img, bounds, draw.Src, nil)
	return out
}
