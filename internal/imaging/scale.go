// Package imaging renders and processes the tour's visual assets: branded
// placeholder images, downloaded collection images fitted to the target
// bounds, and the icon set for the web app shell.
package imaging

import (
	"image"

	"golang.org/x/image/draw"
)

// fitDimensions calculates dimensions that fit within maxWidth×maxHeight
// while maintaining aspect ratio. Images already inside the box keep their
// original size.
func fitDimensions(width, height, maxWidth, maxHeight int) (int, int) {
	if width <= maxWidth && height <= maxHeight {
		return width, height
	}

	scaleW := float64(maxWidth) / float64(width)
	scaleH := float64(maxHeight) / float64(height)
	scale := scaleW
	if scaleH < scaleW {
		scale = scaleH
	}

	newWidth := int(float64(width) * scale)
	newHeight := int(float64(height) * scale)
	if newWidth < 1 {
		newWidth = 1
	}
	if newHeight < 1 {
		newHeight = 1
	}
	return newWidth, newHeight
}

// FitTo scales img down to fit within maxWidth×maxHeight, maintaining
// aspect ratio. Images already inside the box are returned unchanged.
func FitTo(img image.Image, maxWidth, maxHeight int) image.Image {
	bounds := img.Bounds()
	origWidth := bounds.Dx()
	origHeight := bounds.Dy()

	newWidth, newHeight := fitDimensions(origWidth, origHeight, maxWidth, maxHeight)
	if newWidth == origWidth && newHeight == origHeight {
		return img
	}

	resized := image.NewRGBA(image.Rect(0, 0, newWidth, newHeight))
	draw.CatmullRom.Scale(resized, resized.Bounds(), img, bounds, draw.Over, nil)
	return resized
}
