package imagex

import (
	"bytes"
	"image"

	"github.com/disintegration/imaging"
	"github.com/rwcarlsen/goexif/exif"
)

// Phone cameras record the physical orientation in EXIF instead of rotating
// the pixels, so an upload can reach the model sideways. Normalize applies the
// recorded orientation and clamps the longest side to maxDimension before the
// bytes are handed to the inference engine.
//
// Normalize is best effort: bytes it cannot decode are returned unchanged and
// left for the engine's own decoder to reject.
func Normalize(imageData []byte, maxDimension int) []byte {
	orientation := findExifOrientation(imageData)

	img, err := imaging.Decode(bytes.NewReader(imageData))
	if err != nil {
		return imageData
	}

	bounds := img.Bounds()
	needsResize := maxDimension > 0 && (bounds.Dx() > maxDimension || bounds.Dy() > maxDimension)

	if orientation == 1 && !needsResize {
		return imageData
	}

	img = correctOrientation(img, orientation)

	if needsResize {
		img = imaging.Fit(img, maxDimension, maxDimension, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(92)); err != nil {
		return imageData
	}

	return buf.Bytes()
}

func findExifOrientation(imageData []byte) int {
	x, err := exif.Decode(bytes.NewReader(imageData))
	if err != nil {
		return 1
	}

	tag, err := x.Get(exif.Orientation)
	if err != nil {
		return 1
	}

	orientation, err := tag.Int(0)
	if err != nil || orientation < 1 || orientation > 8 {
		return 1
	}

	return orientation
}

func correctOrientation(img image.Image, orientation int) image.Image {
	switch orientation {
	case 2:
		return imaging.FlipH(img)
	case 3:
		return imaging.Rotate180(img)
	case 4:
		return imaging.FlipV(img)
	case 5:
		return imaging.Transpose(img)
	case 6:
		return imaging.Rotate270(img)
	case 7:
		return imaging.Transverse(img)
	case 8:
		return imaging.Rotate90(img)
	default:
		return img
	}
}
