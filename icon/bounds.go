package icon

import (
	"image"
)

// OpaqueBounds returns the smallest rectangle holding every pixel with
// non-zero alpha. It is empty when the image is fully transparent.
func OpaqueBounds(img image.Image) image.Rectangle {
	b := img.Bounds()
	var box image.Rectangle
	found := false

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			px := image.Rect(x, y, x+1, y+1)
			if !found {
				box = px
				found = true
				continue
			}
			box = box.Union(px)
		}
	}

	return box
}
