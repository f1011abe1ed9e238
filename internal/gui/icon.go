package gui

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"sync"

	"fyne.io/fyne/v2"
)

const iconSize = 256

var (
	iconOnce     sync.Once
	iconResource fyne.Resource
)

// GetAppIcon returns the application icon as a Fyne resource. The icon is a
// rendered star badge so no image asset has to ship with the binary.
func GetAppIcon() fyne.Resource {
	iconOnce.Do(func() {
		var buf bytes.Buffer
		if err := png.Encode(&buf, renderIcon(iconSize)); err != nil {
			return
		}
		iconResource = &fyne.StaticResource{
			StaticName:    "proplay.png",
			StaticContent: buf.Bytes(),
		}
	})
	return iconResource
}

func renderIcon(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	background := color.NRGBA{R: 0x63, G: 0x66, B: 0xf1, A: 0xff}
	star := color.NRGBA{R: 0xfa, G: 0xcc, B: 0x15, A: 0xff}

	c := float64(size) / 2
	radius := c * 0.95
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx, dy := float64(x)-c+0.5, float64(y)-c+0.5
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			if inDiamond(dx, dy, c*0.6) {
				img.SetNRGBA(x, y, star)
			} else {
				img.SetNRGBA(x, y, background)
			}
		}
	}
	return img
}

// inDiamond reports whether the point lies in a four-pointed star made of
// two overlapping thin diamonds.
func inDiamond(dx, dy, r float64) bool {
	abs := func(v float64) float64 {
		if v < 0 {
			return -v
		}
		return v
	}
	ax, ay := abs(dx), abs(dy)
	return ax/r+ay/(r*0.35) <= 1 || ax/(r*0.35)+ay/r <= 1
}
