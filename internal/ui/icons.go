package ui

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
)

const iconSize = 32

// stateColors maps icon states to their fill colors.
var stateColors = map[string]color.NRGBA{
	"connected": {30, 200, 90, 255},
	"busy":      {240, 190, 30, 255},
	"warning":   {220, 55, 55, 255},
	"idle":      {160, 160, 160, 255},
}

// GetIcon returns the tray icon for the given state in the platform's
// preferred container.
func GetIcon(state string) []byte {
	return wrapIcon(renderPNG(state))
}

// renderPNG draws a filled disc with a light ring, plus a center dot when
// DNS is connected.
func renderPNG(state string) []byte {
	fill, ok := stateColors[state]
	if !ok {
		fill = stateColors["idle"]
	}

	img := image.NewNRGBA(image.Rect(0, 0, iconSize, iconSize))
	c := float64(iconSize-1) / 2
	for y := 0; y < iconSize; y++ {
		for x := 0; x < iconSize; x++ {
			d := math.Hypot(float64(x)-c, float64(y)-c)
			switch {
			case d <= 12:
				img.SetNRGBA(x, y, fill)
			case d <= 15:
				img.SetNRGBA(x, y, color.NRGBA{255, 255, 255, 230})
			case d <= 16:
				// anti-aliased edge
				a := uint8(230 * (16 - d))
				img.SetNRGBA(x, y, color.NRGBA{255, 255, 255, a})
			}
			if state == "connected" && d <= 4 {
				img.SetNRGBA(x, y, color.NRGBA{255, 255, 255, 255})
			}
		}
	}

	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return buf.Bytes()
}
