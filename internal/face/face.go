// Package face renders the cartoon avatar overlaid on every generated scene.
package face

import (
	"fmt"

	"github.com/fogleman/gg"
)

// DefaultSize is the width and height of the rendered avatar in pixels.
const DefaultSize = 400

// Renderer draws avatar faces as PNG files. The layout is fixed and scales
// with Size; only the mouth changes with mood.
type Renderer struct {
	Size int
}

// NewRenderer returns a Renderer producing DefaultSize avatars.
func NewRenderer() *Renderer {
	return &Renderer{Size: DefaultSize}
}

// Render draws the avatar for the given mood and writes it as a PNG with a
// transparent background to outputPath. A "sad" mood turns the mouth down;
// every other mood gets the upturned mouth.
func (r *Renderer) Render(mood, outputPath string) error {
	s := float64(r.Size)
	dc := gg.NewContext(r.Size, r.Size)

	cx, cy := s/2, s/2
	faceRadius := 0.45 * s

	// Face
	dc.DrawCircle(cx, cy, faceRadius)
	dc.SetRGB255(255, 224, 189)
	dc.FillPreserve()
	dc.SetRGB255(0, 0, 0)
	dc.SetLineWidth(4)
	dc.Stroke()

	// Eyes
	eyeY := cy - 0.1*s
	dc.DrawCircle(cx-0.15*s, eyeY, 0.05*s)
	dc.DrawCircle(cx+0.15*s, eyeY, 0.05*s)
	dc.SetRGB255(0, 0, 0)
	dc.Fill()

	// Mouth, angles in the y-down convention: 20..160 degrees bows downward,
	// 200..340 bows upward
	dc.SetRGB255(0, 0, 0)
	dc.SetLineWidth(5)
	if mood == "sad" {
		dc.DrawEllipticalArc(cx, cy+0.2*s, 0.2*s, 0.15*s, gg.Radians(20), gg.Radians(160))
	} else {
		dc.DrawEllipticalArc(cx, cy+0.15*s, 0.2*s, 0.15*s, gg.Radians(200), gg.Radians(340))
	}
	dc.Stroke()

	// Hair
	dc.DrawRectangle(cx-0.25*s, cy-faceRadius-0.08*s, 0.5*s, 0.2*s)
	dc.SetRGB255(60, 40, 30)
	dc.Fill()

	if err := dc.SavePNG(outputPath); err != nil {
		return fmt.Errorf("saving avatar image: %w", err)
	}
	return nil
}
