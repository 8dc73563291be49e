package synth

import (
	"image/color"
	"math"
	"sync"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
)

// Colors used by the generators.
var (
	white     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	black     = color.NRGBA{A: 255}
	green     = color.NRGBA{G: 255, A: 255}
	blue      = color.NRGBA{B: 255, A: 255}
	red       = color.NRGBA{R: 255, A: 255}
	skin      = color.NRGBA{R: 160, G: 180, B: 200, A: 255}
	outline   = color.NRGBA{R: 110, G: 130, B: 150, A: 255}
	pupil     = color.NRGBA{R: 50, G: 50, B: 50, A: 255}
	lips      = color.NRGBA{R: 60, G: 80, B: 100, A: 255}
	lightSkin = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
)

var (
	fontOnce sync.Once
	fontTTF  *truetype.Font
)

// fontFace returns the caption font at the given size. When the embedded
// Go font cannot be parsed the gg default face is kept and nil is returned.
func fontFace(size float64) font.Face {
	fontOnce.Do(func() {
		fontTTF, _ = truetype.Parse(goregular.TTF)
	})
	if fontTTF == nil {
		return nil
	}
	return truetype.NewFace(fontTTF, &truetype.Options{Size: size})
}

func gray(v uint8) color.NRGBA {
	return color.NRGBA{R: v, G: v, B: v, A: 255}
}

func fillCircle(dc *gg.Context, x, y, r float64, c color.Color) {
	dc.DrawCircle(x, y, r)
	dc.SetColor(c)
	dc.Fill()
}

func strokeCircle(dc *gg.Context, x, y, r, width float64, c color.Color) {
	dc.DrawCircle(x, y, r)
	dc.SetColor(c)
	dc.SetLineWidth(width)
	dc.Stroke()
}

func fillRect(dc *gg.Context, x0, y0, x1, y1 float64, c color.Color) {
	dc.DrawRectangle(x0, y0, x1-x0, y1-y0)
	dc.SetColor(c)
	dc.Fill()
}

// smile draws the lower half of an ellipse, the usual mouth shape.
func smile(dc *gg.Context, x, y, rx, ry, width float64, c color.Color) {
	dc.NewSubPath()
	dc.DrawEllipticalArc(x, y, rx, ry, 0, math.Pi)
	dc.SetColor(c)
	dc.SetLineWidth(width)
	dc.Stroke()
}

func caption(dc *gg.Context, s string, x, y, size float64) {
	if ff := fontFace(size); ff != nil {
		dc.SetFontFace(ff)
	}
	dc.SetColor(black)
	dc.DrawString(s, x, y)
}

// faceStyle describes the features of a synthetic face relative to its center.
type faceStyle struct {
	fill, edge, mouth color.Color

	eyeDX, eyeDY, eyeR float64
	noseR              float64

	mouthDY, mouthRX, mouthRY float64
}

// proportional returns the feature layout scaled from the face radius.
func proportional(radius float64) faceStyle {
	offset := math.Floor(radius / 3)
	half := math.Floor(offset / 2)
	mouth := math.Max(8, math.Floor(radius/6))

	return faceStyle{
		fill:    skin,
		edge:    outline,
		mouth:   lips,
		eyeDX:   half,
		eyeDY:   half,
		eyeR:    math.Max(4, math.Floor(radius/12)),
		noseR:   math.Max(2, math.Floor(radius/25)),
		mouthDY: half,
		mouthRX: mouth,
		mouthRY: math.Floor(mouth / 2),
	}
}

// face draws a round face with eyes, nose and mouth.
func face(dc *gg.Context, cx, cy, radius float64, st faceStyle) {
	fillCircle(dc, cx, cy, radius, st.fill)
	strokeCircle(dc, cx, cy, radius, 2, st.edge)

	fillCircle(dc, cx-st.eyeDX, cy-st.eyeDY, st.eyeR, pupil)
	fillCircle(dc, cx+st.eyeDX, cy-st.eyeDY, st.eyeR, pupil)

	fillCircle(dc, cx, cy, st.noseR, st.edge)

	smile(dc, cx, cy+st.mouthDY, st.mouthRX, st.mouthRY, 2, st.mouth)
}
