// Package synth draws simple geometric test images for exercising the face detector:
// images without any face, and images with one or more cartoon faces.
// None of them contain a real face, so they are meant to check the detector
// plumbing and its false positive rate rather than its accuracy.
package synth

import (
	"fmt"
	"image"
	"image/color"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/facedetectapi/facedetect/utils"
	"github.com/fogleman/gg"
)

// Generator draws a test image. The random source is only used by the
// generators adding noise.
type Generator func(rng *rand.Rand) *image.NRGBA

// Sample is a named test image.
type Sample struct {
	Name        string
	File        string
	Description string
	// Faces is the number of face-like shapes drawn.
	Faces int
	Draw  Generator
}

// Samples returns every known test image, in generation order.
func Samples() []Sample {
	return []Sample{
		{"no-face", "test_no_face.jpg", "geometric shapes only", 0, func(*rand.Rand) *image.NRGBA { return NoFace() }},
		{"face-like", "test_face_like.jpg", "gray oval with eyes, nose and mouth", 1, func(*rand.Rand) *image.NRGBA { return FaceLike() }},
		{"portrait", "portrait.jpg", "single portrait-like face", 1, func(*rand.Rand) *image.NRGBA { return Portrait() }},
		{"group", "group.jpg", "four faces of growing size", 4, func(*rand.Rand) *image.NRGBA { return Group() }},
		{"family", "family.jpg", "two adult and two child faces", 4, func(*rand.Rand) *image.NRGBA { return Family() }},
		{"challenge", "challenge.jpg", "three faces on a noisy background with varying lighting", 3, Challenge},
	}
}

// Lookup returns the sample with the given name.
func Lookup(name string) (Sample, bool) {
	for _, s := range Samples() {
		if s.Name == name {
			return s, true
		}
	}
	return Sample{}, false
}

// NoFace draws a white canvas with a green square, a blue disk and a red square.
func NoFace() *image.NRGBA {
	dc := gg.NewContext(600, 400)
	dc.SetColor(white)
	dc.Clear()

	fillRect(dc, 50, 50, 150, 150, green)
	fillCircle(dc, 300, 200, 80, blue)
	fillRect(dc, 450, 250, 550, 350, red)
	caption(dc, "No Faces Here", 200, 350, 24)

	return imaging.Clone(dc.Image())
}

// FaceLike draws a single gray oval with two eyes, a nose and a mouth.
func FaceLike() *image.NRGBA {
	dc := gg.NewContext(400, 400)
	dc.SetColor(white)
	dc.Clear()

	dc.DrawEllipse(200, 200, 80, 100)
	dc.SetColor(lightSkin)
	dc.Fill()

	fillCircle(dc, 175, 180, 15, black)
	fillCircle(dc, 225, 180, 15, black)

	dc.DrawLine(200, 200, 200, 220)
	dc.SetColor(black)
	dc.SetLineWidth(3)
	dc.Stroke()

	smile(dc, 200, 240, 20, 10, 2, black)
	caption(dc, "Face-like Pattern", 100, 50, 17)

	return imaging.Clone(dc.Image())
}

// Portrait draws one face in the middle of a light gray canvas.
func Portrait() *image.NRGBA {
	dc := gg.NewContext(300, 400)
	dc.SetColor(gray(240))
	dc.Clear()

	st := proportional(80)
	st.eyeDX, st.eyeDY, st.eyeR = 30, 20, 8
	st.noseR = 3
	st.mouthDY, st.mouthRX, st.mouthRY = 20, 15, 8
	face(dc, 150, 200, 80, st)

	return imaging.Clone(dc.Image())
}

// Group draws four faces, each slightly bigger than the previous one.
func Group() *image.NRGBA {
	dc := gg.NewContext(600, 400)
	dc.SetColor(gray(220))
	dc.Clear()

	centers := []image.Point{{150, 150}, {300, 150}, {450, 150}, {225, 280}}
	for i, c := range centers {
		radius := float64(60 + i*5)

		st := proportional(radius)
		st.eyeR = 6
		st.noseR = 2
		st.mouthRX, st.mouthRY = 12, 6
		face(dc, float64(c.X), float64(c.Y), radius, st)
	}

	return imaging.Clone(dc.Image())
}

// Family draws two adult sized and two child sized faces.
func Family() *image.NRGBA {
	dc := gg.NewContext(500, 450)
	dc.SetColor(gray(230))
	dc.Clear()

	faces := []struct{ x, y, r float64 }{
		{150, 150, 70},
		{350, 150, 70},
		{150, 320, 50},
		{350, 320, 45},
	}
	for _, f := range faces {
		face(dc, f.x, f.y, f.r, proportional(f.r))
	}

	return imaging.Clone(dc.Image())
}

// Challenge draws three faces with decreasing brightness over a noisy background.
// A nil rng uses a fixed seed.
func Challenge(rng *rand.Rand) *image.NRGBA {
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	const width, height = 500, 400
	bg := image.NewNRGBA(image.Rect(0, 0, width, height))
	for i := 0; i < len(bg.Pix); i += 4 {
		for c := 0; c < 3; c++ {
			bg.Pix[i+c] = uint8(utils.Min(180+rng.Intn(50), 255))
		}
		bg.Pix[i+3] = 0xff
	}
	dc := gg.NewContextForImage(bg)

	faces := []struct{ x, y, r float64 }{
		{150, 150, 60},
		{350, 150, 65},
		{250, 300, 55},
	}
	for i, f := range faces {
		b := 200 - i*30

		st := proportional(f.r)
		st.fill = shade(b, 0, 20, 40)
		st.edge = shade(b, 50, 70, 90)
		st.eyeR = 5
		st.noseR = 2
		st.mouthRX, st.mouthRY = 10, 5
		face(dc, f.x, f.y, f.r, st)
	}

	return imaging.Clone(dc.Image())
}

// shade returns the color obtained by darkening the brightness b by a different
// amount per channel, given in blue, green, red order.
func shade(b, db, dg, dr int) color.NRGBA {
	ch := func(d int) uint8 { return uint8(utils.Max(0, b-d)) }
	return color.NRGBA{R: ch(dr), G: ch(dg), B: ch(db), A: 255}
}

// WriteAll saves the named samples, or all of them when no name is given, into dir
// and returns the written file paths.
func WriteAll(dir string, seed int64, names ...string) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("unable to create the output directory: %w", err)
	}

	samples := Samples()
	if len(names) > 0 {
		samples = make([]Sample, 0, len(names))
		for _, n := range names {
			s, ok := Lookup(n)
			if !ok {
				return nil, fmt.Errorf("unknown sample: %q", n)
			}
			samples = append(samples, s)
		}
	}

	rng := rand.New(rand.NewSource(seed))
	paths := make([]string, 0, len(samples))
	for _, s := range samples {
		path := filepath.Join(dir, s.File)
		if err := imaging.Save(s.Draw(rng), path, imaging.JPEGQuality(95)); err != nil {
			return paths, fmt.Errorf("unable to save %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
