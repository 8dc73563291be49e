package facedetect

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ImgWidth = 10
const ImgHeight = 10

func TestGrayscale(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, ImgWidth, ImgHeight))
	for i := 0; i < img.Bounds().Dx(); i++ {
		for j := 0; j < img.Bounds().Dy(); j++ {
			img.Set(i, j, color.RGBA{177, 177, 177, 255})
		}
	}

	gray := Grayscale(img)
	require.Len(t, gray, ImgWidth*ImgHeight)
	for i, v := range gray {
		assert.InDelta(t, 177, int(v), 1, "pixel %d", i)
	}
}

func TestGrayscale_ShouldWeightChannels(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	img.Set(1, 0, color.NRGBA{G: 255, A: 255})
	img.Set(2, 0, color.NRGBA{B: 255, A: 255})

	gray := Grayscale(img)
	assert.InDelta(t, 76, int(gray[0]), 1)
	assert.InDelta(t, 149, int(gray[1]), 1)
	assert.InDelta(t, 29, int(gray[2]), 1)
}

func TestEqualizeHist(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, EqualizeHist(nil))
	})

	t.Run("uniform plane is unchanged", func(t *testing.T) {
		src := []uint8{90, 90, 90, 90}
		assert.Equal(t, src, EqualizeHist(src))
	})

	t.Run("stretches to full range", func(t *testing.T) {
		src := []uint8{100, 100, 110, 120}
		dst := EqualizeHist(src)

		assert.Equal(t, []uint8{0, 0, 128, 255}, dst)
		assert.Equal(t, []uint8{100, 100, 110, 120}, src)
	})

	t.Run("keeps the order of intensities", func(t *testing.T) {
		src := make([]uint8, 256)
		for i := range src {
			src[i] = uint8(i / 4)
		}
		dst := EqualizeHist(src)
		for i := 1; i < len(dst); i++ {
			assert.GreaterOrEqual(t, dst[i], dst[i-1])
		}
		assert.Equal(t, uint8(0), dst[0])
		assert.Equal(t, uint8(255), dst[len(dst)-1])
	})
}
