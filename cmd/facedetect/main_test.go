package main

import (
	"bytes"
	"encoding/binary"
	"errors"
	"flag"
	"image/color"
	"io"
	"log"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/facedetectapi/facedetect"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stumpCascade writes a pigo cascade whose single tree rejects every window.
func stumpCascade(t *testing.T) string {
	t.Helper()

	buf := make([]byte, 8, 24)
	buf = binary.LittleEndian.AppendUint32(buf, 0) // tree depth
	buf = binary.LittleEndian.AppendUint32(buf, 1) // number of trees
	buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(-1))
	buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(0))

	path := filepath.Join(t.TempDir(), "facefinder")
	require.NoError(t, os.WriteFile(path, buf, 0644))
	return path
}

func grayImage(t *testing.T, name string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, imaging.Save(imaging.New(80, 60, color.NRGBA{R: 90, G: 90, B: 90, A: 255}), path))
	return path
}

func decode(t *testing.T, out *bytes.Buffer) facedetect.Response {
	t.Helper()

	var res facedetect.Response
	require.NoError(t, json.Unmarshal(out.Bytes(), &res), "stdout: %q", out.String())
	return res
}

func TestRun_NoImagePath(t *testing.T) {
	var stdout, stderr bytes.Buffer

	assert.Equal(t, 1, run([]string{"-pretty"}, &stdout, &stderr))
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "Usage: facedetect")
	assert.Contains(t, stderr.String(), "Please provide the path of the image")

	stderr.Reset()
	assert.Equal(t, 1, run([]string{"-quiet"}, &stdout, &stderr))
	assert.Empty(t, stderr.String())
}

func TestRun_UnknownFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 1, run([]string{"-bogus", "img.jpg"}, &stdout, &stderr))
	assert.Empty(t, stdout.String())
}

func TestRun_Version(t *testing.T) {
	var stdout, stderr bytes.Buffer
	assert.Equal(t, 0, run([]string{"-version"}, &stdout, &stderr))
	assert.Equal(t, "facedetect "+Version+"\n", stdout.String())
}

func TestRun_Success(t *testing.T) {
	var stdout, stderr bytes.Buffer
	img := grayImage(t, "gray.png")

	code := run([]string{img, "-engine", "pigo", "-cascade", stumpCascade(t), "-quiet"}, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Empty(t, stderr.String())

	res := decode(t, &stdout)
	assert.True(t, res.Success)
	assert.Equal(t, 0, res.Data.FaceCount)
	assert.Equal(t, []facedetect.Rect{}, res.Data.Faces)
	require.NotNil(t, res.Data.ImageInfo)
	assert.Equal(t, 80, res.Data.ImageInfo.Width)
	require.NotNil(t, res.ProcessingInfo)
	assert.Equal(t, "pigo", res.ProcessingInfo.Engine)
}

func TestRun_Failures(t *testing.T) {
	img := grayImage(t, "gray.png")
	cascade := stumpCascade(t)

	tests := []struct {
		name string
		args []string
		msg  string
	}{
		{
			name: "missing cascade",
			args: []string{img, "-engine", "pigo", "-cascade", filepath.Join(t.TempDir(), "none"), "-quiet"},
			msg:  "Cascade file not found",
		},
		{
			name: "missing image",
			args: []string{filepath.Join(t.TempDir(), "none.jpg"), "-engine", "pigo", "-cascade", cascade, "-quiet"},
			msg:  "Image not found",
		},
		{
			name: "invalid min size",
			args: []string{img, "-engine", "pigo", "-cascade", cascade, "-min-size", "2", "-quiet"},
			msg:  "min_size must be between 5 and 300",
		},
		{
			name: "NaN scale factor",
			args: []string{img, "-engine", "pigo", "-cascade", cascade, "-scale-factor", "NaN", "-quiet"},
			msg:  "scale_factor must be between 1.05 and 2.0",
		},
		{
			name: "NaN overlap",
			args: []string{img, "-engine", "pigo", "-cascade", cascade, "-overlap", "NaN", "-quiet"},
			msg:  "overlap must be between 0 and 1",
		},
		{
			name: "unknown engine",
			args: []string{img, "-engine", "dlib", "-quiet"},
			msg:  "unknown engine: dlib",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer

			assert.Equal(t, 1, run(tc.args, &stdout, &stderr))

			res := decode(t, &stdout)
			assert.False(t, res.Success)
			assert.Contains(t, res.Message, tc.msg)
			assert.Equal(t, 0, res.Data.FaceCount)
			assert.Equal(t, []facedetect.Rect{}, res.Data.Faces)
		})
	}
}

func TestRun_PositionalPathWinsOverImageFlag(t *testing.T) {
	var stdout, stderr bytes.Buffer
	img := grayImage(t, "gray.png")
	missing := filepath.Join(t.TempDir(), "none.jpg")

	code := run([]string{"-image", missing, img, "-engine", "pigo", "-cascade", stumpCascade(t), "-quiet"}, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.True(t, decode(t, &stdout).Success)

	stdout.Reset()
	code = run([]string{"-i", img, "-engine", "pigo", "-cascade", stumpCascade(t), "-quiet"}, &stdout, &stderr)
	assert.Equal(t, 0, code)
}

func TestParseArgs_InterleavedFlags(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		pretty bool
		size   int
		pos    []string
	}{
		{"path first", []string{"img.jpg", "-pretty"}, true, 30, []string{"img.jpg"}},
		{"flags first", []string{"-min-size", "50", "img.jpg"}, false, 50, []string{"img.jpg"}},
		{"mixed", []string{"-pretty", "img.jpg", "-min-size", "40"}, true, 40, []string{"img.jpg"}},
		{"no path", []string{"-pretty"}, true, 30, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			fs, opts := newFlagSet(io.Discard)

			pos, err := parseArgs(fs, tc.args)
			require.NoError(t, err)
			assert.Equal(t, tc.pos, pos)
			assert.Equal(t, tc.pretty, opts.pretty)
			assert.Equal(t, tc.size, opts.minSize)
		})
	}
}

func TestParseArgs_Error(t *testing.T) {
	fs, _ := newFlagSet(io.Discard)
	_, err := parseArgs(fs, []string{"img.jpg", "-min-size", "big"})
	assert.Error(t, err)

	fs, _ = newFlagSet(io.Discard)
	_, err = parseArgs(fs, []string{"-h"})
	assert.True(t, errors.Is(err, flag.ErrHelp))
}

func TestLoadEngine_UnknownEngine(t *testing.T) {
	_, err := loadEngine("dlib", "", log.New(io.Discard, "", 0))
	require.Error(t, err)
	assert.True(t, errors.Is(err, facedetect.ErrInvalidParams))
}

func TestLoadEngine_MissingPigoCascade(t *testing.T) {
	e, err := loadEngine("pigo", filepath.Join(t.TempDir(), "facefinder"), log.New(io.Discard, "", 0))
	require.Error(t, err)
	assert.Nil(t, e)
	assert.True(t, errors.Is(err, facedetect.ErrMissingFile))
}

func TestLoadEngine_MissingHaarCascade(t *testing.T) {
	e, err := loadEngine("haar", filepath.Join(t.TempDir(), "cascade.xml"), log.New(io.Discard, "", 0))
	require.Error(t, err)
	assert.Nil(t, e)
	assert.True(t, errors.Is(err, facedetect.ErrMissingFile))
}
