package haar

import (
	"os"
	"path/filepath"
)

// Cascade file names, in order of preference.
const (
	DefaultCascade = "haarcascade_frontalface_default.xml"
	AltCascade     = "haarcascade_frontalface_alt.xml"
)

// EnvCascadeDir names the environment variable pointing to a directory holding the cascade files.
const EnvCascadeDir = "FACEDETECT_CASCADE_DIR"

// systemDirs are the usual locations of the cascades shipped with OpenCV.
var systemDirs = []string{
	"/usr/share/opencv4/haarcascades",
	"/usr/local/share/opencv4/haarcascades",
	"/opt/homebrew/share/opencv4/haarcascades",
}

// Candidates returns the cascade files to try, in order. An explicit cascade,
// when not empty, is the only candidate.
func Candidates(explicit string) []string {
	if explicit != "" {
		return []string{explicit}
	}

	var paths []string
	if dir := os.Getenv(EnvCascadeDir); dir != "" {
		paths = append(paths,
			filepath.Join(dir, DefaultCascade),
			filepath.Join(dir, AltCascade),
		)
	}
	if exe, err := os.Executable(); err == nil {
		dir := filepath.Dir(exe)
		paths = append(paths,
			filepath.Join(dir, DefaultCascade),
			filepath.Join(dir, AltCascade),
		)
	}
	// Fallback for the current directory.
	paths = append(paths, DefaultCascade)

	for _, dir := range systemDirs {
		paths = append(paths,
			filepath.Join(dir, DefaultCascade),
			filepath.Join(dir, AltCascade),
		)
	}
	return paths
}
