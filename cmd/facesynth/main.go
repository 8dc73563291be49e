package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/facedetectapi/facedetect/synth"
	"github.com/facedetectapi/facedetect/utils"
)

const HelpBanner = `
Synthetic test images for facedetect.
    Version: %s

`

// Version indicates the current build version.
var Version = "dev"

func main() {
	log.SetFlags(0)
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run generates the requested test images and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("facesynth", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		outDir = fs.String("out", "samples", "Destination directory")
		only   = fs.String("only", "", "Comma separated list of samples to generate")
		seed   = fs.Int64("seed", 1, "Seed of the noise added to the challenge image")
		list   = fs.Bool("list", false, "List the available samples")
	)
	fs.Usage = func() {
		fmt.Fprintf(stderr, HelpBanner, Version)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if *list {
		for _, s := range synth.Samples() {
			fmt.Fprintf(stdout, "%-10s %-20s %d face(s), %s\n", s.Name, s.File, s.Faces, s.Description)
		}
		return 0
	}

	now := time.Now()
	paths, err := synth.WriteAll(*outDir, *seed, splitNames(*only)...)
	for _, p := range paths {
		fmt.Fprintf(stderr, "Created %s\n", utils.DecorateText(p, utils.SuccessMessage))
	}
	if err != nil {
		fmt.Fprintln(stderr, utils.DecorateText("Unable to generate the test images: "+err.Error(), utils.ErrorMessage))
		return 1
	}

	fmt.Fprintf(stderr, "\n%s %d test image(s) in %s\n",
		utils.DecorateText("Generated", utils.StatusMessage),
		len(paths),
		utils.DecorateText(utils.FormatTime(time.Since(now)), utils.SuccessMessage),
	)
	return 0
}

// splitNames parses the -only flag value.
func splitNames(s string) []string {
	var names []string
	for _, n := range strings.Split(s, ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names
}
