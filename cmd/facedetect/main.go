package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/facedetectapi/facedetect"
	"github.com/facedetectapi/facedetect/haar"
	"github.com/facedetectapi/facedetect/utils"
)

const HelpBanner = `
┌─┐┌─┐┌─┐┌─┐┌┬┐┌─┐┌┬┐┌─┐┌─┐┌┬┐
├┤ ├─┤│  ├┤  ││├┤  │ ├┤ │   │
└  ┴ ┴└─┘└─┘─┴┘└─┘ ┴ └─┘└─┘ ┴

Face detection for static images.
    Version: %s

Usage: facedetect <image_path> [options]

`

// pigoCascade is the pigo cascade looked up when -engine pigo is used without -cascade.
const pigoCascade = "cascade/facefinder"

// Version indicates the current build version.
var Version = "dev"

// options holds the command line flags.
type options struct {
	image        string
	minSize      int
	scaleFactor  float64
	minNeighbors int
	cascade      string
	pretty       bool
	quiet        bool
	engine       string
	single       bool
	overlap      float64
	annotate     string
	env          bool
	version      bool
}

func newFlagSet(stderr io.Writer) (*flag.FlagSet, *options) {
	opts := &options{}
	fs := flag.NewFlagSet("facedetect", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.image, "image", "", "Image path or URL")
	fs.StringVar(&opts.image, "i", "", "Image path or URL (shorthand)")
	fs.IntVar(&opts.minSize, "min-size", facedetect.DefaultMinSize, "Minimum face size in pixels")
	fs.Float64Var(&opts.scaleFactor, "scale-factor", facedetect.DefaultScaleFactor, "Scale factor between detection passes")
	fs.IntVar(&opts.minNeighbors, "min-neighbors", facedetect.DefaultMinNeighbors, "Minimum neighbors for a detection to be kept")
	fs.StringVar(&opts.cascade, "cascade", "", "Cascade classifier file")
	fs.BoolVar(&opts.pretty, "pretty", false, "Pretty print the JSON output")
	fs.BoolVar(&opts.quiet, "quiet", false, "Suppress the debug and status output")
	fs.StringVar(&opts.engine, "engine", "haar", "Detection engine: haar or pigo")
	fs.BoolVar(&opts.single, "single", false, "Run a single detection pass")
	fs.Float64Var(&opts.overlap, "overlap", facedetect.DefaultOverlapThreshold, "Overlap ratio above which a detection is dropped")
	fs.StringVar(&opts.annotate, "annotate", "", "Save a copy of the image with the faces marked")
	fs.BoolVar(&opts.env, "env", false, "Print the detection environment and exit")
	fs.BoolVar(&opts.version, "version", false, "Print the version and exit")

	fs.Usage = func() {
		fmt.Fprintf(stderr, HelpBanner, Version)
		fs.PrintDefaults()
	}
	return fs, opts
}

func main() {
	log.SetFlags(0)
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs, opts := newFlagSet(stderr)
	positional, err := parseArgs(fs, args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	if opts.version {
		fmt.Fprintf(stdout, "facedetect %s\n", Version)
		return 0
	}

	logger := log.New(stderr, "", 0)
	if opts.quiet {
		logger.SetOutput(io.Discard)
	}

	if opts.env {
		return printEnv(stdout, opts, logger)
	}

	// A positional path takes precedence over -image.
	src := opts.image
	if len(positional) > 0 {
		src = positional[0]
	}
	if src == "" {
		if !opts.quiet {
			fs.Usage()
			fmt.Fprintln(stderr, utils.DecorateText("\nPlease provide the path of the image to analyze!", utils.ErrorMessage))
		}
		return 1
	}

	if cwd, err := os.Getwd(); err == nil {
		logger.Print(utils.Debugf("Current working directory: %s", cwd))
	}

	if err := facedetect.ValidateOverlap(opts.overlap); err != nil {
		return fail(stdout, stderr, opts, err)
	}

	engine, err := loadEngine(opts.engine, opts.cascade, logger)
	if err != nil {
		return fail(stdout, stderr, opts, err)
	}
	defer engine.Close()

	proc := facedetect.NewProcessor(engine)
	proc.Params = facedetect.Params{
		MinSize:      opts.minSize,
		ScaleFactor:  opts.scaleFactor,
		MinNeighbors: opts.minNeighbors,
	}
	proc.MultiPass = !opts.single
	proc.OverlapThreshold = opts.overlap
	proc.Logger = logger

	res, err := proc.Execute(&facedetect.Ops{
		Src:      src,
		Annotate: opts.annotate,
		Pretty:   opts.pretty,
		Quiet:    opts.quiet,
		Out:      stdout,
	})
	if err != nil {
		fmt.Fprintln(stderr, utils.DecorateText("could not write the response: "+err.Error(), utils.ErrorMessage))
		return 1
	}
	if !res.Success {
		return 1
	}
	return 0
}

// parseArgs parses the flags found anywhere on the command line and
// returns the positional arguments in order.
func parseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		args = fs.Args()
		if len(args) == 0 {
			return positional, nil
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
}

// loadEngine returns the detection engine selected by name.
func loadEngine(name, cascade string, logger *log.Logger) (facedetect.Engine, error) {
	switch name {
	case "haar":
		e, err := haar.Load(logger, haar.Candidates(cascade)...)
		if err != nil {
			return nil, err
		}
		return e, nil
	case "pigo":
		if cascade == "" {
			cascade = pigoCascade
		}
		logger.Print(utils.Debugf("Loading pigo cascade: %s", cascade))
		e, err := facedetect.NewPigoEngine(cascade)
		if err != nil {
			return nil, err
		}
		return e, nil
	default:
		return nil, facedetect.NewError(facedetect.ErrInvalidParams, "unknown engine: %s", name)
	}
}

// fail prints the error as a JSON response and returns the exit code.
func fail(stdout, stderr io.Writer, opts *options, err error) int {
	res := facedetect.ErrorResponse(err)
	if err := res.Encode(stdout, opts.pretty); err != nil {
		fmt.Fprintln(stderr, utils.DecorateText("could not write the response: "+err.Error(), utils.ErrorMessage))
	}
	return 1
}

// printEnv reports the detection environment. The exit code is 0 when a cascade loads.
func printEnv(w io.Writer, opts *options, logger *log.Logger) int {
	gocvVersion, opencvVersion := haar.Versions()
	fmt.Fprintf(w, "facedetect: %s\n", Version)
	fmt.Fprintf(w, "gocv:       %s\n", gocvVersion)
	fmt.Fprintf(w, "OpenCV:     %s\n", opencvVersion)
	if dir := os.Getenv(haar.EnvCascadeDir); dir != "" {
		fmt.Fprintf(w, "%s: %s\n", haar.EnvCascadeDir, dir)
	}

	engine, err := loadEngine(opts.engine, opts.cascade, logger)
	if err != nil {
		fmt.Fprintf(w, "cascade:    %s\n", utils.DecorateText(err.Error(), utils.ErrorMessage))
		return 1
	}
	defer engine.Close()

	fmt.Fprintf(w, "engine:     %s\n", engine.Name())
	fmt.Fprintf(w, "cascade:    %s\n", utils.DecorateText(engine.Cascade(), utils.SuccessMessage))
	return 0
}
