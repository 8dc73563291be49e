package facedetect

import (
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/facedetectapi/facedetect/utils"
	"golang.org/x/term"
)

// Ops holds the command line options which are not detection parameters.
type Ops struct {
	Src      string
	Annotate string
	Pretty   bool
	Quiet    bool
	// Out receives the JSON document. It defaults to os.Stdout.
	Out io.Writer
}

// Execute detects the faces in op.Src and writes the JSON response to op.Out.
// The source may be a local file or an http(s) URL, in which case it is downloaded
// into a temporary file first. The returned response is the one written out.
func (p *Processor) Execute(op *Ops) (*Response, error) {
	out := op.Out
	if out == nil {
		out = os.Stdout
	}

	src := op.Src
	if utils.IsValidUrl(src) {
		f, err := utils.DownloadImage(src)
		if f != nil {
			defer os.Remove(f.Name())
			f.Close()
		}
		if err != nil {
			res := ErrorResponse(NewError(ErrMissingFile, "Image not found: %s (%v)", src, err))
			return res, res.Encode(out, op.Pretty)
		}
		src = f.Name()
	}

	if !op.Quiet {
		fmt.Fprintf(os.Stderr, "%s %s\n",
			utils.DecorateText("🔍 FACEDETECT", utils.StatusMessage),
			utils.DecorateText(fmt.Sprintf("⇢ processing image: %s", op.Src), utils.DefaultMessage),
		)
	}

	res := p.run(src, op.Quiet)

	if res.Success && op.Annotate != "" {
		if err := annotate(src, res.Data.Faces, op.Annotate); err != nil {
			if !op.Quiet {
				log.Printf(utils.DecorateText("could not annotate the image: %v", utils.ErrorMessage), err)
			}
		} else if !op.Quiet {
			fmt.Fprintf(os.Stderr, "The annotated image has been saved as: %s\n",
				utils.DecorateText(op.Annotate, utils.SuccessMessage),
			)
		}
	}

	return res, res.Encode(out, op.Pretty)
}

// run calls Detect, showing a progress indicator when stderr is a terminal.
func (p *Processor) run(src string, quiet bool) *Response {
	if quiet || !term.IsTerminal(int(os.Stderr.Fd())) {
		return p.Detect(src)
	}

	spinner := utils.NewSpinner(
		utils.DecorateText("⇢ detecting faces...", utils.DefaultMessage),
		time.Millisecond*80, true,
	)

	// Capture CTRL-C signal and restores back the cursor visibility.
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)
	defer func() {
		signal.Stop(signalChan)
		close(signalChan)
	}()
	go func() {
		if _, ok := <-signalChan; ok {
			spinner.RestoreCursor()
			os.Exit(1)
		}
	}()

	spinner.Start()
	res := p.Detect(src)

	if res.Success {
		spinner.StopMsg = utils.DecorateText(
			fmt.Sprintf("⇢ %d face(s) detected ✔\n", res.Data.FaceCount), utils.SuccessMessage)
	} else {
		spinner.StopMsg = utils.DecorateText("⇢ face detection failed ✘\n", utils.ErrorMessage)
	}
	spinner.Stop()

	return res
}

func annotate(src string, faces []Rect, dst string) error {
	img, err := LoadImage(src)
	if err != nil {
		return err
	}
	return Annotate(img, faces, dst)
}
