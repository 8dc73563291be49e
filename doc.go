/*
Package facedetect locates human faces in still images and reports them as
a JSON document listing the bounding box of every face found.

The detection itself is delegated to an Engine: the OpenCV Haar cascade engine
from the haar subpackage, or the pure Go PigoEngine. The Processor runs the
engine over one or more passes with slightly different parameters and merges
the results, dropping every rectangle overlapping an already accepted one.

The package provides a command line interface. To check the supported flags type:

	$ facedetect --help

In case you wish to integrate the API in a self constructed environment here is a simple example:

	package main

	import (
		"log"
		"os"

		"github.com/facedetectapi/facedetect"
		"github.com/facedetectapi/facedetect/haar"
	)

	func main() {
		engine, err := haar.Load(nil, haar.Candidates("")...)
		if err != nil {
			log.Fatal(err)
		}
		defer engine.Close()

		p := facedetect.NewProcessor(engine)
		res := p.Detect("family.jpg")
		if err := res.Encode(os.Stdout, true); err != nil {
			log.Fatal(err)
		}
	}
*/
package facedetect
