// Package detect - Gesture detection over a pretrained ONNX model.
package detect

import "image"

// Detection is a single detected hand gesture. Spatial fields are center-size
// coordinates normalized to [0,1] relative to the original image dimensions.
// A Detection is immutable once produced.
type Detection struct {
	ClassID int
	Score   float32
	XCenter float32
	YCenter float32
	Width   float32
	Height  float32
}

// Result is the outcome of running the model on exactly one image. The
// detector contract is one image in, one result batch out; there is never a
// second batch to index into.
type Result struct {
	Detections []Detection
	// Original image dimensions, for reference.
	Width  int
	Height int
}

// Detector runs gesture detection on a single image.
type Detector interface {
	// Detect analyzes one image and returns one batch of detections.
	// Returns an empty result if nothing is found.
	Detect(img image.Image) (*Result, error)

	// Close releases any resources held by the detector.
	Close() error
}
