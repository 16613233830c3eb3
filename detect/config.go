package detect

// Config for the gesture detector. The value is immutable after
// construction; both backends read it, neither writes it.
type Config struct {
	// ModelPath is the ONNX model file to load.
	ModelPath string
	// InputSize is the square model input edge in pixels.
	InputSize int
	// NumClasses is the number of output classes the model predicts.
	NumClasses int
	// ConfidenceThreshold drops detections scoring below it.
	ConfidenceThreshold float32
	// IoUThreshold is the overlap threshold for Non-Maximum Suppression.
	IoUThreshold float32
}

// DefaultConfig returns the configuration for the bundled YOLOv8 gesture
// model (3 classes, 640x640 input).
func DefaultConfig() Config {
	return Config{
		ModelPath:           "gestures.onnx",
		InputSize:           640,
		NumClasses:          3,
		ConfidenceThreshold: 0.25,
		IoUThreshold:        0.45,
	}
}

// numAnchors returns the anchor count of a YOLOv8 export for the configured
// input size: one cell per stride-8, stride-16 and stride-32 grid position.
func (c Config) numAnchors() int {
	n := 0
	for _, stride := range []int{8, 16, 32} {
		side := c.InputSize / stride
		n += side * side
	}
	return n
}
