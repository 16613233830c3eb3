package detect

import (
	"log"
	"os"
)

// Open builds a Detector for cfg, preferring the ONNX Runtime backend and
// falling back to the OpenCV DNN backend when the runtime shared library is
// not present. A model-load failure on the selected backend is returned to
// the caller; nothing is retried.
func Open(cfg Config) (Detector, error) {
	if _, err := os.Stat(sharedLibPath()); err == nil {
		return NewSession(cfg)
	}
	log.Printf("ONNX Runtime library not found, using OpenCV DNN backend")
	return NewDNNDetector(cfg)
}
