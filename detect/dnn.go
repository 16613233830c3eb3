package detect

import (
	"image"
	"os"

	"github.com/pkg/errors"
	"gocv.io/x/gocv"
)

// DNNDetector is the fallback backend: the same model run through the
// OpenCV DNN module. Used on hosts where the ONNX Runtime shared library
// is not installed.
type DNNDetector struct {
	cfg Config
	net gocv.Net
}

// NewDNNDetector loads the model with gocv.ReadNet.
func NewDNNDetector(cfg Config) (*DNNDetector, error) {
	if _, err := os.Stat(cfg.ModelPath); err != nil {
		return nil, errors.Wrapf(err, "model file %s", cfg.ModelPath)
	}

	net := gocv.ReadNet(cfg.ModelPath, "")
	if net.Empty() {
		return nil, errors.Errorf("load model %s: incompatible with OpenCV DNN", cfg.ModelPath)
	}
	net.SetPreferableBackend(gocv.NetBackendOpenCV)
	net.SetPreferableTarget(gocv.NetTargetCPU)

	return &DNNDetector{cfg: cfg, net: net}, nil
}

// Detect runs one inference pass over img.
func (d *DNNDetector) Detect(img image.Image) (*Result, error) {
	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return nil, errors.Wrap(err, "convert image")
	}
	defer mat.Close()

	size := image.Pt(d.cfg.InputSize, d.cfg.InputSize)
	blob := gocv.BlobFromImage(mat, 1.0/255.0, size, gocv.NewScalar(0, 0, 0, 0), true, false)
	defer blob.Close()

	d.net.SetInput(blob, "")
	out := d.net.Forward("")
	defer out.Close()

	data, err := out.DataPtrFloat32()
	if err != nil {
		return nil, errors.Wrap(err, "read output tensor")
	}
	// The Mat data is only valid until out is closed; postprocess copies
	// what it keeps.
	bounds := img.Bounds()
	return &Result{
		Detections: postprocess(data, d.cfg),
		Width:      bounds.Dx(),
		Height:     bounds.Dy(),
	}, nil
}

// Close releases the network.
func (d *DNNDetector) Close() error {
	return d.net.Close()
}
