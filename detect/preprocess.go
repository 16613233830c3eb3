package detect

import (
	"image"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
)

// prepareInput resizes img to size x size and writes it into dst as planar
// RGB floats in [0,1], the tensor layout the model expects (1x3xNxN).
//
// Arguments:
//   - img: The image to prepare.
//   - dst: The destination buffer to populate.
//   - size: The model input edge in pixels.
//
// Returns:
//   - error: An error if dst cannot hold the prepared input.
func prepareInput(img image.Image, dst []float32, size int) error {
	channelSize := size * size
	if len(dst) < channelSize*3 {
		return errors.Errorf("input buffer holds %d floats, needs %d",
			len(dst), channelSize*3)
	}
	red := dst[0:channelSize]
	green := dst[channelSize : channelSize*2]
	blue := dst[channelSize*2 : channelSize*3]

	// Plain resize, no letterboxing: normalized output coordinates stay
	// proportional to the original image either way.
	resized := resize.Resize(uint(size), uint(size), img, resize.Lanczos3)

	i := 0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			r, g, b, _ := resized.At(x, y).RGBA()
			red[i] = float32(r>>8) / 255.0
			green[i] = float32(g>>8) / 255.0
			blue[i] = float32(b>>8) / 255.0
			i++
		}
	}
	return nil
}
