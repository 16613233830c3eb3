// Package images - Image loading and geometry utilities.
package images

import "github.com/chewxy/math32"

// Rect is a lightweight bounding box in pixel space.
type Rect struct {
	// X2,Y2 are exclusive (like image.Rectangle).
	X1, Y1, X2, Y2 float32
}

// Area returns the area of the rectangle, or 0 for degenerate boxes.
func (r Rect) Area() float32 {
	w := r.X2 - r.X1
	h := r.Y2 - r.Y1
	if w <= 0 || h <= 0 {
		return 0
	}
	return w * h
}

// IoU (Intersection over Union) measures the extent of overlap between two
// bounding boxes as a value in [0,1]: 1.0 means the boxes are identical,
// 0.0 means they do not overlap at all. Used by Non-Maximum Suppression to
// decide which detections describe the same object.
//
// Arguments:
//   - o: The other rectangle.
//
// Returns:
//   - The IoU score between the receiver and o.
func (r Rect) IoU(o Rect) float32 {
	ix1 := math32.Max(r.X1, o.X1)
	iy1 := math32.Max(r.Y1, o.Y1)
	ix2 := math32.Min(r.X2, o.X2)
	iy2 := math32.Min(r.Y2, o.Y2)

	if ix2 <= ix1 || iy2 <= iy1 {
		return 0
	}
	intersection := (ix2 - ix1) * (iy2 - iy1)

	// Inclusion-exclusion: union = A + B - intersection.
	union := r.Area() + o.Area() - intersection
	if union <= 0 {
		return 0
	}
	return intersection / union
}

// Clamp01 clamps v to the normalized coordinate range [0,1].
func Clamp01(v float32) float32 {
	return math32.Min(1, math32.Max(0, v))
}
