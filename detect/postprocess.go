package detect

import (
	"sort"

	"github.com/rpsvision/minusone/images"
)

// candidate is a decoded detection in model-input pixel space, before NMS
// and normalization.
type candidate struct {
	box     images.Rect
	score   float32
	classID int
}

// decodeOutput decodes a raw YOLOv8 output tensor. The layout is
// attribute-major: [1, 4+numClasses, numAnchors], i.e. all cx values first,
// then all cy, w, h, then one row of scores per class. Rows scoring below
// the confidence threshold are dropped.
//
// Arguments:
//   - output: The flat output tensor data.
//   - cfg: Detector configuration (class count, thresholds).
//
// Returns:
//   - Decoded candidates in model-input pixel coordinates.
func decodeOutput(output []float32, cfg Config) []candidate {
	anchors := cfg.numAnchors()
	rows := 4 + cfg.NumClasses
	if len(output) < rows*anchors {
		return nil
	}

	results := make([]candidate, 0, 16)
	for j := 0; j < anchors; j++ {
		classID := 0
		score := float32(0)
		for c := 0; c < cfg.NumClasses; c++ {
			s := output[(4+c)*anchors+j]
			if s > score {
				score = s
				classID = c
			}
		}
		if score < cfg.ConfidenceThreshold {
			continue
		}

		cx := output[0*anchors+j]
		cy := output[1*anchors+j]
		w := output[2*anchors+j]
		h := output[3*anchors+j]

		results = append(results, candidate{
			box: images.Rect{
				X1: cx - w/2,
				Y1: cy - h/2,
				X2: cx + w/2,
				Y2: cy + h/2,
			},
			score:   score,
			classID: classID,
		})
	}
	return results
}

// applyNMS filters overlapping candidates with greedy class-aware
// Non-Maximum Suppression, keeping the higher-scoring box of any
// same-class pair whose IoU exceeds the threshold.
func applyNMS(dets []candidate, iouThreshold float32) []candidate {
	n := len(dets)
	if n == 0 {
		return nil
	}

	sort.Slice(dets, func(i, j int) bool {
		return dets[i].score > dets[j].score
	})

	filtered := make([]candidate, 0, n)
	used := make([]bool, n)

	for i := 0; i < n; i++ {
		if used[i] {
			continue
		}
		anchor := dets[i]
		filtered = append(filtered, anchor)
		used[i] = true

		for j := i + 1; j < n; j++ {
			if used[j] || dets[j].classID != anchor.classID {
				continue
			}
			if anchor.box.IoU(dets[j].box) > iouThreshold {
				used[j] = true
			}
		}
	}
	return filtered
}

// toDetections converts candidates from model-input pixel space to the
// normalized center-size form of the public Detection type.
func toDetections(dets []candidate, cfg Config) []Detection {
	scale := float32(cfg.InputSize)
	out := make([]Detection, 0, len(dets))
	for _, d := range dets {
		cx := (d.box.X1 + d.box.X2) / 2 / scale
		cy := (d.box.Y1 + d.box.Y2) / 2 / scale
		w := (d.box.X2 - d.box.X1) / scale
		h := (d.box.Y2 - d.box.Y1) / scale
		out = append(out, Detection{
			ClassID: d.classID,
			Score:   d.score,
			XCenter: images.Clamp01(cx),
			YCenter: images.Clamp01(cy),
			Width:   images.Clamp01(w),
			Height:  images.Clamp01(h),
		})
	}
	return out
}

// postprocess runs the full decode -> NMS -> normalize chain on a raw
// output tensor.
func postprocess(output []float32, cfg Config) []Detection {
	return toDetections(applyNMS(decodeOutput(output, cfg), cfg.IoUThreshold), cfg)
}
