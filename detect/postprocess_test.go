package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testConfig uses a small input so synthetic output tensors stay readable:
// 64px input gives 8x8 + 4x4 + 2x2 = 84 anchors.
func testConfig() Config {
	return Config{
		ModelPath:           "gestures.onnx",
		InputSize:           64,
		NumClasses:          3,
		ConfidenceThreshold: 0.25,
		IoUThreshold:        0.45,
	}
}

// testOutput builds a zeroed output tensor in the attribute-major YOLOv8
// layout and returns a setter for filling individual anchors.
func testOutput(cfg Config) ([]float32, func(j int, cx, cy, w, h float32, scores ...float32)) {
	anchors := cfg.numAnchors()
	out := make([]float32, (4+cfg.NumClasses)*anchors)
	set := func(j int, cx, cy, w, h float32, scores ...float32) {
		out[0*anchors+j] = cx
		out[1*anchors+j] = cy
		out[2*anchors+j] = w
		out[3*anchors+j] = h
		for c, s := range scores {
			out[(4+c)*anchors+j] = s
		}
	}
	return out, set
}

func TestNumAnchors(t *testing.T) {
	assert.Equal(t, 84, testConfig().numAnchors())

	cfg := DefaultConfig()
	assert.Equal(t, 8400, cfg.numAnchors(), "640px input is the standard 8400-anchor export")
}

// TestDecodeOutput verifies argmax class selection, confidence filtering
// and the center-size to corner conversion.
func TestDecodeOutput(t *testing.T) {
	cfg := testConfig()
	out, set := testOutput(cfg)

	// A confident scissors detection centered at (32, 48).
	set(0, 32, 48, 16, 8, 0.05, 0.1, 0.9)
	// A sub-threshold row that must be dropped.
	set(1, 10, 10, 4, 4, 0.2, 0.1, 0.05)

	dets := decodeOutput(out, cfg)

	require.Len(t, dets, 1)
	assert.Equal(t, 2, dets[0].classID)
	assert.InDelta(t, 0.9, dets[0].score, 1e-6)
	assert.InDelta(t, 24, dets[0].box.X1, 1e-4)
	assert.InDelta(t, 44, dets[0].box.Y1, 1e-4)
	assert.InDelta(t, 40, dets[0].box.X2, 1e-4)
	assert.InDelta(t, 52, dets[0].box.Y2, 1e-4)
}

func TestDecodeOutputTruncated(t *testing.T) {
	cfg := testConfig()
	assert.Nil(t, decodeOutput(make([]float32, 10), cfg))
	assert.Nil(t, decodeOutput(nil, cfg))
}

// TestApplyNMS verifies that heavily overlapping same-class boxes collapse
// to the higher-scoring one while distinct classes survive.
func TestApplyNMS(t *testing.T) {
	cfg := testConfig()
	out, set := testOutput(cfg)

	// Two near-identical rock boxes and one paper box elsewhere.
	set(0, 32, 32, 16, 16, 0.8)
	set(1, 33, 32, 16, 16, 0.6)
	set(2, 10, 10, 8, 8, 0, 0.7)

	dets := applyNMS(decodeOutput(out, cfg), cfg.IoUThreshold)

	require.Len(t, dets, 2)
	// Sorted by score descending; the weaker duplicate is suppressed.
	assert.Equal(t, 0, dets[0].classID)
	assert.InDelta(t, 0.8, dets[0].score, 1e-6)
	assert.Equal(t, 1, dets[1].classID)
}

// TestPostprocessNormalization verifies the full chain produces normalized
// center-size coordinates relative to the model input, clamped to [0,1].
func TestPostprocessNormalization(t *testing.T) {
	cfg := testConfig()
	out, set := testOutput(cfg)

	set(0, 32, 48, 16, 8, 0.9)
	// A box hanging past the left edge must clamp, not go negative.
	set(1, 2, 16, 12, 8, 0, 0, 0.8)

	dets := postprocess(out, cfg)

	require.Len(t, dets, 2)

	assert.InDelta(t, 0.5, dets[0].XCenter, 1e-4)
	assert.InDelta(t, 0.75, dets[0].YCenter, 1e-4)
	assert.InDelta(t, 0.25, dets[0].Width, 1e-4)
	assert.InDelta(t, 0.125, dets[0].Height, 1e-4)

	for _, d := range dets {
		assert.GreaterOrEqual(t, d.XCenter, float32(0))
		assert.LessOrEqual(t, d.XCenter, float32(1))
		assert.GreaterOrEqual(t, d.Width, float32(0))
		assert.LessOrEqual(t, d.Width, float32(1))
	}
}

func TestPostprocessEmpty(t *testing.T) {
	cfg := testConfig()
	out, _ := testOutput(cfg)
	assert.Empty(t, postprocess(out, cfg))
}
