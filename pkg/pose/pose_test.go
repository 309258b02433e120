package pose

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/net/context"
)

func TestNewRequiresModelPath(t *testing.T) {
	t.Setenv("MODEL_PATH", "")

	if _, err := New(); err == nil {
		t.Errorf("expected error when MODEL_PATH is unset")
	}
}

func TestNewRejectsMissingModelFile(t *testing.T) {
	t.Setenv("MODEL_PATH", filepath.Join(t.TempDir(), "missing.onnx"))

	if _, err := New(); err == nil {
		t.Errorf("expected error when model file does not exist")
	}
}

func TestNewScoreThreshold(t *testing.T) {
	modelPath := filepath.Join(t.TempDir(), "pose.onnx")
	if err := os.WriteFile(modelPath, []byte("stub"), 0o644); err != nil {
		t.Fatalf("failed to write stub model file: %v", err)
	}
	t.Setenv("MODEL_PATH", modelPath)

	t.Setenv("POSE_SCORE_THRESHOLD", "0.7")
	engine, err := New()
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}
	if got := engine.(*poseEngine).scoreThreshold; got != 0.7 {
		t.Errorf("scoreThreshold = %v, want 0.7", got)
	}

	for _, invalid := range []string{"abc", "-0.1", "1.5"} {
		t.Setenv("POSE_SCORE_THRESHOLD", invalid)
		if _, err := New(); err == nil {
			t.Errorf("expected error for POSE_SCORE_THRESHOLD=%q", invalid)
		}
	}
}

// TestDetectLandmarksWithModel exercises the real DNN. It needs a landmark
// model on disk, so it only runs when MODEL_PATH points at one.
func TestDetectLandmarksWithModel(t *testing.T) {
	if os.Getenv("MODEL_PATH") == "" {
		t.Skip("MODEL_PATH not set, skipping real-model inference test")
	}

	engine, err := New()
	if err != nil {
		t.Fatalf("New() returned error: %v", err)
	}

	img := image.NewRGBA(image.Rect(0, 0, 256, 256))
	for x := 0; x < 256; x++ {
		for y := 0; y < 256; y++ {
			img.Set(x, y, color.RGBA{R: 200, G: 200, B: 200, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := jpeg.Encode(&buf, img, nil); err != nil {
		t.Fatalf("failed to encode test image: %v", err)
	}

	estimation, err := engine.DetectLandmarks(context.Background(), buf.Bytes())
	if err != nil {
		t.Fatalf("DetectLandmarks returned error: %v", err)
	}

	// A flat gray image carries no person; either outcome must be well
	// formed, and a detection must carry the full schema.
	if estimation.Detected {
		if len(estimation.Landmarks) != LandmarkCount {
			t.Errorf("detected pose with %d landmarks, want %d", len(estimation.Landmarks), LandmarkCount)
		}
	} else if len(estimation.Landmarks) != 0 {
		t.Errorf("no detection should carry no landmarks, got %d", len(estimation.Landmarks))
	}
}
