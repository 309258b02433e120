package pose

import (
	"math"
	"testing"
)

// buildTensor fills a raw tensor with x/y in input pixels, a relative z,
// a visibility logit and a presence value per landmark.
func buildTensor() []float32 {
	raw := make([]float32, LandmarkCount*valuesPerLandmark)
	for i := 0; i < LandmarkCount; i++ {
		base := i * valuesPerLandmark
		raw[base] = float32(i)
		raw[base+1] = float32(i) * 2
		raw[base+2] = float32(i) - 16
		raw[base+3] = float32(i%7) - 3
		raw[base+4] = 1
	}
	return raw
}

func TestLandmarksFromTensorSchema(t *testing.T) {
	landmarks := landmarksFromTensor(buildTensor())

	if len(landmarks) != LandmarkCount {
		t.Fatalf("expected %d landmarks, got %d", LandmarkCount, len(landmarks))
	}

	seen := make(map[int]bool)
	for i, lm := range landmarks {
		if lm.ID != i {
			t.Errorf("landmark %d has id %d, ids must be positional", i, lm.ID)
		}
		if seen[lm.ID] {
			t.Errorf("duplicate landmark id %d", lm.ID)
		}
		seen[lm.ID] = true
	}
}

func TestLandmarksFromTensorValues(t *testing.T) {
	landmarks := landmarksFromTensor(buildTensor())

	for _, lm := range landmarks {
		wantX := float64(lm.ID) / inputSize
		if math.Abs(lm.X-wantX) > 1e-9 {
			t.Errorf("landmark %d: x = %v, want %v", lm.ID, lm.X, wantX)
		}

		wantY := float64(lm.ID) * 2 / inputSize
		if math.Abs(lm.Y-wantY) > 1e-9 {
			t.Errorf("landmark %d: y = %v, want %v", lm.ID, lm.Y, wantY)
		}

		if lm.Visibility < 0 || lm.Visibility > 1 {
			t.Errorf("landmark %d: visibility %v outside [0,1]", lm.ID, lm.Visibility)
		}

		if math.IsNaN(lm.Z) || math.IsInf(lm.Z, 0) {
			t.Errorf("landmark %d: z is not finite: %v", lm.ID, lm.Z)
		}
	}
}

func TestLandmarksFromTensorDeterministic(t *testing.T) {
	first := landmarksFromTensor(buildTensor())
	second := landmarksFromTensor(buildTensor())

	if len(first) != len(second) {
		t.Fatalf("landmark count differs between identical calls")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("landmark %d differs between identical calls", i)
		}
	}
}

func TestSigmoid(t *testing.T) {
	if got := sigmoid(0); math.Abs(got-0.5) > 1e-9 {
		t.Errorf("sigmoid(0) = %v, want 0.5", got)
	}
	if got := sigmoid(50); got <= 0.99 || got > 1 {
		t.Errorf("sigmoid(50) = %v, want close to 1", got)
	}
	if got := sigmoid(-50); got < 0 || got >= 0.01 {
		t.Errorf("sigmoid(-50) = %v, want close to 0", got)
	}
}
