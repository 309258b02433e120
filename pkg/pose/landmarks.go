package pose

import (
	"math"

	"PoseAnalysis/internal/entity"
)

// landmarksFromTensor maps the raw landmark tensor into schema-ordered
// records. Ids are positional, 0..32. The model reports x, y and z in
// input-pixel units, so x and y normalize against the input size; z stays a
// relative depth value on the same scale. Visibility is a logit and goes
// through a sigmoid to land in [0,1]. Beyond the model's own output
// convention, nothing is renormalized.
func landmarksFromTensor(raw []float32) []entity.Landmark {
	landmarks := make([]entity.Landmark, 0, LandmarkCount)

	for i := 0; i < LandmarkCount; i++ {
		base := i * valuesPerLandmark
		landmarks = append(landmarks, entity.Landmark{
			ID:         i,
			X:          float64(raw[base]) / inputSize,
			Y:          float64(raw[base+1]) / inputSize,
			Z:          float64(raw[base+2]) / inputSize,
			Visibility: sigmoid(float64(raw[base+3])),
		})
	}

	return landmarks
}

func sigmoid(x float64) float64 {
	return 1.0 / (1.0 + math.Exp(-x))
}
