package entity

// Landmark is one tracked body point from the pose model. X and Y are
// normalized to [0,1] relative to the image, Z is a relative depth value and
// Visibility is the model's [0,1] confidence that the point is unoccluded.
type Landmark struct {
	ID         int     `json:"id"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Z          float64 `json:"z"`
	Visibility float64 `json:"visibility"`
}

// PoseEstimation is the outcome of a single inference pass. Landmarks is
// populated in the model's fixed schema order only when Detected is true.
type PoseEstimation struct {
	Detected  bool
	Landmarks []Landmark
}
