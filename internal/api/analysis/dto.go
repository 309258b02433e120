package analysis

// NoPoseMessage is the fixed message reported when the model finds no body
// landmarks in an otherwise valid image.
const NoPoseMessage = "No pose detected"

type AnalyzeImageRequest struct {
	ImageBase64 string `json:"image_base64" validate:"required"`
}

type Keypoint struct {
	ID         int     `json:"id"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Z          float64 `json:"z"`
	Visibility float64 `json:"visibility"`
}

type AnalyzeImageResponse struct {
	Success   bool       `json:"success"`
	Keypoints []Keypoint `json:"keypoints,omitempty"`
	Message   string     `json:"message,omitempty"`
}
