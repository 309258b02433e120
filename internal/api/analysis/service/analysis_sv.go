package analysisService

import (
	"PoseAnalysis/internal/api/analysis"
	contextPkg "PoseAnalysis/pkg/context"
	"PoseAnalysis/pkg/imagex"
	"PoseAnalysis/pkg/log"
	"golang.org/x/net/context"
)

// The engine resizes its own input, so the clamp only bounds decode cost for
// oversized uploads.
const maxImageDimension = 2048

func (s *analysisService) AnalyzeImage(ctx context.Context, imageData []byte) (*analysis.AnalyzeImageResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	normalized := imagex.Normalize(imageData, maxImageDimension)

	estimation, err := s.poseEngine.DetectLandmarks(ctx, normalized)
	if err != nil {
		s.log.WithFields(log.Fields{
			"request_id": requestID,
			"error":      err.Error(),
			"image_size": len(imageData),
		}).Error("Pose inference failed")
		return nil, err
	}

	if !estimation.Detected {
		s.log.WithFields(log.Fields{
			"request_id": requestID,
			"image_size": len(imageData),
		}).Info("No pose detected in image")
		return &analysis.AnalyzeImageResponse{
			Success: false,
			Message: analysis.NoPoseMessage,
		}, nil
	}

	keypoints := make([]analysis.Keypoint, 0, len(estimation.Landmarks))
	for _, landmark := range estimation.Landmarks {
		keypoints = append(keypoints, analysis.Keypoint{
			ID:         landmark.ID,
			X:          landmark.X,
			Y:          landmark.Y,
			Z:          landmark.Z,
			Visibility: landmark.Visibility,
		})
	}

	s.log.WithFields(log.Fields{
		"request_id": requestID,
		"keypoints":  len(keypoints),
	}).Debug("Pose landmarks detected")

	return &analysis.AnalyzeImageResponse{
		Success:   true,
		Keypoints: keypoints,
	}, nil
}
