package pose

import (
	"errors"
	"fmt"
	"image"
	"os"
	"strconv"

	"PoseAnalysis/internal/entity"
	"gocv.io/x/gocv"
	"golang.org/x/net/context"
)

var (
	ErrImageDecode = errors.New("unable to decode image bytes")
	ErrModelLoad   = errors.New("unable to load pose model")
)

const (
	// The landmark model consumes a square RGB input and reports coordinates
	// in input-pixel units.
	inputSize = 256

	// LandmarkCount is the fixed landmark schema size of the model.
	LandmarkCount = 33

	// The raw landmark tensor carries auxiliary rows after the 33 schema
	// landmarks; values per row are x, y, z, visibility, presence.
	valuesPerLandmark = 5

	landmarkLayer = "ld_3d"
	scoreLayer    = "output_poseflag"

	defaultScoreThreshold = 0.5
)

type IPoseEngine interface {
	DetectLandmarks(ctx context.Context, imageData []byte) (*entity.PoseEstimation, error)
}

type poseEngine struct {
	modelPath      string
	scoreThreshold float64
}

func New() (IPoseEngine, error) {
	modelPath := os.Getenv("MODEL_PATH")
	if modelPath == "" {
		return nil, errors.New("MODEL_PATH is not configured")
	}

	if _, err := os.Stat(modelPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("pose model file not found: %s", modelPath)
	}

	threshold := defaultScoreThreshold
	if raw := os.Getenv("POSE_SCORE_THRESHOLD"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed < 0 || parsed > 1 {
			return nil, fmt.Errorf("invalid POSE_SCORE_THRESHOLD: %s", raw)
		}
		threshold = parsed
	}

	return &poseEngine{
		modelPath:      modelPath,
		scoreThreshold: threshold,
	}, nil
}

// DetectLandmarks runs one single-image inference pass. The network and every
// intermediate buffer are scoped to this call and released on every exit path.
func (p *poseEngine) DetectLandmarks(ctx context.Context, imageData []byte) (*entity.PoseEstimation, error) {
	img, err := gocv.IMDecode(imageData, gocv.IMReadColor)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImageDecode, err)
	}
	defer img.Close()

	if img.Empty() {
		return nil, ErrImageDecode
	}

	rgb := gocv.NewMat()
	defer rgb.Close()
	if err := gocv.CvtColor(img, &rgb, gocv.ColorBGRToRGB); err != nil {
		return nil, fmt.Errorf("convert color order: %w", err)
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	net := gocv.ReadNet(p.modelPath, "")
	if net.Empty() {
		return nil, fmt.Errorf("%w: %s", ErrModelLoad, p.modelPath)
	}
	defer net.Close()

	blob := gocv.BlobFromImage(rgb, 1.0/255.0, image.Pt(inputSize, inputSize),
		gocv.NewScalar(0, 0, 0, 0), false, false)
	defer blob.Close()

	net.SetInput(blob, "")

	scoreOut := net.Forward(scoreLayer)
	defer scoreOut.Close()

	score := float64(scoreOut.GetFloatAt(0, 0))
	if score < p.scoreThreshold {
		return &entity.PoseEstimation{Detected: false}, nil
	}

	landmarkOut := net.Forward(landmarkLayer)
	defer landmarkOut.Close()

	raw := make([]float32, LandmarkCount*valuesPerLandmark)
	for i := range raw {
		raw[i] = landmarkOut.GetFloatAt(0, i)
	}

	return &entity.PoseEstimation{
		Detected:  true,
		Landmarks: landmarksFromTensor(raw),
	}, nil
}
