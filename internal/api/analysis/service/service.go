package analysisService

import (
	"PoseAnalysis/internal/api/analysis"
	"PoseAnalysis/pkg/pose"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

type IAnalysisService interface {
	AnalyzeImage(ctx context.Context, imageData []byte) (*analysis.AnalyzeImageResponse, error)
}

type analysisService struct {
	log        *logrus.Logger
	poseEngine pose.IPoseEngine
}

func NewAnalysisService(
	log *logrus.Logger,
	poseEngine pose.IPoseEngine,
) IAnalysisService {
	return &analysisService{
		log:        log,
		poseEngine: poseEngine,
	}
}
