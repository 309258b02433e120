package analysisHandler

import (
	analysisService "PoseAnalysis/internal/api/analysis/service"
	"PoseAnalysis/internal/middleware"
	"PoseAnalysis/pkg/utils"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type AnalysisHandler struct {
	log             *logrus.Logger
	validator       *validator.Validate
	middleware      middleware.Middleware
	analysisService analysisService.IAnalysisService
	utils           utils.IUtils
}

func New(
	log *logrus.Logger,
	validator *validator.Validate,
	middleware middleware.Middleware,
	as analysisService.IAnalysisService,
	utils utils.IUtils,
) *AnalysisHandler {
	return &AnalysisHandler{
		analysisService: as,
		log:             log,
		validator:       validator,
		middleware:      middleware,
		utils:           utils,
	}
}

func (h *AnalysisHandler) Start(srv fiber.Router) {
	analyze := srv.Group("/analyze")
	analyze.Post("/image", h.middleware.NewRateLimiter, h.AnalyzeImage)
}
