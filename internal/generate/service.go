// Package generate produces compliance documents from interview answers.
// Generation is remote first with a local assembly fallback, so a document
// is always produced once the answers pass validation.
package generate

import (
	"context"

	"grc-docengine/internal/assembly"
	"grc-docengine/internal/catalog"
	commonerrors "grc-docengine/internal/common/errors"
	"grc-docengine/internal/common/logger"
	"grc-docengine/internal/common/metrics"
	"grc-docengine/internal/common/validation"
	"grc-docengine/internal/document"
	"grc-docengine/internal/remote"
)

// RemoteGenerator is the slice of the remote client the service consumes.
type RemoteGenerator interface {
	Generate(ctx context.Context, req *remote.GenerateRequest) (*document.Generated, error)
}

// Request carries the inputs of one generation call.
type Request struct {
	ModuleType catalog.ModuleType     `json:"moduleType"`
	ModuleName string                 `json:"moduleName"`
	Answers    map[string]string      `json:"answers"`
	ModuleData map[string]interface{} `json:"moduleData,omitempty"`
}

// Service validates interview answers and produces the document.
type Service struct {
	engine *assembly.Engine
	remote RemoteGenerator
	logger logger.Logger
}

func NewService(engine *assembly.Engine, remoteGen RemoteGenerator, log logger.Logger) *Service {
	return &Service{
		engine: engine,
		remote: remoteGen,
		logger: log.With(map[string]interface{}{"component": "generate-service"}),
	}
}

// Generate validates the answers, then produces the document remote first
// with local assembly as the fallback. The returned source is "remote" or
// "local". The only error class is validation failure.
func (s *Service) Generate(ctx context.Context, req Request) (*document.Generated, string, error) {
	if result := validation.ValidateAnswers(req.ModuleType, req.Answers); !result.Valid {
		return nil, "", commonerrors.NewInterviewValidationError(result.Describe())
	}

	if s.remote != nil {
		doc, err := s.remote.Generate(ctx, &remote.GenerateRequest{
			ModuleType:    req.ModuleType,
			ModuleName:    req.ModuleName,
			ModuleData:    req.ModuleData,
			InterviewData: req.Answers,
		})
		if err == nil {
			metrics.DocumentsGenerated.WithLabelValues(string(req.ModuleType), "remote").Inc()
			return doc, "remote", nil
		}
		s.logger.Warn("remote generation failed, assembling locally", map[string]interface{}{
			"moduleType": req.ModuleType,
			"error":      err.Error(),
		})
	}

	doc := s.engine.Assemble(req.ModuleType, req.Answers)
	metrics.DocumentsGenerated.WithLabelValues(string(req.ModuleType), "local").Inc()
	return doc, "local", nil
}
