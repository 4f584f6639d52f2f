// Package api exposes the document engine over HTTP.
package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	commonerrors "grc-docengine/internal/common/errors"
	"grc-docengine/internal/common/logger"
	"grc-docengine/internal/generate"
	"grc-docengine/internal/upload"
)

// Server wires the workflow and the generation service into a gin router.
type Server struct {
	workflow  *upload.Workflow
	generator *generate.Service
	logger    logger.Logger
}

func NewServer(workflow *upload.Workflow, generator *generate.Service, log logger.Logger) *Server {
	return &Server{
		workflow:  workflow,
		generator: generator,
		logger:    log.With(map[string]interface{}{"component": "api"}),
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery(), s.requestLogger())

	router.GET("/healthz", s.healthz)

	api := router.Group("/api/v1")

	api.GET("/modules", s.listModules)
	api.GET("/modules/:type/interview", s.moduleInterview)
	api.GET("/modules/:type/requirements", s.moduleRequirements)
	api.GET("/modules/:type/template", s.moduleTemplate)

	api.POST("/documents/upload", s.uploadDocuments)
	api.GET("/documents", s.listDocuments)
	api.GET("/documents/selected", s.selectedDocument)
	api.GET("/documents/:id", s.getDocument)
	api.POST("/documents/:id/analyze", s.analyzeDocument)
	api.POST("/documents/:id/save", s.saveDocument)
	api.POST("/documents/:id/select", s.selectDocument)
	api.DELETE("/documents/:id", s.deleteDocument)

	api.POST("/generate", s.generateDocument)
	api.POST("/generate/export", s.exportDocument)

	return router
}

func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		s.logger.Info("http request", map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.FullPath(),
			"status": c.Writer.Status(),
		})
	}
}

func (s *Server) healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// respondError maps the engine's error classes onto HTTP status codes.
// Transport errors never reach this point; the services recover them.
func respondError(c *gin.Context, err error) {
	stdErr, ok := err.(*commonerrors.StandardError)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	status := http.StatusInternalServerError
	switch stdErr.Code {
	case commonerrors.ErrCodeDocumentNotFound:
		status = http.StatusNotFound
	case commonerrors.ErrCodeInvalidStateTransition:
		status = http.StatusConflict
	default:
		if commonerrors.GetErrorCategory(stdErr.Code) == commonerrors.CategoryValidation {
			status = http.StatusBadRequest
		}
	}
	c.JSON(status, gin.H{"error": stdErr})
}
