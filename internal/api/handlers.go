package api

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"grc-docengine/internal/catalog"
	"grc-docengine/internal/document"
	"grc-docengine/internal/generate"
	"grc-docengine/internal/upload"
)

// maxUploadBytes bounds a single uploaded file read into memory.
const maxUploadBytes = 20 << 20

type analyzeRequest struct {
	ModuleType      string                 `json:"moduleType" binding:"required"`
	ModuleName      string                 `json:"moduleName"`
	AnalysisContext string                 `json:"analysisContext"`
	ModuleData      map[string]interface{} `json:"moduleData"`
}

func (s *Server) listModules(c *gin.Context) {
	modules := make([]gin.H, 0, len(catalog.Registered()))
	for _, m := range catalog.Registered() {
		modules = append(modules, gin.H{
			"type":        m,
			"title":       catalog.Template(m).Title,
			"regulations": catalog.Regulations(m),
		})
	}
	c.JSON(http.StatusOK, gin.H{"data": modules})
}

func (s *Server) moduleInterview(c *gin.Context) {
	m := catalog.ModuleType(c.Param("type"))
	c.JSON(http.StatusOK, gin.H{"data": catalog.Interview(m)})
}

func (s *Server) moduleRequirements(c *gin.Context) {
	m := catalog.ModuleType(c.Param("type"))
	c.JSON(http.StatusOK, gin.H{"data": catalog.Requirements(m)})
}

func (s *Server) moduleTemplate(c *gin.Context) {
	m := catalog.ModuleType(c.Param("type"))
	c.JSON(http.StatusOK, gin.H{"data": catalog.Template(m)})
}

// uploadDocuments accepts a multipart form with one or more files under the
// "files" field. Rejected files do not abort the batch: each file gets an
// individual accepted or rejected entry in the response.
func (s *Server) uploadDocuments(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "multipart form required"})
		return
	}

	files := form.File["files"]
	if len(files) == 0 {
		files = form.File["file"]
	}
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no files in request"})
		return
	}

	var accepted []upload.Document
	var rejected []gin.H
	for _, header := range files {
		content, err := readMultipartFile(header)
		if err != nil {
			rejected = append(rejected, gin.H{"filename": header.Filename, "error": err.Error()})
			continue
		}

		doc, err := s.workflow.Register(upload.FileUpload{
			Name:     header.Filename,
			Size:     header.Size,
			MIMEType: header.Header.Get("Content-Type"),
			Content:  content,
		})
		if err != nil {
			rejected = append(rejected, gin.H{"filename": header.Filename, "error": err.Error()})
			continue
		}
		accepted = append(accepted, doc)
	}

	status := http.StatusCreated
	if len(accepted) == 0 {
		status = http.StatusBadRequest
	}
	c.JSON(status, gin.H{"data": accepted, "rejected": rejected})
}

func readMultipartFile(header *multipart.FileHeader) (string, error) {
	f, err := header.Open()
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes))
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (s *Server) listDocuments(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"data": s.workflow.List()})
}

func (s *Server) getDocument(c *gin.Context) {
	doc, ok := s.workflow.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": doc})
}

func (s *Server) analyzeDocument(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, err := s.workflow.Analyze(c.Request.Context(), c.Param("id"), upload.AnalyzeOptions{
		ModuleType:      catalog.ModuleType(req.ModuleType),
		ModuleName:      req.ModuleName,
		AnalysisContext: req.AnalysisContext,
		ModuleData:      req.ModuleData,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": doc})
}

func (s *Server) saveDocument(c *gin.Context) {
	doc, err := s.workflow.SaveToModule(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": doc})
}

func (s *Server) selectDocument(c *gin.Context) {
	id := c.Param("id")
	if _, ok := s.workflow.Get(id); !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
		return
	}
	s.workflow.Select(id)
	c.JSON(http.StatusOK, gin.H{"data": gin.H{"selected": id}})
}

func (s *Server) selectedDocument(c *gin.Context) {
	doc, ok := s.workflow.Selected()
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no document selected"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": doc})
}

func (s *Server) deleteDocument(c *gin.Context) {
	if !s.workflow.Remove(c.Param("id")) {
		c.JSON(http.StatusNotFound, gin.H{"error": "document not found"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) generateDocument(c *gin.Context) {
	var req generate.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, source, err := s.generator.Generate(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": doc, "source": source})
}

// exportDocument generates the document and streams it as a Word-compatible
// HTML artifact for download.
func (s *Server) exportDocument(c *gin.Context) {
	var req generate.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	doc, _, err := s.generator.Generate(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	filename := exportFilename(doc)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, document.WordMIMEType, []byte(document.ExportHTML(doc)))
}

func exportFilename(doc *document.Generated) string {
	name := strings.TrimSpace(doc.Title)
	if name == "" {
		name = doc.DocumentNumber
	}
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '-'
		}
		return r
	}, name)
	return name + ".doc"
}
