// Package remote talks to the AI document service. Every call is best
// effort: the workflow treats any error from here as a signal to fall back
// to the local engine, never as a user-facing failure.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"grc-docengine/internal/analysis"
	"grc-docengine/internal/catalog"
	"grc-docengine/internal/common/config"
	commonerrors "grc-docengine/internal/common/errors"
	commonhttp "grc-docengine/internal/common/http"
	"grc-docengine/internal/common/logger"
	"grc-docengine/internal/document"
)

const (
	analyzeUploadPath = "/ai-documents/analyze-upload"
	generatePath      = "/ai-documents/generate"
	persistPath       = "/documents"
)

// AnalyzeRequest is the payload of the remote analyze-upload call.
type AnalyzeRequest struct {
	DocumentName    string                 `json:"documentName"`
	DocumentContent string                 `json:"documentContent"`
	ModuleType      catalog.ModuleType     `json:"moduleType"`
	ModuleName      string                 `json:"moduleName"`
	AnalysisContext string                 `json:"analysisContext"`
	ModuleData      map[string]interface{} `json:"moduleData"`
}

// GenerateRequest is the payload of the remote generate call.
type GenerateRequest struct {
	ModuleType    catalog.ModuleType     `json:"moduleType"`
	ModuleName    string                 `json:"moduleName"`
	ModuleData    map[string]interface{} `json:"moduleData"`
	InterviewData map[string]string      `json:"interviewData"`
	Format        string                 `json:"format"`
}

// PersistRequest is the payload of the persist-to-module call.
type PersistRequest struct {
	Title        string                 `json:"title"`
	Description  string                 `json:"description"`
	Content      string                 `json:"content"`
	DocumentType string                 `json:"documentType"`
	TemplateType string                 `json:"templateType"`
	Status       string                 `json:"status"`
	Metadata     map[string]interface{} `json:"metadata"`
}

// Client calls the remote AI document endpoints with a per-call timeout and a
// bounded retry with exponential backoff.
type Client struct {
	baseURL    string
	apiKey     string
	timeout    time.Duration
	maxRetries int
	httpClient *commonhttp.Client
	logger     logger.Logger
}

func NewClient(cfg config.RemoteConfig, log logger.Logger) *Client {
	timeout := config.GetDuration(cfg.Timeout)
	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		timeout:    timeout,
		maxRetries: cfg.MaxRetries,
		httpClient: commonhttp.NewClient(timeout),
		logger:     log.With(map[string]interface{}{"component": "remote-client"}),
	}
}

// AnalyzeUpload asks the remote service to analyze uploaded content. The
// response payload is schema-validated before it is trusted; malformed
// payloads are reported as errors so the caller falls back locally.
func (c *Client) AnalyzeUpload(ctx context.Context, req *AnalyzeRequest) (*analysis.Result, error) {
	body, err := c.post(ctx, analyzeUploadPath, req)
	if err != nil {
		return nil, err
	}

	if err := validateAnalysisPayload(body); err != nil {
		return nil, err
	}

	var envelope struct {
		Data analysis.Result `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, commonerrors.NewRemoteResponseInvalidError(err.Error())
	}
	return &envelope.Data, nil
}

// Generate asks the remote service to generate a structured document.
func (c *Client) Generate(ctx context.Context, req *GenerateRequest) (*document.Generated, error) {
	if req.Format == "" {
		req.Format = "structured"
	}
	body, err := c.post(ctx, generatePath, req)
	if err != nil {
		return nil, err
	}

	var envelope struct {
		Data document.Generated `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, commonerrors.NewRemoteResponseInvalidError(err.Error())
	}
	if err := envelope.Data.Validate(); err != nil {
		return nil, commonerrors.NewRemoteResponseInvalidError(err.Error())
	}
	return &envelope.Data, nil
}

// Persist stores an analyzed document in the backing module store and returns
// the backend id.
func (c *Client) Persist(ctx context.Context, req *PersistRequest) (string, error) {
	body, err := c.post(ctx, persistPath, req)
	if err != nil {
		return "", err
	}

	var envelope struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", commonerrors.NewRemoteResponseInvalidError(err.Error())
	}
	if envelope.Data.ID == "" {
		return "", commonerrors.NewRemoteResponseInvalidError("persist response missing document id")
	}
	return envelope.Data.ID, nil
}

// post sends the payload with one retry round of exponential backoff and
// returns the response body of the first 2xx answer.
func (c *Client) post(ctx context.Context, path string, payload interface{}) ([]byte, error) {
	if c.baseURL == "" {
		return nil, commonerrors.NewRemoteAnalysisFailedError(fmt.Errorf("remote base URL not configured"))
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, commonerrors.NewRemoteResponseInvalidError(err.Error())
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	headers := map[string]string{}
	if c.apiKey != "" {
		headers["Authorization"] = "Bearer " + c.apiKey
	}

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(100*(1<<(attempt-1))) * time.Millisecond
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, commonerrors.NewRemoteTimeoutError(path)
			}
		}

		resp, err := c.httpClient.PostJSON(ctx, c.baseURL+path, body, headers)
		if err != nil {
			if ctx.Err() != nil {
				return nil, commonerrors.NewRemoteTimeoutError(path)
			}
			lastErr = err
			continue
		}

		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			commonhttp.DrainAndClose(resp)
			lastErr = fmt.Errorf("status %d", resp.StatusCode)
			c.logger.Warn("remote call returned non-2xx", map[string]interface{}{
				"path":    path,
				"status":  resp.StatusCode,
				"attempt": attempt,
			})
			continue
		}

		data, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}
		return data, nil
	}

	if ctx.Err() == context.DeadlineExceeded {
		return nil, commonerrors.NewRemoteTimeoutError(path)
	}
	return nil, commonerrors.NewRemoteAnalysisFailedError(fmt.Errorf("%s: %w", path, lastErr))
}
