// Package upload orchestrates the lifecycle of uploaded documents:
// register, analyze (remote first, local fallback), save to module, remove.
// It is the only component in the engine with state and side effects.
package upload

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"grc-docengine/internal/analysis"
	"grc-docengine/internal/archive"
	"grc-docengine/internal/cache"
	"grc-docengine/internal/catalog"
	commonerrors "grc-docengine/internal/common/errors"
	"grc-docengine/internal/common/logger"
	"grc-docengine/internal/common/metrics"
	"grc-docengine/internal/common/observability"
	"grc-docengine/internal/notify"
	"grc-docengine/internal/remote"
)

// maxContentLength caps the content sent to the remote analyzer.
const maxContentLength = 50000

// truncateContent cuts content down to maxContentLength bytes without
// splitting a multi-byte rune at the boundary.
func truncateContent(content string) string {
	if len(content) <= maxContentLength {
		return content
	}
	cut := maxContentLength
	for cut > 0 && !utf8.RuneStart(content[cut]) {
		cut--
	}
	return content[:cut]
}

// RemoteService is the slice of the remote client the workflow consumes.
type RemoteService interface {
	AnalyzeUpload(ctx context.Context, req *remote.AnalyzeRequest) (*analysis.Result, error)
	Persist(ctx context.Context, req *remote.PersistRequest) (string, error)
}

// FileUpload describes an incoming file before registration.
type FileUpload struct {
	Name     string
	Size     int64
	MIMEType string
	Content  string
}

// AnalyzeOptions carries the module context of an analysis call.
type AnalyzeOptions struct {
	ModuleType      catalog.ModuleType
	ModuleName      string
	AnalysisContext string
	ModuleData      map[string]interface{}
}

// Workflow owns the uploaded document list. Analysis never fails from the
// caller's perspective: remote errors degrade to the local analyzer and the
// document always reaches the analyzed state.
type Workflow struct {
	store    *store
	analyzer *analysis.Analyzer
	remote   RemoteService
	cache    *cache.AnalysisCache
	archive  *archive.Store
	indexer  *archive.AuditIndexer
	notifier *notify.RiskNotifier
	obs      *observability.Observability
	logger   logger.Logger
}

// Options are the optional collaborators of a Workflow. Nil fields disable
// the corresponding concern.
type Options struct {
	Remote   RemoteService
	Cache    *cache.AnalysisCache
	Archive  *archive.Store
	Indexer  *archive.AuditIndexer
	Notifier *notify.RiskNotifier
	Obs      *observability.Observability
}

func NewWorkflow(analyzer *analysis.Analyzer, opts Options, log logger.Logger) *Workflow {
	return &Workflow{
		store:    newStore(),
		analyzer: analyzer,
		remote:   opts.Remote,
		cache:    opts.Cache,
		archive:  opts.Archive,
		indexer:  opts.Indexer,
		notifier: opts.Notifier,
		obs:      opts.Obs,
		logger:   log.With(map[string]interface{}{"component": "upload-workflow"}),
	}
}

// Register validates the file type and creates the uploaded document. On
// rejection no document is created and the validation error is returned
// synchronously.
func (w *Workflow) Register(file FileUpload) (Document, error) {
	if !isAllowedFileType(file.Name, file.MIMEType) {
		metrics.UploadsRejected.WithLabelValues("file_type").Inc()
		w.logger.Warn("upload rejected", map[string]interface{}{
			"filename": file.Name,
			"mimeType": file.MIMEType,
		})
		return Document{}, commonerrors.NewUnsupportedFileTypeError(file.Name, file.MIMEType)
	}

	doc := Document{
		ID:         uuid.New().String(),
		Name:       file.Name,
		Size:       file.Size,
		MIMEType:   file.MIMEType,
		UploadedAt: time.Now().UTC(),
		State:      StateUploaded,
		Content:    file.Content,
	}
	w.store.put(doc)

	w.logger.Info("document registered", map[string]interface{}{
		"documentId": doc.ID,
		"filename":   doc.Name,
		"size":       doc.Size,
	})
	return doc, nil
}

// Analyze runs the analysis lifecycle for one document: remote first, local
// fallback, cache read-through. Exactly one result is stored. The only error
// it returns is a missing document; analysis itself always succeeds.
func (w *Workflow) Analyze(ctx context.Context, id string, opts AnalyzeOptions) (Document, error) {
	doc, ok := w.store.get(id)
	if !ok {
		return Document{}, commonerrors.NewDocumentNotFoundError(id)
	}

	doc.State = StateAnalyzing
	doc.ModuleType = opts.ModuleType
	doc.ModuleName = opts.ModuleName
	w.store.put(doc)

	started := time.Now()
	content := truncateContent(doc.Content)

	result, source := w.obtainResult(ctx, doc, content, opts)

	doc.State = StateAnalyzed
	doc.Analyzed = true
	doc.Result = result
	w.store.put(doc)

	elapsed := time.Since(started)
	metrics.DocumentsAnalyzed.WithLabelValues(string(opts.ModuleType), source).Inc()
	metrics.AnalysisDuration.WithLabelValues(string(opts.ModuleType)).Observe(elapsed.Seconds())
	if w.obs != nil {
		w.obs.RecordAnalysis(ctx, source, string(result.RiskLevel), elapsed)
	}

	w.afterAnalysis(ctx, doc, source)

	w.logger.Info("document analyzed", map[string]interface{}{
		"documentId": doc.ID,
		"moduleType": opts.ModuleType,
		"source":     source,
		"score":      result.Score,
		"riskLevel":  result.RiskLevel,
	})
	return doc, nil
}

// obtainResult resolves the analysis result from cache, the remote service
// or the local analyzer, in that order.
func (w *Workflow) obtainResult(ctx context.Context, doc Document, content string, opts AnalyzeOptions) (*analysis.Result, string) {
	key := cache.Key(opts.ModuleType, content)
	if cached := w.cache.Get(ctx, key); cached != nil {
		return cached, "cache"
	}

	if w.remote != nil {
		result, err := w.remote.AnalyzeUpload(ctx, &remote.AnalyzeRequest{
			DocumentName:    doc.Name,
			DocumentContent: content,
			ModuleType:      opts.ModuleType,
			ModuleName:      opts.ModuleName,
			AnalysisContext: opts.AnalysisContext,
			ModuleData:      opts.ModuleData,
		})
		if err == nil {
			w.cache.Put(ctx, key, result)
			return result, "remote"
		}
		w.logger.Warn("remote analysis failed, using local analyzer", map[string]interface{}{
			"documentId": doc.ID,
			"error":      err.Error(),
		})
	}

	result := w.analyzer.Analyze(opts.ModuleType, doc.Name, content)
	w.cache.Put(ctx, key, result)
	return result, "local"
}

// afterAnalysis runs the best-effort post-analysis hooks: audit indexing and
// risk notification. Failures are logged, never propagated.
func (w *Workflow) afterAnalysis(ctx context.Context, doc Document, source string) {
	if err := w.indexer.Index(ctx, doc.ID, doc.Name, doc.ModuleType, source, doc.Result); err != nil {
		w.logger.Warn("audit indexing failed", map[string]interface{}{
			"documentId": doc.ID,
			"error":      err.Error(),
		})
	}
	if err := w.notifier.NotifyRisk(ctx, doc.Name, doc.ModuleType, doc.Result); err != nil {
		w.logger.Warn("risk notification failed", map[string]interface{}{
			"documentId": doc.ID,
			"error":      err.Error(),
		})
	}
}

// RegisterAndAnalyzeAll processes a batch sequentially: each file completes
// its register and analyze steps before the next begins, so at most one
// document is ever in the analyzing state per batch.
func (w *Workflow) RegisterAndAnalyzeAll(ctx context.Context, files []FileUpload, opts AnalyzeOptions) ([]Document, []error) {
	var docs []Document
	var errs []error
	for _, file := range files {
		doc, err := w.Register(file)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		doc, err = w.Analyze(ctx, doc.ID, opts)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		docs = append(docs, doc)
	}
	return docs, errs
}

// SaveToModule persists an analyzed document. When the remote persist call
// fails the document is archived locally with a synthesized backend id and
// the save still succeeds: offline tolerance is the documented behavior.
func (w *Workflow) SaveToModule(ctx context.Context, id string) (Document, error) {
	doc, ok := w.store.get(id)
	if !ok {
		return Document{}, commonerrors.NewDocumentNotFoundError(id)
	}
	if doc.State != StateAnalyzed {
		return Document{}, commonerrors.NewInvalidStateTransitionError(id, string(doc.State), "saveToModule")
	}

	backendID, destination := w.persist(ctx, doc)

	doc.State = StateSaved
	doc.SavedToModule = true
	doc.BackendID = backendID
	w.store.put(doc)

	metrics.DocumentsSaved.WithLabelValues(destination).Inc()
	w.logger.Info("document saved to module", map[string]interface{}{
		"documentId":  doc.ID,
		"backendId":   backendID,
		"destination": destination,
	})
	return doc, nil
}

func (w *Workflow) persist(ctx context.Context, doc Document) (backendID, destination string) {
	if w.remote != nil {
		id, err := w.remote.Persist(ctx, &remote.PersistRequest{
			Title:        doc.Name,
			Description:  persistDescription(doc),
			Content:      doc.Content,
			DocumentType: string(doc.ModuleType),
			TemplateType: string(doc.ModuleType),
			Status:       "analyzed",
			Metadata: map[string]interface{}{
				"moduleType":       doc.ModuleType,
				"moduleName":       doc.ModuleName,
				"analysisResult":   doc.Result,
				"uploadedAt":       doc.UploadedAt,
				"originalFilename": doc.Name,
			},
		})
		if err == nil {
			return id, "remote"
		}
		w.logger.Warn("remote persist failed, archiving locally", map[string]interface{}{
			"documentId": doc.ID,
			"error":      err.Error(),
		})
	}

	rec := &archive.Record{
		Name:       doc.Name,
		ModuleType: doc.ModuleType,
		ModuleName: doc.ModuleName,
		Content:    doc.Content,
		Result:     doc.Result,
	}
	if w.archive != nil {
		if archiveID, err := w.archive.Insert(ctx, rec); err == nil {
			return "local-" + archiveID, "archive"
		}
	}
	// No destination reachable; the save still succeeds with a synthesized
	// id so the session remains usable offline.
	return "local-" + uuid.New().String(), "offline"
}

func persistDescription(doc Document) string {
	if doc.Result == nil {
		return ""
	}
	return doc.Result.Summary
}

// Remove deletes a document from any state. Removing the selected document
// clears the selection.
func (w *Workflow) Remove(id string) bool {
	return w.store.remove(id)
}

// Select marks a document as the current one. Unknown ids clear selection.
func (w *Workflow) Select(id string) {
	w.store.setSelected(id)
}

// Selected returns the currently selected document, if any.
func (w *Workflow) Selected() (Document, bool) {
	return w.store.selectedDoc()
}

// Get returns one document snapshot by id.
func (w *Workflow) Get(id string) (Document, bool) {
	return w.store.get(id)
}

// List returns all documents in upload order.
func (w *Workflow) List() []Document {
	return w.store.list()
}
