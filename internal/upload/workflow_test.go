package upload

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grc-docengine/internal/analysis"
	"grc-docengine/internal/catalog"
	commonerrors "grc-docengine/internal/common/errors"
	"grc-docengine/internal/common/logger"
	"grc-docengine/internal/remote"
)

type mockRemote struct {
	analyzeCalls int
	analyzeReq   *remote.AnalyzeRequest
	analyzeRes   *analysis.Result
	analyzeErr   error

	persistCalls int
	persistID    string
	persistErr   error
}

func (m *mockRemote) AnalyzeUpload(_ context.Context, req *remote.AnalyzeRequest) (*analysis.Result, error) {
	m.analyzeCalls++
	m.analyzeReq = req
	return m.analyzeRes, m.analyzeErr
}

func (m *mockRemote) Persist(_ context.Context, _ *remote.PersistRequest) (string, error) {
	m.persistCalls++
	return m.persistID, m.persistErr
}

func newTestWorkflow(t *testing.T, opts Options) *Workflow {
	t.Helper()
	analyzer := analysis.New(analysis.WithClassifier(&analysis.FixedClassifier{
		Statuses: []analysis.Status{analysis.StatusComplete},
	}))
	return NewWorkflow(analyzer, opts, logger.NewTestLogger(t))
}

func pdfUpload(name string) FileUpload {
	return FileUpload{
		Name:     name,
		Size:     1024,
		MIMEType: "application/pdf",
		Content:  "dokumen kepatuhan",
	}
}

func dpiaOptions() AnalyzeOptions {
	return AnalyzeOptions{ModuleType: catalog.ModuleDPIA, ModuleName: "DPIA HR"}
}

func TestRegister_AcceptsAllowedTypes(t *testing.T) {
	w := newTestWorkflow(t, Options{})

	tests := []struct {
		name     string
		mimeType string
	}{
		{"report.pdf", "application/pdf"},
		{"notes.md", ""},
		{"doc.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document"},
		{"plain.txt", "text/plain"},
		{"legacy.doc", "application/msword"},
		{"README.MD", "application/octet-stream"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := w.Register(FileUpload{Name: tt.name, MIMEType: tt.mimeType})
			require.NoError(t, err)
			assert.NotEmpty(t, doc.ID)
			assert.Equal(t, StateUploaded, doc.State)
			assert.False(t, doc.Analyzed)
		})
	}
}

func TestRegister_RejectsDisallowedTypes(t *testing.T) {
	w := newTestWorkflow(t, Options{})

	tests := []struct {
		name     string
		mimeType string
	}{
		{"malware.exe", "application/octet-stream"},
		{"image.png", "image/png"},
		{"archive.zip", "application/zip"},
		{"no-extension", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := w.Register(FileUpload{Name: tt.name, MIMEType: tt.mimeType})
			require.Error(t, err)

			stdErr, ok := err.(*commonerrors.StandardError)
			require.True(t, ok)
			assert.Equal(t, commonerrors.ErrCodeUnsupportedFileType, stdErr.Code)
		})
	}
	assert.Empty(t, w.List(), "rejected uploads must not create documents")
}

func TestAnalyze_RemoteSuccess(t *testing.T) {
	remoteResult := &analysis.Result{Score: 90, RiskLevel: analysis.RiskLow, Summary: "remote"}
	mock := &mockRemote{analyzeRes: remoteResult}
	w := newTestWorkflow(t, Options{Remote: mock})

	doc, err := w.Register(pdfUpload("report.pdf"))
	require.NoError(t, err)

	analyzed, err := w.Analyze(context.Background(), doc.ID, dpiaOptions())

	require.NoError(t, err)
	assert.Equal(t, StateAnalyzed, analyzed.State)
	assert.True(t, analyzed.Analyzed)
	assert.Equal(t, remoteResult, analyzed.Result)
	assert.Equal(t, catalog.ModuleDPIA, analyzed.ModuleType)
	assert.Equal(t, 1, mock.analyzeCalls)
}

func TestAnalyze_RemoteFailureFallsBackLocally(t *testing.T) {
	mock := &mockRemote{analyzeErr: errors.New("unreachable")}
	w := newTestWorkflow(t, Options{Remote: mock})

	doc, _ := w.Register(pdfUpload("report.pdf"))
	analyzed, err := w.Analyze(context.Background(), doc.ID, dpiaOptions())

	require.NoError(t, err, "analysis must succeed even when the remote call fails")
	assert.True(t, analyzed.Analyzed)
	require.NotNil(t, analyzed.Result)
	assert.Equal(t, 100, analyzed.Result.Score)
	assert.Equal(t, 1, mock.analyzeCalls)
}

func TestAnalyze_NoRemoteConfigured(t *testing.T) {
	w := newTestWorkflow(t, Options{})

	doc, _ := w.Register(pdfUpload("report.pdf"))
	analyzed, err := w.Analyze(context.Background(), doc.ID, dpiaOptions())

	require.NoError(t, err)
	assert.True(t, analyzed.Analyzed)
	assert.NotNil(t, analyzed.Result)
}

func TestAnalyze_TruncatesContentForRemote(t *testing.T) {
	mock := &mockRemote{analyzeRes: &analysis.Result{Score: 50, RiskLevel: analysis.RiskHigh}}
	w := newTestWorkflow(t, Options{Remote: mock})

	doc, err := w.Register(FileUpload{
		Name:     "big.txt",
		MIMEType: "text/plain",
		Content:  strings.Repeat("a", maxContentLength+500),
	})
	require.NoError(t, err)

	_, err = w.Analyze(context.Background(), doc.ID, dpiaOptions())

	require.NoError(t, err)
	require.NotNil(t, mock.analyzeReq)
	assert.Len(t, mock.analyzeReq.DocumentContent, maxContentLength)
}

func TestAnalyze_TruncationNeverSplitsRune(t *testing.T) {
	mock := &mockRemote{analyzeRes: &analysis.Result{Score: 50, RiskLevel: analysis.RiskHigh}}
	w := newTestWorkflow(t, Options{Remote: mock})

	// A two-byte rune straddles the cut point, so the truncation must back
	// up instead of sending a dangling lead byte.
	content := strings.Repeat("a", maxContentLength-1) + "é" + strings.Repeat("b", 500)
	doc, err := w.Register(FileUpload{
		Name:     "utf8.txt",
		MIMEType: "text/plain",
		Content:  content,
	})
	require.NoError(t, err)

	_, err = w.Analyze(context.Background(), doc.ID, dpiaOptions())

	require.NoError(t, err)
	require.NotNil(t, mock.analyzeReq)
	sent := mock.analyzeReq.DocumentContent
	assert.True(t, utf8.ValidString(sent))
	assert.Equal(t, maxContentLength-1, len(sent))
	assert.Equal(t, strings.Repeat("a", maxContentLength-1), sent)
}

func TestAnalyze_UnknownDocument(t *testing.T) {
	w := newTestWorkflow(t, Options{})
	_, err := w.Analyze(context.Background(), "missing", dpiaOptions())

	require.Error(t, err)
	stdErr := err.(*commonerrors.StandardError)
	assert.Equal(t, commonerrors.ErrCodeDocumentNotFound, stdErr.Code)
}

func TestAnalyze_ReanalysisReplacesResult(t *testing.T) {
	mock := &mockRemote{analyzeRes: &analysis.Result{Score: 40, RiskLevel: analysis.RiskHigh}}
	w := newTestWorkflow(t, Options{Remote: mock})

	doc, _ := w.Register(pdfUpload("report.pdf"))
	first, err := w.Analyze(context.Background(), doc.ID, dpiaOptions())
	require.NoError(t, err)
	assert.Equal(t, 40, first.Result.Score)

	mock.analyzeRes = &analysis.Result{Score: 70, RiskLevel: analysis.RiskMedium}
	second, err := w.Analyze(context.Background(), doc.ID, dpiaOptions())
	require.NoError(t, err)
	assert.Equal(t, 70, second.Result.Score)
}

func TestSaveToModule_RemoteSuccess(t *testing.T) {
	mock := &mockRemote{
		analyzeRes: &analysis.Result{Score: 80, RiskLevel: analysis.RiskLow},
		persistID:  "backend-7",
	}
	w := newTestWorkflow(t, Options{Remote: mock})

	doc, _ := w.Register(pdfUpload("report.pdf"))
	_, err := w.Analyze(context.Background(), doc.ID, dpiaOptions())
	require.NoError(t, err)

	saved, err := w.SaveToModule(context.Background(), doc.ID)

	require.NoError(t, err)
	assert.Equal(t, StateSaved, saved.State)
	assert.True(t, saved.SavedToModule)
	assert.Equal(t, "backend-7", saved.BackendID)
	assert.Equal(t, 1, mock.persistCalls)
}

func TestSaveToModule_PersistFailureStillSucceeds(t *testing.T) {
	mock := &mockRemote{
		analyzeRes: &analysis.Result{Score: 80, RiskLevel: analysis.RiskLow},
		persistErr: errors.New("backend down"),
	}
	w := newTestWorkflow(t, Options{Remote: mock})

	doc, _ := w.Register(pdfUpload("report.pdf"))
	_, err := w.Analyze(context.Background(), doc.ID, dpiaOptions())
	require.NoError(t, err)

	saved, err := w.SaveToModule(context.Background(), doc.ID)

	require.NoError(t, err, "save must succeed offline")
	assert.True(t, saved.SavedToModule)
	assert.True(t, strings.HasPrefix(saved.BackendID, "local-"))
}

func TestSaveToModule_RequiresAnalyzedState(t *testing.T) {
	w := newTestWorkflow(t, Options{})
	doc, _ := w.Register(pdfUpload("report.pdf"))

	_, err := w.SaveToModule(context.Background(), doc.ID)

	require.Error(t, err)
	stdErr := err.(*commonerrors.StandardError)
	assert.Equal(t, commonerrors.ErrCodeInvalidStateTransition, stdErr.Code)
}

func TestSaveToModule_UnknownDocument(t *testing.T) {
	w := newTestWorkflow(t, Options{})
	_, err := w.SaveToModule(context.Background(), "missing")
	require.Error(t, err)
}

func TestRemove_AnyStateAndClearsSelection(t *testing.T) {
	w := newTestWorkflow(t, Options{})

	doc, _ := w.Register(pdfUpload("report.pdf"))
	w.Select(doc.ID)
	_, selected := w.Selected()
	require.True(t, selected)

	assert.True(t, w.Remove(doc.ID))
	_, selected = w.Selected()
	assert.False(t, selected)
	assert.False(t, w.Remove(doc.ID))
}

func TestSelect_UnknownIDClearsSelection(t *testing.T) {
	w := newTestWorkflow(t, Options{})
	doc, _ := w.Register(pdfUpload("report.pdf"))

	w.Select(doc.ID)
	w.Select("missing")

	_, selected := w.Selected()
	assert.False(t, selected)
}

func TestSelect_ConcurrentAccessIsConsistent(t *testing.T) {
	w := newTestWorkflow(t, Options{})

	var ids []string
	for i := 0; i < 4; i++ {
		doc, err := w.Register(pdfUpload("report.pdf"))
		require.NoError(t, err)
		ids = append(ids, doc.ID)
	}

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				switch g % 3 {
				case 0:
					w.Select(ids[i%len(ids)])
				case 1:
					if doc, ok := w.Selected(); ok {
						assert.NotEmpty(t, doc.ID)
					}
				default:
					w.Remove(ids[i%len(ids)])
				}
			}
		}(g)
	}
	wg.Wait()

	// Whatever interleaving happened, a surviving selection must point at a
	// document that still exists.
	if doc, ok := w.Selected(); ok {
		_, exists := w.Get(doc.ID)
		assert.True(t, exists)
	}
}

func TestList_PreservesUploadOrder(t *testing.T) {
	w := newTestWorkflow(t, Options{})

	first, _ := w.Register(pdfUpload("a.pdf"))
	second, _ := w.Register(pdfUpload("b.pdf"))
	third, _ := w.Register(pdfUpload("c.pdf"))

	docs := w.List()
	require.Len(t, docs, 3)
	assert.Equal(t, []string{first.ID, second.ID, third.ID},
		[]string{docs[0].ID, docs[1].ID, docs[2].ID})
}

func TestRegisterAndAnalyzeAll_SkipsRejectedFiles(t *testing.T) {
	w := newTestWorkflow(t, Options{})

	docs, errs := w.RegisterAndAnalyzeAll(context.Background(), []FileUpload{
		pdfUpload("good.pdf"),
		{Name: "bad.exe", MIMEType: "application/octet-stream"},
		pdfUpload("also-good.pdf"),
	}, dpiaOptions())

	assert.Len(t, docs, 2)
	require.Len(t, errs, 1)
	for _, doc := range docs {
		assert.True(t, doc.Analyzed)
		assert.Equal(t, StateAnalyzed, doc.State)
	}
}

func TestSnapshots_AreImmutable(t *testing.T) {
	w := newTestWorkflow(t, Options{})
	doc, _ := w.Register(pdfUpload("report.pdf"))

	snapshot, _ := w.Get(doc.ID)
	snapshot.Name = "mutated.pdf"

	fresh, _ := w.Get(doc.ID)
	assert.Equal(t, "report.pdf", fresh.Name)
}
