package upload

import (
	"sync"
	"time"

	"grc-docengine/internal/analysis"
	"grc-docengine/internal/catalog"
)

// State of an uploaded document in its lifecycle.
type State string

const (
	StateUploaded  State = "uploaded"
	StateAnalyzing State = "analyzing"
	StateAnalyzed  State = "analyzed"
	StateSaved     State = "saved"
)

// Document is one snapshot of an uploaded document. Snapshots are immutable:
// every transition writes a new value into the store, so readers always see
// a consistent whole record, never a partially updated one.
type Document struct {
	ID            string             `json:"id"`
	Name          string             `json:"name"`
	Size          int64              `json:"size"`
	MIMEType      string             `json:"mimeType"`
	UploadedAt    time.Time          `json:"uploadedAt"`
	State         State              `json:"state"`
	ModuleType    catalog.ModuleType `json:"moduleType,omitempty"`
	ModuleName    string             `json:"moduleName,omitempty"`
	Analyzed      bool               `json:"analyzed"`
	Result        *analysis.Result   `json:"analysisResult,omitempty"`
	SavedToModule bool               `json:"savedToModule"`
	BackendID     string             `json:"backendId,omitempty"`
	Content       string             `json:"content,omitempty"`
}

// store is the snapshot arena. It preserves insertion order for listing and
// owns the current selection, so selection reads and writes share the same
// lock as the documents they point at.
type store struct {
	mu       sync.RWMutex
	docs     map[string]Document
	order    []string
	selected string
}

func newStore() *store {
	return &store{docs: make(map[string]Document)}
}

func (s *store) put(doc Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.docs[doc.ID]; !exists {
		s.order = append(s.order, doc.ID)
	}
	s.docs[doc.ID] = doc
}

func (s *store) get(id string) (Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[id]
	return doc, ok
}

func (s *store) remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[id]; !ok {
		return false
	}
	delete(s.docs, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	if s.selected == id {
		s.selected = ""
	}
	return true
}

// setSelected records id as the current selection when it exists, and clears
// the selection otherwise.
func (s *store) setSelected(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.docs[id]; ok {
		s.selected = id
		return
	}
	s.selected = ""
}

func (s *store) selectedDoc() (Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selected == "" {
		return Document{}, false
	}
	doc, ok := s.docs[s.selected]
	return doc, ok
}

func (s *store) list() []Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Document, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.docs[id])
	}
	return out
}
