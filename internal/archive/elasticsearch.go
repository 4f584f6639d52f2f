package archive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/elastic/go-elasticsearch/v8"

	"grc-docengine/internal/analysis"
	"grc-docengine/internal/catalog"
	commonerrors "grc-docengine/internal/common/errors"
	"grc-docengine/internal/common/logger"
)

const auditIndexName = "compliance-analysis"

// auditEntry is the indexed view of one completed analysis, searchable by
// auditors independently of the session that produced it.
type auditEntry struct {
	DocumentID   string             `json:"documentId"`
	DocumentName string             `json:"documentName"`
	ModuleType   catalog.ModuleType `json:"moduleType"`
	Score        int                `json:"score"`
	RiskLevel    analysis.RiskLevel `json:"riskLevel"`
	Summary      string             `json:"summary"`
	Deficiencies int                `json:"deficiencies"`
	AnalyzedAt   time.Time          `json:"analyzedAt"`
	Source       string             `json:"source"`
}

// AuditIndexer writes analysis outcomes to Elasticsearch, best effort.
type AuditIndexer struct {
	client *elasticsearch.Client
	logger logger.Logger
}

func NewAuditIndexer(client *elasticsearch.Client, log logger.Logger) *AuditIndexer {
	return &AuditIndexer{
		client: client,
		logger: log.With(map[string]interface{}{"component": "audit-indexer"}),
	}
}

// Index records one completed analysis. Failures are returned for logging
// only; callers never propagate them.
func (i *AuditIndexer) Index(ctx context.Context, documentID, documentName string, moduleType catalog.ModuleType, source string, result *analysis.Result) error {
	if i == nil || i.client == nil || result == nil {
		return nil
	}

	entry := auditEntry{
		DocumentID:   documentID,
		DocumentName: documentName,
		ModuleType:   moduleType,
		Score:        result.Score,
		RiskLevel:    result.RiskLevel,
		Summary:      result.Summary,
		Deficiencies: len(result.Deficiencies),
		AnalyzedAt:   time.Now().UTC(),
		Source:       source,
	}

	body, err := json.Marshal(entry)
	if err != nil {
		return commonerrors.NewAuditIndexFailedError(err)
	}

	res, err := i.client.Index(
		auditIndexName,
		bytes.NewReader(body),
		i.client.Index.WithContext(ctx),
		i.client.Index.WithDocumentID(documentID),
	)
	if err != nil {
		return commonerrors.NewAuditIndexFailedError(err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return commonerrors.NewAuditIndexFailedError(fmt.Errorf("index response: %s", res.Status()))
	}
	return nil
}
