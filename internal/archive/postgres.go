// Package archive persists analyzed documents locally. It is the offline
// destination of saveToModule: when the remote persist call fails, the
// document still lands here with a synthesized backend id.
package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"grc-docengine/internal/analysis"
	"grc-docengine/internal/catalog"
	commonerrors "grc-docengine/internal/common/errors"
	"grc-docengine/internal/common/logger"
)

const insertDocumentQuery = `
	INSERT INTO document_archive (id, name, module_type, module_name, content, analysis_result, archived_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7)`

// Record is one archived document.
type Record struct {
	ID         string
	Name       string
	ModuleType catalog.ModuleType
	ModuleName string
	Content    string
	Result     *analysis.Result
	ArchivedAt time.Time
}

// Store writes archive records to PostgreSQL.
type Store struct {
	db     *sql.DB
	logger logger.Logger
}

func NewStore(db *sql.DB, log logger.Logger) *Store {
	return &Store{
		db:     db,
		logger: log.With(map[string]interface{}{"component": "archive-store"}),
	}
}

// Insert archives one document and returns the archive id.
func (s *Store) Insert(ctx context.Context, rec *Record) (string, error) {
	if s == nil || s.db == nil {
		return "", commonerrors.NewArchiveInsertFailedError(sql.ErrConnDone)
	}

	if rec.ID == "" {
		rec.ID = uuid.New().String()
	}
	if rec.ArchivedAt.IsZero() {
		rec.ArchivedAt = time.Now().UTC()
	}

	resultJSON, err := json.Marshal(rec.Result)
	if err != nil {
		return "", commonerrors.NewArchiveInsertFailedError(err)
	}

	_, err = s.db.ExecContext(ctx, insertDocumentQuery,
		rec.ID, rec.Name, string(rec.ModuleType), rec.ModuleName,
		rec.Content, resultJSON, rec.ArchivedAt,
	)
	if err != nil {
		s.logger.Error("archive insert failed", map[string]interface{}{
			"documentName": rec.Name,
			"moduleType":   rec.ModuleType,
			"error":        err.Error(),
		})
		return "", commonerrors.NewArchiveInsertFailedError(err)
	}

	return rec.ID, nil
}
