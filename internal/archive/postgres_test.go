package archive

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"grc-docengine/internal/analysis"
	"grc-docengine/internal/catalog"
	"grc-docengine/internal/common/logger"
)

func setupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create mock db: %v", err)
	}
	return db, mock
}

func archiveRecord() *Record {
	return &Record{
		Name:       "laporan.pdf",
		ModuleType: catalog.ModuleDPIA,
		ModuleName: "DPIA HR",
		Content:    "isi dokumen",
		Result:     &analysis.Result{Score: 60, RiskLevel: analysis.RiskMedium},
	}
}

func TestInsert_Succeeds(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO document_archive").
		WithArgs(sqlmock.AnyArg(), "laporan.pdf", "dpia", "DPIA HR", "isi dokumen", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	store := NewStore(db, logger.NewTestLogger(t))
	id, err := store.Insert(context.Background(), archiveRecord())

	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInsert_KeepsProvidedID(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO document_archive").
		WithArgs("fixed-id", "laporan.pdf", "dpia", "DPIA HR", "isi dokumen", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	store := NewStore(db, logger.NewTestLogger(t))
	rec := archiveRecord()
	rec.ID = "fixed-id"

	id, err := store.Insert(context.Background(), rec)

	require.NoError(t, err)
	assert.Equal(t, "fixed-id", id)
}

func TestInsert_DatabaseError(t *testing.T) {
	db, mock := setupMockDB(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO document_archive").
		WillReturnError(errors.New("connection refused"))

	store := NewStore(db, logger.NewTestLogger(t))
	_, err := store.Insert(context.Background(), archiveRecord())

	require.Error(t, err)
}

func TestInsert_NilStoreFailsCleanly(t *testing.T) {
	var store *Store
	_, err := store.Insert(context.Background(), archiveRecord())
	assert.Error(t, err)
}
