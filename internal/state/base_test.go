package state

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arytiwari/jioastro-sub006/pkg/core"
)

func TestBindDollar(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"SELECT 1", "SELECT 1"},
		{"WHERE id = ?", "WHERE id = $1"},
		{"VALUES (?, ?, ?)", "VALUES ($1, $2, $3)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, bindDollar(tt.in))
	}
}

func newMockStore(t *testing.T, bind func(string) string) (*baseStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &baseStore{db: db, bind: bind}, mock
}

func TestBaseStore_RecordUnresolved_RebindsPlaceholders(t *testing.T) {
	store, mock := newMockStore(t, bindDollar)

	now := time.Now().UTC()
	mock.ExpectExec(`VALUES \(\$1, \$2, \$3, \$4, 1, \$5, \$6, \$7\)`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	rows := sqlmock.NewRows([]string{
		"id", "raw_name", "normalized_name", "chart_id", "occurrences",
		"first_seen", "last_seen", "status", "resolved_canonical",
	}).AddRow("abc", "Xyz Yoga", "xyz yoga", "chart-001", 1, now, now, "pending", "")
	mock.ExpectQuery(`WHERE normalized_name = \$1`).WillReturnRows(rows)

	_, err := store.RecordUnresolved(context.Background(), "Xyz Yoga", "xyz yoga", "chart-001")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBaseStore_RecordUnresolved_ExecError(t *testing.T) {
	store, mock := newMockStore(t, bindQuestion)

	mock.ExpectExec("INSERT INTO review_queue").WillReturnError(assert.AnError)

	_, err := store.RecordUnresolved(context.Background(), "Xyz Yoga", "xyz yoga", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to record unresolved name")
}

func TestBaseStore_ListReview_QueryError(t *testing.T) {
	store, mock := newMockStore(t, bindQuestion)

	mock.ExpectQuery("SELECT").WillReturnError(assert.AnError)

	_, err := store.ListReview(context.Background(), "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list review queue")
}

func TestBaseStore_GetReview_NoRows(t *testing.T) {
	store, mock := newMockStore(t, bindQuestion)

	mock.ExpectQuery("SELECT").WillReturnError(sql.ErrNoRows)

	entry, err := store.GetReview(context.Background(), "missing")
	require.NoError(t, err)
	assert.Nil(t, entry)
}

func TestBaseStore_SaveAnalysis_RollsBackOnError(t *testing.T) {
	store, mock := newMockStore(t, bindQuestion)

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO analyses").WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := store.SaveAnalysis(context.Background(), &core.Analysis{ChartID: "chart-001"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save analysis")
	assert.NoError(t, mock.ExpectationsWereMet())
}
