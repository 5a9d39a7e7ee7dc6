package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMigrateRollsBackOnExecFailure drives Migrate's transaction-failure
// path with a mocked driver: a real sqlite file can't easily be made to
// fail mid-statement on demand, but sqlmock can assert the rollback
// happens instead of a dangling transaction.
func TestMigrateRollsBackOnExecFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT EXISTS").WillReturnError(assertAnyError)
	mock.ExpectBegin()
	mock.ExpectExec(".*").WillReturnError(assertAnyError)
	mock.ExpectRollback()

	err = Migrate(db, nil)
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

var assertAnyError = assert.AnError
