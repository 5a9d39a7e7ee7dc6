package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	soundnesstesting "github.com/dock-labs/rdf2020soundness/internal/testing"
)

// TestMigrateAgainstInMemoryDatabase runs the migration set against a
// bare in-memory connection, rather than one produced by Open, to
// confirm Migrate doesn't depend on Open's WAL/busy-timeout pragmas.
func TestMigrateAgainstInMemoryDatabase(t *testing.T) {
	db := soundnesstesting.CreateTestDB(t)

	require.NoError(t, Migrate(db, nil))

	for _, table := range []string{"schema_migrations", "rule_bundles", "rules", "proof_replays"} {
		var exists int
		err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&exists)
		require.NoError(t, err)
		assert.Equal(t, 1, exists, "table %s should exist", table)
	}
}
