package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_AppliesAllMigrations(t *testing.T) {
	database, err := Open(":memory:")
	require.NoError(t, err)
	defer database.Close()

	version, err := SchemaVersion(database)
	require.NoError(t, err)
	assert.Equal(t, migrations[len(migrations)-1].version, version)

	for _, table := range []string{
		"sites", "projects", "visits",
		"site_achievements", "timesheet_entries",
		"user_tools", "leads",
	} {
		var name string
		err := database.QueryRow(
			`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
		).Scan(&name)
		require.NoError(t, err, "table %s missing", table)
	}
}

func TestMigrate_Rerunnable(t *testing.T) {
	database, err := Open(":memory:")
	require.NoError(t, err)
	defer database.Close()

	// A second pass must be a pure no-op: versioned steps never re-apply,
	// so the ALTER TABLE steps cannot fail on existing columns.
	require.NoError(t, Migrate(database))
	require.NoError(t, Migrate(database))

	var count int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM schema_version`).Scan(&count))
	assert.Equal(t, len(migrations), count)
}

func TestMigrate_RecordsEachStepOnce(t *testing.T) {
	database, err := Open(":memory:")
	require.NoError(t, err)
	defer database.Close()

	rows, err := database.Query(`SELECT version, name FROM schema_version ORDER BY version`)
	require.NoError(t, err)
	defer rows.Close()

	i := 0
	for rows.Next() {
		var version int
		var name string
		require.NoError(t, rows.Scan(&version, &name))
		require.Less(t, i, len(migrations))
		assert.Equal(t, migrations[i].version, version)
		assert.Equal(t, migrations[i].name, name)
		i++
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, len(migrations), i)
}

func TestMigrate_VisitColumnsIncludeMode(t *testing.T) {
	database, err := Open(":memory:")
	require.NoError(t, err)
	defer database.Close()

	_, err = database.Exec(
		`INSERT INTO visits (id, site_id, type, date, mode) VALUES (?, ?, ?, ?, ?)`,
		"v1", "s1", "IMV", "2024-01-01T00:00:00Z", "Remote",
	)
	require.NoError(t, err)

	var mode string
	require.NoError(t, database.QueryRow(`SELECT mode FROM visits WHERE id = 'v1'`).Scan(&mode))
	assert.Equal(t, "Remote", mode)
}
