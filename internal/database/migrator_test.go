package database

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMigrationRunner(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db)

	assert.NotNil(t, runner)
	assert.Equal(t, db, runner.db)
	assert.Equal(t, migrationsPath, runner.migrationsPath)
	assert.Equal(t, seedsPath, runner.seedsPath)
}

func TestWaitForDatabase_Success(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing().WillReturnError(nil)

	runner := NewMigrationRunner(db)
	err = runner.WaitForDatabase()

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_FailureThenSuccess(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	// First ping fails, second succeeds
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(nil)

	runner := NewMigrationRunner(db)

	// Tighten retry settings for a faster test
	originalRetries := maxRetries
	originalInterval := retryInterval
	maxRetries = 2
	retryInterval = 10 * time.Millisecond
	defer func() {
		maxRetries = originalRetries
		retryInterval = originalInterval
	}()

	err = runner.WaitForDatabase()

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWaitForDatabase_Exhausted(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing().WillReturnError(errors.New("connection refused"))
	mock.ExpectPing().WillReturnError(errors.New("connection refused"))

	runner := NewMigrationRunner(db)

	originalRetries := maxRetries
	originalInterval := retryInterval
	maxRetries = 2
	retryInterval = 10 * time.Millisecond
	defer func() {
		maxRetries = originalRetries
		retryInterval = originalInterval
	}()

	err = runner.WaitForDatabase()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database not ready after 2 attempts")
}

func TestRunMigrations_MissingDirectorySkips(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db)
	runner.migrationsPath = "testdata/does-not-exist"

	assert.NoError(t, runner.RunMigrations())
}

func TestLoadSeeds_DisabledByDefault(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	t.Setenv("SEED_DATABASE", "")

	runner := NewMigrationRunner(db)

	assert.NoError(t, runner.LoadSeeds())
	// No SQL must be executed when seeding is disabled
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoadSeeds_MissingDirectorySkips(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	t.Setenv("SEED_DATABASE", "true")

	runner := NewMigrationRunner(db)
	runner.seedsPath = "testdata/does-not-exist"

	assert.NoError(t, runner.LoadSeeds())
}

func TestGetMigrationStatus_MissingDirectory(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	runner := NewMigrationRunner(db)
	runner.migrationsPath = "testdata/does-not-exist"

	_, _, err = runner.GetMigrationStatus()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "migrations directory not found")
}

func TestRunMigrationsIfEnabled_Disabled(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	t.Setenv("AUTO_MIGRATE", "false")

	assert.NoError(t, RunMigrationsIfEnabled(db))
	// Disabled runner must not even ping the database
	assert.NoError(t, mock.ExpectationsWereMet())
}
