package config

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestFiberDefaults(t *testing.T) {
	t.Setenv("HTTP_HOST", "")
	t.Setenv("PORT", "")

	assert.Equal(t, "5000", GetFiberHttpPort())
	assert.Equal(t, "0.0.0.0:5000", GetFiberListenAddress())
	assert.Equal(t, "*", GetCORSAllowedOrigins())

	t.Setenv("PORT", "8081")
	assert.Equal(t, "0.0.0.0:8081", GetFiberListenAddress())
}

func TestStoreTimeout(t *testing.T) {
	t.Setenv("STORE_TIMEOUT", "")
	assert.Zero(t, GetStoreTimeout())

	t.Setenv("STORE_TIMEOUT", "3s")
	assert.Equal(t, 3*time.Second, GetStoreTimeout())

	t.Setenv("STORE_TIMEOUT", "soon")
	assert.Zero(t, GetStoreTimeout())
}

func TestMySQLDSN(t *testing.T) {
	t.Setenv("DBMS", "")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_USER", "hr")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "company")

	assert.Equal(t, DBMSMySQL, GetDBMS())
	dsn := GetMySQLDSN()
	assert.Contains(t, dsn, "hr:secret@tcp(db.internal:3306)/company")
	assert.Contains(t, dsn, "clientFoundRows=true")
	assert.Contains(t, dsn, "parseTime=true")
}

func TestPostgresDSN(t *testing.T) {
	t.Setenv("DBMS", "Postgres")
	t.Setenv("DB_HOST", "pg")
	t.Setenv("DB_PORT", "")
	t.Setenv("DB_USER", "hr")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "company")

	assert.Equal(t, "host=pg port=5432 user=hr password=secret dbname=company sslmode=disable", GetPostgresDSN())

	dialector, err := GetDialector()
	require.NoError(t, err)
	assert.Equal(t, "postgres", dialector.Name())
}

func TestUnsupportedDBMS(t *testing.T) {
	t.Setenv("DBMS", "oracle")

	_, err := GetDialector()
	assert.Error(t, err)
}

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), GetGormConfig(GetLogrusInstance()))
	require.NoError(t, err)
	return db, mock
}

func TestMigrateKeepsExistingTable(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`information_schema\.tables`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	require.NoError(t, Migrate(db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrateReportsCreateFailure(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(`information_schema\.tables`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`CREATE TABLE "employees"`).
		WillReturnError(errors.New("permission denied for schema public"))

	err := Migrate(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "permission denied for schema public")
}
