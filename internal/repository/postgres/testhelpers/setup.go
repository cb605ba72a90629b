package testhelpers

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/cellmap-service/internal/repository/postgres"
)

// TestDB represents a test database connection
type TestDB struct {
	DB     *sqlx.DB
	Logger *zap.Logger
}

// SetupTestDB connects to the test database or skips the test when it is not reachable
func SetupTestDB(t *testing.T) *TestDB {
	host := getEnv("TEST_DB_HOST", "localhost")
	port := getEnv("TEST_DB_PORT", "5433")
	user := getEnv("TEST_DB_USER", "postgres")
	password := getEnv("TEST_DB_PASSWORD", "postgres")
	dbname := getEnv("TEST_DB_NAME", "cellmap_test")
	sslmode := getEnv("TEST_DB_SSLMODE", "disable")

	connStr := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s connect_timeout=2",
		host, port, user, password, dbname, sslmode,
	)

	db, err := sqlx.Connect("postgres", connStr)
	if err != nil {
		t.Skipf("PostgreSQL not available for integration tests: %v", err)
	}

	return &TestDB{
		DB:     db,
		Logger: zap.NewNop(),
	}
}

// Close closes the database connection
func (tdb *TestDB) Close() {
	if tdb.DB != nil {
		tdb.DB.Close()
	}
}

// CreateDatasetTable creates the dataset table used by the repository
func (tdb *TestDB) CreateDatasetTable(ctx context.Context, table string) error {
	_, err := tdb.DB.ExecContext(ctx, postgres.CreateDatasetTableQuery(table))
	return err
}

// InsertDataset stores a document under name
func (tdb *TestDB) InsertDataset(ctx context.Context, table, name, payload string, updatedAt time.Time) error {
	query := fmt.Sprintf(`INSERT INTO %s (name, payload, updated_at) VALUES ($1, $2::jsonb, $3)`, quote(table))
	_, err := tdb.DB.ExecContext(ctx, query, name, payload, updatedAt)
	return err
}

// DropTable removes a table created by the test
func (tdb *TestDB) DropTable(ctx context.Context, table string) {
	_, _ = tdb.DB.ExecContext(ctx, fmt.Sprintf("DROP TABLE IF EXISTS %s", quote(table)))
}

// getEnv gets environment variable or returns default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
