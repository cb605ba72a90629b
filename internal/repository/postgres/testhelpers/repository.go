package testhelpers

import (
	"github.com/lib/pq"

	"github.com/cellmap-service/internal/domain/repository"
	"github.com/cellmap-service/internal/repository/postgres"
)

// NewDatasetRepositoryForTest creates a dataset repository with test database and logger
func NewDatasetRepositoryForTest(tdb *TestDB, table, name string) repository.DatasetSource {
	pgDB := postgres.NewDBForTest(tdb.DB, tdb.Logger)
	return postgres.NewDatasetRepository(pgDB, table, name, tdb.Logger)
}

func quote(table string) string {
	return pq.QuoteIdentifier(table)
}
