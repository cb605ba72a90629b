package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
	"go.uber.org/zap"

	"github.com/cellmap-service/internal/domain/repository"
)

// datasetRepository читает документ cells.json, хранящийся в jsonb колонке.
// Таблица: name text, payload jsonb, updated_at timestamptz.
type datasetRepository struct {
	db     *DB
	table  string
	name   string
	logger *zap.Logger
}

// NewDatasetRepository создает источник датасета поверх PostgreSQL
func NewDatasetRepository(db *DB, table, name string, logger *zap.Logger) repository.DatasetSource {
	return &datasetRepository{
		db:     db,
		table:  table,
		name:   name,
		logger: logger,
	}
}

func (r *datasetRepository) Name() string {
	return fmt.Sprintf("postgres:%s/%s", r.table, r.name)
}

func (r *datasetRepository) Load(ctx context.Context) ([]byte, error) {
	var payload string
	err := r.db.GetContext(ctx, &payload, SelectDatasetQuery(r.table), r.name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("dataset %q not found in %s", r.name, r.table)
	}
	if err != nil {
		r.logger.Error("Failed to load dataset", zap.String("table", r.table), zap.String("name", r.name), zap.Error(err))
		return nil, fmt.Errorf("load dataset %q: %w", r.name, err)
	}

	r.logger.Debug("Dataset loaded from database", zap.String("name", r.name), zap.Int("bytes", len(payload)))
	return []byte(payload), nil
}

// SelectDatasetQuery - последняя версия документа по имени. Имя таблицы приходит из конфига.
func SelectDatasetQuery(table string) string {
	return fmt.Sprintf(
		`SELECT payload::text FROM %s WHERE name = $1 ORDER BY updated_at DESC LIMIT 1`,
		pq.QuoteIdentifier(table),
	)
}

// CreateDatasetTableQuery - DDL таблицы с документами
func CreateDatasetTableQuery(table string) string {
	return fmt.Sprintf(`CREATE TABLE IF NOT EXISTS %s (
	name       text        NOT NULL,
	payload    jsonb       NOT NULL,
	updated_at timestamptz NOT NULL DEFAULT now()
)`, pq.QuoteIdentifier(table))
}
