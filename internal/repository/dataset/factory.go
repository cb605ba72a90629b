package dataset

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/cellmap-service/internal/config"
	"github.com/cellmap-service/internal/domain/repository"
	"github.com/cellmap-service/internal/repository/postgres"
)

// NewSource выбирает источник по DATASET_SOURCE. Возвращаемая функция
// освобождает ресурсы источника (соединение с БД), для остальных это no-op.
func NewSource(cfg *config.Config, logger *zap.Logger) (repository.DatasetSource, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Dataset.Source {
	case config.DatasetSourceFile:
		return NewFileSource(cfg.Dataset.Path, logger), noop, nil
	case config.DatasetSourceHTTP:
		return NewHTTPSource(cfg.Dataset.URL, cfg.Dataset.LoadTimeout, logger), noop, nil
	case config.DatasetSourcePostgres:
		db, err := postgres.New(cfg, logger)
		if err != nil {
			return nil, nil, err
		}
		src := postgres.NewDatasetRepository(db, cfg.Database.Table, cfg.Database.DatasetName, logger)
		return src, db.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown dataset source %q", cfg.Dataset.Source)
	}
}
