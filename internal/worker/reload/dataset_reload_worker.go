package reload

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/cellmap-service/internal/worker"
)

// Reloader перечитывает датасет, true - если опубликована новая версия
type Reloader interface {
	Reload(ctx context.Context) (bool, error)
}

// DatasetReloadWorker периодически перечитывает источник датасета.
// Ошибки не останавливают воркер: остается последняя удачная версия.
type DatasetReloadWorker struct {
	*worker.BaseWorker
	reloader Reloader
	interval time.Duration
}

// NewDatasetReloadWorker создает воркер перезагрузки датасета
func NewDatasetReloadWorker(reloader Reloader, interval time.Duration, logger *zap.Logger) *DatasetReloadWorker {
	return &DatasetReloadWorker{
		BaseWorker: worker.NewBaseWorker("dataset-reload", logger),
		reloader:   reloader,
		interval:   interval,
	}
}

// Start блокируется до отмены контекста или Stop
func (w *DatasetReloadWorker) Start(ctx context.Context) error {
	log := w.Logger()
	log.Info("Dataset reload worker started", zap.Duration("interval", w.interval))

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info("Dataset reload worker context cancelled")
			return nil
		case <-w.StopChan():
			log.Info("Dataset reload worker stopped")
			return nil
		case <-ticker.C:
			w.tick(ctx)
		}
	}
}

func (w *DatasetReloadWorker) tick(ctx context.Context) {
	changed, err := w.reloader.Reload(ctx)
	if err != nil {
		w.Logger().Warn("Dataset reload failed, keeping current version", zap.Error(err))
		return
	}
	if changed {
		w.Logger().Info("Dataset reloaded")
	}
}
