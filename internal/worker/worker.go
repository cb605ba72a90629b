package worker

import (
	"context"
)

// Worker - фоновая задача процесса API (перезагрузка датасета и т.п.)
type Worker interface {
	// Start блокируется до отмены ctx или Stop
	Start(ctx context.Context) error

	Stop() error

	// Name используется в логах WorkerManager
	Name() string
}
