package repository

import "context"

// DatasetSource отдаёт сырой документ cells.json как есть
type DatasetSource interface {
	// Load читает документ целиком
	Load(ctx context.Context) ([]byte, error)

	// Name - человекочитаемое описание источника для логов
	Name() string
}
