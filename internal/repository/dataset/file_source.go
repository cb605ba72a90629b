package dataset

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/cellmap-service/internal/domain/repository"
)

type fileSource struct {
	path   string
	logger *zap.Logger
}

// NewFileSource - источник, читающий cells.json с диска
func NewFileSource(path string, logger *zap.Logger) repository.DatasetSource {
	return &fileSource{path: path, logger: logger}
}

func (s *fileSource) Name() string {
	return "file:" + s.path
}

func (s *fileSource) Load(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		s.logger.Error("Failed to read dataset file", zap.String("path", s.path), zap.Error(err))
		return nil, fmt.Errorf("failed to load %s: %w", s.path, err)
	}

	s.logger.Debug("Dataset file read", zap.String("path", s.path), zap.Int("bytes", len(data)))
	return data, nil
}
