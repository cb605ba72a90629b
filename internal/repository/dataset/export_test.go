package dataset

import (
	"time"

	"go.uber.org/zap"

	"github.com/cellmap-service/internal/domain/repository"
)

// NewHTTPSourceWithLimit - http источник с уменьшенным лимитом размера документа
func NewHTTPSourceWithLimit(url string, timeout time.Duration, limit int64, logger *zap.Logger) repository.DatasetSource {
	src := NewHTTPSource(url, timeout, logger).(*httpSource)
	src.maxSize = limit
	return src
}
