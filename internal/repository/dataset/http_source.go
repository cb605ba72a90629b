package dataset

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/cellmap-service/internal/domain/repository"
)

// maxDocumentSize ограничивает размер скачиваемого документа
const maxDocumentSize = 256 << 20

type httpSource struct {
	httpClient *http.Client
	url        string
	maxSize    int64
	logger     *zap.Logger
}

// NewHTTPSource - источник, скачивающий cells.json по URL
func NewHTTPSource(url string, timeout time.Duration, logger *zap.Logger) repository.DatasetSource {
	return &httpSource{
		httpClient: &http.Client{Timeout: timeout},
		url:        url,
		maxSize:    maxDocumentSize,
		logger:     logger,
	}
}

func (s *httpSource) Name() string {
	return "http:" + s.url
}

func (s *httpSource) Load(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		s.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		s.logger.Error("Failed to execute request", zap.String("url", s.url), zap.Error(err))
		return nil, fmt.Errorf("failed to load %s: %w", s.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		s.logger.Error("Dataset request returned error",
			zap.String("url", s.url),
			zap.Int("status_code", resp.StatusCode))
		return nil, fmt.Errorf("failed to load %s: %s", s.url, statusText(resp))
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, s.maxSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", s.url, err)
	}
	if int64(len(data)) > s.maxSize {
		s.logger.Error("Dataset document too large", zap.String("url", s.url), zap.Int64("limit", s.maxSize))
		return nil, fmt.Errorf("failed to load %s: document exceeds %d bytes", s.url, s.maxSize)
	}

	s.logger.Debug("Dataset downloaded", zap.String("url", s.url), zap.Int("bytes", len(data)))
	return data, nil
}

func statusText(resp *http.Response) string {
	if text := http.StatusText(resp.StatusCode); text != "" {
		return text
	}
	return resp.Status
}
