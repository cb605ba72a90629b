package cache

import (
	"context"
	"time"

	"github.com/cellmap-service/internal/domain"
	"github.com/cellmap-service/internal/domain/repository"
)

// nopRepository используется, когда Redis выключен: всегда промах
type nopRepository struct{}

func NewNopRepository() repository.CacheRepository {
	return nopRepository{}
}

func (nopRepository) Get(context.Context, string) ([]byte, error)              { return nil, nil }
func (nopRepository) Set(context.Context, string, []byte, time.Duration) error { return nil }
func (nopRepository) Delete(context.Context, string) error                     { return nil }
func (nopRepository) GetView(context.Context, string, domain.Selection, bool) ([]byte, error) {
	return nil, nil
}
func (nopRepository) SetView(context.Context, string, domain.Selection, bool, []byte, time.Duration) error {
	return nil
}
