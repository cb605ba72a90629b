package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/cellmap-service/internal/choropleth"
	"github.com/cellmap-service/internal/domain"
	"github.com/cellmap-service/internal/domain/repository"
	"github.com/cellmap-service/internal/usecase/dto"
)

var (
	ErrLocationNotFound = errors.New("location not found in dataset")
	errNoLocations      = errors.New("dataset has no known locations")
)

// LoadError - ошибка загрузки датасета. Показывается пользователю вместо карты.
type LoadError struct {
	Source string
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load dataset from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// snapshot - неизменяемый результат одной загрузки. Либо state, либо err.
type snapshot struct {
	state choropleth.State
	stats domain.DatasetStats
	err   error
}

// ViewerUseCase держит загруженный датасет и считает по нему представления карты
type ViewerUseCase struct {
	source      repository.DatasetSource
	cacheRepo   repository.CacheRepository
	loadTimeout time.Duration
	cacheTTL    time.Duration
	logger      *zap.Logger

	loadMu  sync.Mutex
	current atomic.Pointer[snapshot]
}

// NewViewerUseCase создает новый экземпляр ViewerUseCase
func NewViewerUseCase(
	source repository.DatasetSource,
	cacheRepo repository.CacheRepository,
	loadTimeout time.Duration,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *ViewerUseCase {
	return &ViewerUseCase{
		source:      source,
		cacheRepo:   cacheRepo,
		loadTimeout: loadTimeout,
		cacheTTL:    cacheTTL,
		logger:      logger,
	}
}

// Load читает источник и публикует новый датасет.
// При ошибке ранее загруженный датасет остается активным.
func (uc *ViewerUseCase) Load(ctx context.Context) error {
	_, err := uc.load(ctx, false)
	return err
}

// Reload перечитывает источник и заменяет датасет только если изменилась его версия
func (uc *ViewerUseCase) Reload(ctx context.Context) (bool, error) {
	return uc.load(ctx, true)
}

func (uc *ViewerUseCase) load(ctx context.Context, onlyIfChanged bool) (bool, error) {
	uc.loadMu.Lock()
	defer uc.loadMu.Unlock()

	ds, err := uc.fetch(ctx)
	if err != nil {
		if cur := uc.current.Load(); cur == nil || cur.err != nil {
			uc.current.Store(&snapshot{err: err})
		}
		return false, err
	}

	if cur := uc.current.Load(); onlyIfChanged && cur != nil && cur.err == nil &&
		cur.state.Dataset.Version == ds.Version {
		uc.logger.Debug("Dataset unchanged", zap.String("version", ds.Version))
		return false, nil
	}

	snap := &snapshot{
		state: choropleth.NewState(ds),
		stats: statsOf(ds),
	}
	uc.current.Store(snap)

	uc.logger.Info("Dataset published",
		zap.String("version", ds.Version),
		zap.Int("cells", snap.stats.TotalCells),
		zap.Int("locations", len(ds.Locations)),
	)
	return true, nil
}

func (uc *ViewerUseCase) fetch(ctx context.Context) (*domain.Dataset, error) {
	loadID := uuid.New().String()
	start := time.Now()

	if uc.loadTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.loadTimeout)
		defer cancel()
	}

	uc.logger.Info("Loading dataset", zap.String("load_id", loadID), zap.String("source", uc.source.Name()))

	raw, err := uc.source.Load(ctx)
	if err != nil {
		uc.logger.Error("Failed to load dataset", zap.String("load_id", loadID), zap.Error(err))
		return nil, &LoadError{Source: uc.source.Name(), Err: err}
	}

	ds, err := domain.ParseDataset(raw)
	if err != nil {
		uc.logger.Error("Failed to parse dataset", zap.String("load_id", loadID), zap.Error(err))
		return nil, &LoadError{Source: uc.source.Name(), Err: err}
	}

	for _, key := range ds.Skipped {
		uc.logger.Warn("Skipping unknown location", zap.String("load_id", loadID), zap.String("key", key))
	}

	if len(ds.Locations) == 0 {
		return nil, &LoadError{Source: uc.source.Name(), Err: errNoLocations}
	}

	uc.logger.Info("Dataset loaded",
		zap.String("load_id", loadID),
		zap.Int("bytes", len(raw)),
		zap.Duration("duration", time.Since(start)),
	)
	return ds, nil
}

func statsOf(ds *domain.Dataset) domain.DatasetStats {
	byLocation := make(map[string]int, len(ds.Locations))
	for loc, payload := range ds.Locations {
		byLocation[loc.String()] = len(payload.Cells)
	}
	return domain.DatasetStats{
		Version:         ds.Version,
		LoadedAt:        time.Now().UTC(),
		TotalCells:      ds.CellCount(),
		CellsByLocation: byLocation,
		Skipped:         ds.Skipped,
	}
}

// State возвращает текущее состояние. Первый вызов загружает датасет,
// ошибка загрузки повторно не пытается загрузить его заново.
func (uc *ViewerUseCase) State(ctx context.Context) (choropleth.State, error) {
	cur := uc.current.Load()
	if cur == nil {
		_ = uc.Load(ctx)
		cur = uc.current.Load()
	}
	if cur.err != nil {
		return choropleth.State{}, cur.err
	}
	return cur.state, nil
}

// ComputeView считает представление для выбора без кеша
func (uc *ViewerUseCase) ComputeView(ctx context.Context, sel domain.Selection, fit bool) (*choropleth.View, error) {
	state, err := uc.State(ctx)
	if err != nil {
		return nil, err
	}

	view := choropleth.Compute(state.WithSelection(sel), fit)
	if view == nil {
		return nil, fmt.Errorf("%s: %w", sel.Location, ErrLocationNotFound)
	}
	return view, nil
}

// View возвращает сериализованное представление, используя кеш когда возможно
func (uc *ViewerUseCase) View(ctx context.Context, sel domain.Selection, fit bool) (json.RawMessage, bool, error) {
	state, err := uc.State(ctx)
	if err != nil {
		return nil, false, err
	}
	if _, ok := state.Dataset.Payload(sel.Location); !ok {
		return nil, false, fmt.Errorf("%s: %w", sel.Location, ErrLocationNotFound)
	}
	version := state.Dataset.Version

	// 1. Проверяем кеш
	cached, err := uc.cacheRepo.GetView(ctx, version, sel, fit)
	if err == nil && cached != nil {
		uc.logger.Debug("View fetched from cache", zap.String("location", sel.Location.String()), zap.String("metric", sel.Metric.String()))
		return cached, true, nil
	}
	if err != nil {
		uc.logger.Warn("Failed to get view from cache", zap.Error(err))
	}

	// 2. Считаем
	view := choropleth.Compute(state.WithSelection(sel), fit)

	data, err := json.Marshal(view)
	if err != nil {
		return nil, false, fmt.Errorf("marshal view: %w", err)
	}

	// 3. Кешируем
	if err := uc.cacheRepo.SetView(ctx, version, sel, fit, data, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache view", zap.Error(err))
	}

	return data, false, nil
}

// Locations - локации датасета в порядке отображения
func (uc *ViewerUseCase) Locations(ctx context.Context) ([]dto.LocationResponse, error) {
	state, err := uc.State(ctx)
	if err != nil {
		return nil, err
	}

	available := state.Dataset.AvailableLocations()
	out := make([]dto.LocationResponse, 0, len(available))
	for _, loc := range available {
		payload, _ := state.Dataset.Payload(loc)
		out = append(out, dto.LocationResponse{
			ID:          loc.String(),
			Label:       loc.Label(),
			OptionLabel: loc.OptionLabel(),
			CellCount:   len(payload.Cells),
			Center:      payload.Center,
		})
	}
	return out, nil
}

// Metrics - все метрики в порядке отображения. Не зависит от датасета.
func (uc *ViewerUseCase) Metrics() []dto.MetricResponse {
	metrics := domain.AllMetrics()
	out := make([]dto.MetricResponse, 0, len(metrics))
	for _, m := range metrics {
		out = append(out, dto.MetricResponse{
			ID:      m.String(),
			Label:   m.Label(),
			Derived: !m.Direct(),
		})
	}
	return out
}

// LocationMax - максимум метрики по локации
type LocationMax struct {
	Location  domain.Location
	Max       float64
	Formatted string
}

// Maxima возвращает максимумы метрики по всем локациям датасета
func (uc *ViewerUseCase) Maxima(ctx context.Context, m domain.Metric) ([]LocationMax, error) {
	state, err := uc.State(ctx)
	if err != nil {
		return nil, err
	}

	available := state.Dataset.AvailableLocations()
	out := make([]LocationMax, 0, len(available))
	for _, loc := range available {
		maxValue := state.Index.Max(loc, m)
		out = append(out, LocationMax{
			Location:  loc,
			Max:       maxValue,
			Formatted: choropleth.LegendFor(maxValue).Max,
		})
	}
	return out, nil
}

// Status - состояние загрузки, без попытки загрузить датасет
func (uc *ViewerUseCase) Status() dto.DatasetStatusResponse {
	resp := dto.DatasetStatusResponse{Source: uc.source.Name()}

	cur := uc.current.Load()
	switch {
	case cur == nil:
	case cur.err != nil:
		resp.Error = cur.err.Error()
	default:
		loadedAt := cur.stats.LoadedAt
		resp.Loaded = true
		resp.Version = cur.stats.Version
		resp.LoadedAt = &loadedAt
		resp.TotalCells = cur.stats.TotalCells
		resp.CellsByLocation = cur.stats.CellsByLocation
		resp.Skipped = cur.stats.Skipped
	}
	return resp
}
