package usecase

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/cellmap-service/internal/choropleth"
	"github.com/cellmap-service/internal/domain"
)

// MapSink - то, во что отрисовывается представление: виджет карты и окружающая его страница
type MapSink interface {
	ClearPolygons()
	AddPolygon(cell choropleth.CellView)
	FitBounds(vp choropleth.Viewport)
	SetLegend(legend choropleth.Legend)
	SetSummary(summary string)
	ShowError(message string)
}

// Session - один пользователь и одна карта. События обрабатываются строго по очереди.
type Session struct {
	mu     sync.Mutex
	viewer *ViewerUseCase
	sink   MapSink
	logger *zap.Logger

	state choropleth.State
	ready bool
}

func NewSession(viewer *ViewerUseCase, sink MapSink, logger *zap.Logger) *Session {
	return &Session{
		viewer: viewer,
		sink:   sink,
		logger: logger,
		state:  choropleth.State{Selection: domain.DefaultSelection()},
	}
}

// Bootstrap показывает начальный заголовок и легенду, загружает датасет и
// рисует выбор по умолчанию с подгонкой карты. Ошибка загрузки выводится в sink.
func (s *Session) Bootstrap(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sink.SetSummary(choropleth.Summary(s.state.Selection))
	s.sink.SetLegend(choropleth.LegendFor(0))

	state, err := s.viewer.State(ctx)
	if err != nil {
		s.logger.Error("Session bootstrap failed", zap.Error(err))
		s.sink.ShowError(err.Error())
		return err
	}

	s.state = state.WithSelection(s.state.Selection)
	s.ready = true
	s.render(true)
	return nil
}

// SelectLocation переключает локацию и подгоняет карту под нее
func (s *Session) SelectLocation(loc domain.Location) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Selection.Location = loc
	if s.ready {
		s.render(true)
	}
}

// SelectMetric переключает метрику, вид карты не меняется
func (s *Session) SelectMetric(m domain.Metric) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Selection.Metric = m
	if s.ready {
		s.render(false)
	}
}

// Render перерисовывает текущий выбор
func (s *Session) Render(fitView bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.ready {
		s.render(fitView)
	}
}

func (s *Session) Selection() domain.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Selection
}

func (s *Session) render(fitView bool) {
	view := choropleth.Compute(s.state, fitView)
	if view == nil {
		s.logger.Debug("Location not in dataset, nothing to render",
			zap.String("location", s.state.Selection.Location.String()))
		return
	}

	s.sink.ClearPolygons()
	for _, cell := range view.Cells {
		s.sink.AddPolygon(cell)
	}
	if view.Viewport != nil {
		s.sink.FitBounds(*view.Viewport)
	}
	s.sink.SetSummary(view.Summary)
	s.sink.SetLegend(view.Legend)
}
