package usecase_test

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/cellmap-service/internal/choropleth"
	"github.com/cellmap-service/internal/domain"
)

const sampleDataset = `{
  "SAN_FRANCISCO": {
    "center": [37.75, -122.45],
    "cells": [
      {
        "token": "80858094",
        "vertices": [[37.70, -122.50], [37.70, -122.49], [37.71, -122.49], [37.71, -122.50]],
        "metrics": {"police_reported": 10},
        "hpms_vehicle_miles_traveled": 1500,
        "waymo_ro_miles": 300
      },
      {
        "token": "80858095",
        "vertices": [[37.80, -122.40], [37.80, -122.39], [37.81, -122.39], [37.81, -122.40]],
        "metrics": {"police_reported": 20, "airbag": 2},
        "hpms_vehicle_miles_traveled": 2500000,
        "waymo_ro_miles": null
      }
    ]
  },
  "PHOENIX": {
    "cells": [
      {
        "token": "872b0c",
        "vertices": [[33.40, -112.10], [33.40, -112.00], [33.50, -112.00]],
        "metrics": {"police_reported": 5}
      }
    ]
  },
  "BOSTON": {"cells": []}
}`

// stubSource - источник датасета в памяти
type stubSource struct {
	mu    sync.Mutex
	data  []byte
	err   error
	calls int
}

func (s *stubSource) Load(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.data, nil
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) set(data string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = []byte(data)
	s.err = err
}

func (s *stubSource) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

var errSourceDown = errors.New("connection refused")

// MockCacheRepository is a mock of CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}

func (m *MockCacheRepository) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCacheRepository) GetView(ctx context.Context, version string, sel domain.Selection, fit bool) ([]byte, error) {
	args := m.Called(ctx, version, sel, fit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockCacheRepository) SetView(ctx context.Context, version string, sel domain.Selection, fit bool, data []byte, ttl time.Duration) error {
	args := m.Called(ctx, version, sel, fit, data, ttl)
	return args.Error(0)
}

// recordingSink запоминает все вызовы, polygons отражает текущее содержимое слоя
type recordingSink struct {
	ops      []string
	polygons []choropleth.CellView
	fits     []choropleth.Viewport
	legend   choropleth.Legend
	summary  string
	errors   []string
}

func (s *recordingSink) ClearPolygons() {
	s.ops = append(s.ops, "clear")
	s.polygons = nil
}

func (s *recordingSink) AddPolygon(cell choropleth.CellView) {
	s.ops = append(s.ops, "add")
	s.polygons = append(s.polygons, cell)
}

func (s *recordingSink) FitBounds(vp choropleth.Viewport) {
	s.ops = append(s.ops, "fit")
	s.fits = append(s.fits, vp)
}

func (s *recordingSink) SetLegend(legend choropleth.Legend) {
	s.ops = append(s.ops, "legend")
	s.legend = legend
}

func (s *recordingSink) SetSummary(summary string) {
	s.ops = append(s.ops, "summary")
	s.summary = summary
}

func (s *recordingSink) ShowError(message string) {
	s.ops = append(s.ops, "error")
	s.errors = append(s.errors, message)
}
