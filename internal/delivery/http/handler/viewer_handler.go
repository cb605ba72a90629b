package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/cellmap-service/internal/domain"
	"github.com/cellmap-service/internal/pkg/errors"
	"github.com/cellmap-service/internal/pkg/utils"
	"github.com/cellmap-service/internal/pkg/validator"
	"github.com/cellmap-service/internal/usecase"
	"github.com/cellmap-service/internal/usecase/dto"
)

// ViewerHandler обрабатывает запросы к данным карты
type ViewerHandler struct {
	viewerUC *usecase.ViewerUseCase
	logger   *zap.Logger
}

// NewViewerHandler создает новый экземпляр ViewerHandler
func NewViewerHandler(viewerUC *usecase.ViewerUseCase, logger *zap.Logger) *ViewerHandler {
	return &ViewerHandler{
		viewerUC: viewerUC,
		logger:   logger,
	}
}

// GetLocations godoc
// @Summary List locations
// @Description Локации, присутствующие в датасете, в порядке отображения
// @Tags Viewer
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.LocationResponse}
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/locations [get]
func (h *ViewerHandler) GetLocations(c *fiber.Ctx) error {
	locations, err := h.viewerUC.Locations(c.Context())
	if err != nil {
		h.logger.Error("Failed to list locations", zap.Error(err))
		return utils.SendError(c, toAppError(err))
	}

	return utils.SendSuccess(c, locations, &utils.Meta{
		Total: len(locations),
	})
}

// GetMetrics godoc
// @Summary List metrics
// @Description Все метрики с подписями
// @Tags Viewer
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.MetricResponse}
// @Router /api/v1/metrics [get]
func (h *ViewerHandler) GetMetrics(c *fiber.Ctx) error {
	metrics := h.viewerUC.Metrics()
	return utils.SendSuccess(c, metrics, &utils.Meta{
		Total: len(metrics),
	})
}

// GetView godoc
// @Summary Compute map view
// @Description Полигоны со стилями и попапами, легенда, заголовок и (при fit=true) границы карты
// @Tags Viewer
// @Produce json
// @Param location query string false "Location id" default(SAN_FRANCISCO)
// @Param metric query string false "Metric id" default(police_reported)
// @Param fit query bool false "Include viewport"
// @Success 200 {object} utils.SuccessResponse{data=choropleth.View}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/view [get]
func (h *ViewerHandler) GetView(c *fiber.Ctx) error {
	start := time.Now()

	var req dto.ViewRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithReason(err.Error()))
	}

	sel, err := selectionOf(req.Location, req.Metric)
	if err != nil {
		return utils.SendError(c, err)
	}

	data, cached, err := h.viewerUC.View(c.Context(), sel, req.Fit)
	if err != nil {
		h.logger.Debug("View request failed",
			zap.String("location", sel.Location.String()),
			zap.String("metric", sel.Metric.String()),
			zap.Error(err),
		)
		return utils.SendError(c, toAppError(err))
	}

	return utils.SendSuccess(c, data, &utils.Meta{
		Version:  h.viewerUC.Status().Version,
		Cached:   cached,
		TimeMSec: float64(time.Since(start).Microseconds()) / 1000,
	})
}

// GetCellsGeoJSON godoc
// @Summary Export location cells as GeoJSON
// @Description FeatureCollection ячеек локации, стиль и HTML попапа в properties
// @Tags Viewer
// @Produce json
// @Param location path string true "Location id"
// @Param metric query string false "Metric id" default(police_reported)
// @Success 200 {object} map[string]interface{} "GeoJSON FeatureCollection"
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/cells/{location}.geojson [get]
func (h *ViewerHandler) GetCellsGeoJSON(c *fiber.Ctx) error {
	req := dto.GeoJSONRequest{
		Location: c.Params("location"),
		Metric:   c.Query("metric"),
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, validationError(err, req.Location, req.Metric))
	}

	sel, err := selectionOf(req.Location, req.Metric)
	if err != nil {
		return utils.SendError(c, err)
	}

	data, err := h.viewerUC.GeoJSON(c.Context(), sel)
	if err != nil {
		return utils.SendError(c, toAppError(err))
	}

	c.Set(fiber.HeaderContentType, "application/geo+json")
	return c.Send(data)
}

// GetDatasetStatus godoc
// @Summary Dataset load status
// @Description Источник, версия и количество ячеек загруженного датасета или причина ошибки загрузки
// @Tags Viewer
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.DatasetStatusResponse}
// @Router /api/v1/dataset/status [get]
func (h *ViewerHandler) GetDatasetStatus(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.viewerUC.Status(), nil)
}

// selectionOf разбирает идентификаторы из запроса, пустые значения - выбор по умолчанию
func selectionOf(location, metric string) (domain.Selection, error) {
	req := dto.ViewRequest{Location: location, Metric: metric}
	if err := validator.Validate(&req); err != nil {
		return domain.Selection{}, validationError(err, location, metric)
	}

	sel := domain.DefaultSelection()
	if location != "" {
		sel.Location, _ = domain.ParseLocation(location)
	}
	if metric != "" {
		sel.Metric, _ = domain.ParseMetric(metric)
	}
	return sel, nil
}
