package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/cellmap-service/internal/choropleth"
	"github.com/cellmap-service/internal/domain"
	"github.com/cellmap-service/internal/export"
	"github.com/cellmap-service/internal/usecase"
)

const pageTitle = "Waymo safety cells"

// PageHandler отдает интерактивную карту
type PageHandler struct {
	viewerUC *usecase.ViewerUseCase
	mapOpts  export.MapOptions
	apiBase  string
	logger   *zap.Logger
}

// NewPageHandler - создание нового PageHandler
func NewPageHandler(viewerUC *usecase.ViewerUseCase, mapOpts export.MapOptions, apiBase string, logger *zap.Logger) *PageHandler {
	return &PageHandler{
		viewerUC: viewerUC,
		mapOpts:  mapOpts,
		apiBase:  apiBase,
		logger:   logger,
	}
}

// RenderMap - страница с картой. При ошибке загрузки датасета вместо карты выводится причина.
func (h *PageHandler) RenderMap(c *fiber.Ctx) error {
	sel := domain.DefaultSelection()

	var available []domain.Location
	var snapshot *export.Snapshot

	state, err := h.viewerUC.State(c.Context())
	if err != nil {
		h.logger.Warn("Rendering map page without dataset", zap.Error(err))
		snapshot = &export.Snapshot{Cells: []choropleth.CellView{}, Error: err.Error()}
	} else {
		available = state.Dataset.AvailableLocations()
	}

	page := export.NewPage(pageTitle, h.mapOpts, available, sel)
	page.APIBase = h.apiBase
	page.Snapshot = snapshot

	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return export.Render(c.Response().BodyWriter(), page)
}
