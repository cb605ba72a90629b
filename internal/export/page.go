// Package export - страница карты на Leaflet: живая страница API или самодостаточный HTML с готовым видом
package export

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"io"

	"github.com/cellmap-service/internal/choropleth"
	"github.com/cellmap-service/internal/domain"
)

//go:embed templates/map.html
var templates embed.FS

var pageTemplate = template.Must(template.ParseFS(templates, "templates/map.html"))

// MapOptions - настройки тайлового слоя
type MapOptions struct {
	TileURL     string
	Attribution string
	MinZoom     int
	MaxZoom     int
}

type Option struct {
	Value    string
	Label    string
	Selected bool
}

// Snapshot - готовое представление, встраиваемое в статическую страницу
type Snapshot struct {
	Cells    []choropleth.CellView `json:"cells"`
	Viewport *choropleth.Viewport  `json:"viewport,omitempty"`
	Legend   choropleth.Legend     `json:"legend"`
	Summary  string                `json:"summary"`
	Error    string                `json:"error,omitempty"`
}

// Page - данные шаблона страницы
type Page struct {
	Title     string
	APIBase   string
	Map       MapOptions
	Locations []Option
	Metrics   []Option
	Selection domain.Selection
	// Snapshot задан для статической страницы или при ошибке загрузки
	Snapshot *Snapshot
}

// NewPage - каркас страницы с начальными заголовком и легендой, available - локации из датасета
func NewPage(title string, opts MapOptions, available []domain.Location, sel domain.Selection) *Page {
	locations := make([]Option, 0, len(available))
	for _, loc := range available {
		locations = append(locations, Option{
			Value:    loc.String(),
			Label:    loc.OptionLabel(),
			Selected: loc == sel.Location,
		})
	}

	metrics := make([]Option, 0, len(domain.AllMetrics()))
	for _, m := range domain.AllMetrics() {
		metrics = append(metrics, Option{
			Value:    m.String(),
			Label:    m.Label(),
			Selected: m == sel.Metric,
		})
	}

	return &Page{
		Title:     title,
		Map:       opts,
		Locations: locations,
		Metrics:   metrics,
		Selection: sel,
	}
}

// Static - страница несёт свой вид и не ходит в API
func (p *Page) Static() bool {
	return p.Snapshot != nil
}

func (p *Page) Summary() string {
	if p.Snapshot != nil && p.Snapshot.Summary != "" {
		return p.Snapshot.Summary
	}
	return choropleth.Summary(p.Selection)
}

func (p *Page) Legend() choropleth.Legend {
	if p.Snapshot != nil && p.Snapshot.Error == "" {
		return p.Snapshot.Legend
	}
	return choropleth.LegendFor(0)
}

type pageConfig struct {
	APIBase     string           `json:"apiBase"`
	TileURL     string           `json:"tileURL"`
	Attribution string           `json:"attribution"`
	MinZoom     int              `json:"minZoom"`
	MaxZoom     int              `json:"maxZoom"`
	Selection   domain.Selection `json:"selection"`
	Snapshot    *Snapshot        `json:"snapshot,omitempty"`
}

// ConfigJS - конфигурация для скрипта страницы, encoding/json экранирует <, > и &
func (p *Page) ConfigJS() (template.JS, error) {
	data, err := json.Marshal(pageConfig{
		APIBase:     p.APIBase,
		TileURL:     p.Map.TileURL,
		Attribution: p.Map.Attribution,
		MinZoom:     p.Map.MinZoom,
		MaxZoom:     p.Map.MaxZoom,
		Selection:   p.Selection,
		Snapshot:    p.Snapshot,
	})
	if err != nil {
		return "", err
	}
	return template.JS(data), nil
}

// Render - записать HTML страницы в w
func Render(w io.Writer, page *Page) error {
	if err := pageTemplate.Execute(w, page); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return nil
}
