package export

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cellmap-service/internal/choropleth"
)

// PageSink собирает то, что Session отрисовывает, и превращает это в статическую страницу
type PageSink struct {
	snapshot Snapshot
}

func NewPageSink() *PageSink {
	return &PageSink{}
}

func (s *PageSink) ClearPolygons() {
	s.snapshot.Cells = s.snapshot.Cells[:0]
}

func (s *PageSink) AddPolygon(cell choropleth.CellView) {
	s.snapshot.Cells = append(s.snapshot.Cells, cell)
}

func (s *PageSink) FitBounds(vp choropleth.Viewport) {
	s.snapshot.Viewport = &vp
}

func (s *PageSink) SetLegend(legend choropleth.Legend) {
	s.snapshot.Legend = legend
}

func (s *PageSink) SetSummary(summary string) {
	s.snapshot.Summary = summary
}

// ShowError заменяет карту сообщением об ошибке
func (s *PageSink) ShowError(message string) {
	s.snapshot.Cells = nil
	s.snapshot.Viewport = nil
	s.snapshot.Error = message
}

// Snapshot - копия уже нарисованного
func (s *PageSink) Snapshot() *Snapshot {
	snap := s.snapshot
	snap.Cells = append([]choropleth.CellView(nil), s.snapshot.Cells...)
	if snap.Cells == nil {
		snap.Cells = []choropleth.CellView{}
	}
	return &snap
}

// WriteFile - отрендерить страницу со снимком и атомарно заменить файл path
func (s *PageSink) WriteFile(path string, page *Page) error {
	page.Snapshot = s.Snapshot()

	var buf bytes.Buffer
	if err := Render(&buf, page); err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("write tmp failed: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename failed: %w", err)
	}
	return nil
}
