package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cellmap-service/internal/domain"
	"github.com/cellmap-service/internal/export"
	"github.com/cellmap-service/internal/usecase"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write a static HTML map for one location and metric",
	RunE: func(cmd *cobra.Command, _ []string) error {
		location, _ := cmd.Flags().GetString("location")
		metric, _ := cmd.Flags().GetString("metric")
		output, _ := cmd.Flags().GetString("output")

		loc, err := domain.ParseLocation(location)
		if err != nil {
			return err
		}
		m, err := domain.ParseMetric(metric)
		if err != nil {
			return err
		}

		viewer, closeViewer, err := newViewer()
		if err != nil {
			return err
		}
		defer closeViewer()

		sink := export.NewPageSink()
		session := usecase.NewSession(viewer, sink, log)

		// Ошибка загрузки все равно записывается в страницу
		loadErr := session.Bootstrap(cmd.Context())
		if loadErr == nil {
			if loc != domain.DefaultLocation {
				session.SelectLocation(loc)
			}
			if m != domain.DefaultMetric {
				session.SelectMetric(m)
			}
		}

		var available []domain.Location
		if state, err := viewer.State(cmd.Context()); err == nil {
			available = state.Dataset.AvailableLocations()
			if _, ok := state.Dataset.Payload(loc); !ok {
				return fmt.Errorf("location %s is not in the dataset", loc)
			}
		}

		page := export.NewPage(pageTitle, mapOptions(), available, session.Selection())
		if err := sink.WriteFile(output, page); err != nil {
			return err
		}

		if loadErr != nil {
			return fmt.Errorf("map written to %s with error: %w", output, loadErr)
		}
		cmd.Printf("Map saved to %s\n", output)
		return nil
	},
}

const pageTitle = "Waymo safety cells"

func mapOptions() export.MapOptions {
	return export.MapOptions{
		TileURL:     cfg.Map.TileURL,
		Attribution: cfg.Map.Attribution,
		MinZoom:     cfg.Map.MinZoom,
		MaxZoom:     cfg.Map.MaxZoom,
	}
}

func init() {
	renderCmd.Flags().StringP("location", "l", domain.DefaultLocation.String(), "Location id")
	renderCmd.Flags().StringP("metric", "m", domain.DefaultMetric.String(), "Metric id")
	renderCmd.Flags().StringP("output", "o", "map.html", "Output HTML file path")
	rootCmd.AddCommand(renderCmd)
}
