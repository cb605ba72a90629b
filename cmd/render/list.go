package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cellmap-service/internal/domain"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print per-location maxima for a metric",
	RunE: func(cmd *cobra.Command, _ []string) error {
		metric, _ := cmd.Flags().GetString("metric")
		m, err := domain.ParseMetric(metric)
		if err != nil {
			return err
		}

		viewer, closeViewer, err := newViewer()
		if err != nil {
			return err
		}
		defer closeViewer()

		maxima, err := viewer.Maxima(cmd.Context(), m)
		if err != nil {
			return err
		}

		status := viewer.Status()
		fmt.Fprintf(cmd.OutOrStdout(), "%s (version %s)\n", m.Label(), status.Version)

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "LOCATION\tCELLS\tMAX")
		for _, lm := range maxima {
			fmt.Fprintf(w, "%s\t%d\t%s\n", lm.Location.Label(), status.CellsByLocation[lm.Location.String()], lm.Formatted)
		}
		return w.Flush()
	},
}

var geojsonCmd = &cobra.Command{
	Use:   "geojson",
	Short: "Export the cells of a location as a GeoJSON FeatureCollection",
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

		data, err := viewer.GeoJSON(cmd.Context(), domain.Selection{Location: loc, Metric: m})
		if err != nil {
			return err
		}

		if output == "" || output == "-" {
			_, err = cmd.OutOrStdout().Write(append(data, '\n'))
			return err
		}
		if err := os.WriteFile(output, data, 0644); err != nil {
			return fmt.Errorf("write %s: %w", output, err)
		}
		cmd.Printf("GeoJSON saved to %s\n", output)
		return nil
	},
}

func init() {
	listCmd.Flags().StringP("metric", "m", domain.DefaultMetric.String(), "Metric id")
	rootCmd.AddCommand(listCmd)

	geojsonCmd.Flags().StringP("location", "l", domain.DefaultLocation.String(), "Location id")
	geojsonCmd.Flags().StringP("metric", "m", domain.DefaultMetric.String(), "Metric id")
	geojsonCmd.Flags().StringP("output", "o", "-", "Output file, - for stdout")
	rootCmd.AddCommand(geojsonCmd)
}
