package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cellmap-service/internal/config"
	"github.com/cellmap-service/internal/domain/repository"
	"github.com/cellmap-service/internal/pkg/logger"
	"github.com/cellmap-service/internal/repository/cache"
	"github.com/cellmap-service/internal/repository/dataset"
	"github.com/cellmap-service/internal/usecase"
)

var (
	cfg *config.Config
	log *zap.Logger

	envFile     string
	datasetPath string
)

var rootCmd = &cobra.Command{
	Use:   "cellmap",
	Short: "Render S2 cell choropleth maps",
	Long: `cellmap loads a cells.json dataset from the configured source and renders
a choropleth for one location and metric as a self-contained HTML page.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.LoadFile(envFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if datasetPath != "" {
			c.Dataset.Source = config.DatasetSourceFile
			c.Dataset.Path = datasetPath
		}
		cfg = c

		l, err := logger.New(cfg.Log.Level)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		log = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "Env file with configuration")
	rootCmd.PersistentFlags().StringVar(&datasetPath, "dataset", "", "Read cells.json from this path instead of DATASET_SOURCE")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newViewer собирает ViewerUseCase без кеша. Вызывающий обязан вызвать close.
func newViewer() (*usecase.ViewerUseCase, func(), error) {
	source, closeSource, err := dataset.NewSource(cfg, log)
	if err != nil {
		return nil, nil, err
	}

	var cacheRepo repository.CacheRepository = cache.NewNopRepository()
	viewer := usecase.NewViewerUseCase(source, cacheRepo, cfg.Dataset.LoadTimeout, 0, log)

	closeFn := func() {
		if err := closeSource(); err != nil {
			log.Warn("Failed to close dataset source", zap.Error(err))
		}
	}
	return viewer, closeFn, nil
}
