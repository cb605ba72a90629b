package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DatasetSourceFile     = "file"
	DatasetSourceHTTP     = "http"
	DatasetSourcePostgres = "postgres"
)

type Config struct {
	Server   ServerConfig
	Dataset  DatasetConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Cache    CacheConfig
	Map      MapConfig
	Log      LogConfig
	Worker   WorkerConfig
}

type ServerConfig struct {
	Host        string
	Port        int
	Env         string
	CORSOrigins string
}

type DatasetConfig struct {
	Source      string
	Path        string
	URL         string
	LoadTimeout time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	Table           string
	DatasetName     string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	ViewCacheTTL time.Duration
}

type MapConfig struct {
	TileURL     string
	Attribution string
	MinZoom     int
	MaxZoom     int
}

type LogConfig struct {
	Level string
}

type WorkerConfig struct {
	ReloadEnabled  bool
	ReloadInterval time.Duration
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("API_HOST", "0.0.0.0")
	v.SetDefault("API_PORT", 8080)
	v.SetDefault("API_ENV", "development")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")

	v.SetDefault("DATASET_SOURCE", DatasetSourceFile)
	v.SetDefault("DATASET_PATH", "./webapp/cells.json")
	v.SetDefault("DATASET_LOAD_TIMEOUT", 30)

	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_DATASET_TABLE", "cell_datasets")
	v.SetDefault("DB_DATASET_NAME", "default")
	v.SetDefault("DB_MAX_CONNS", 5)
	v.SetDefault("DB_MAX_IDLE_CONNS", 2)
	v.SetDefault("DB_CONN_MAX_LIFETIME", 300)

	v.SetDefault("REDIS_ENABLED", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)

	v.SetDefault("VIEW_CACHE_TTL", 3600)

	v.SetDefault("MAP_TILE_URL", "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png")
	v.SetDefault("MAP_ATTRIBUTION", `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`)
	v.SetDefault("MAP_MIN_ZOOM", 5)
	v.SetDefault("MAP_MAX_ZOOM", 19)

	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("WORKER_RELOAD_ENABLED", false)
	v.SetDefault("WORKER_RELOAD_INTERVAL", 300)
}

// Load читает .env (если он есть) и переменные окружения
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile - то же, что Load, но с явным путём к env-файлу. Отсутствующий файл не ошибка.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("env")
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:        v.GetString("API_HOST"),
			Port:        v.GetInt("API_PORT"),
			Env:         v.GetString("API_ENV"),
			CORSOrigins: v.GetString("CORS_ORIGINS"),
		},
		Dataset: DatasetConfig{
			Source:      strings.ToLower(strings.TrimSpace(v.GetString("DATASET_SOURCE"))),
			Path:        v.GetString("DATASET_PATH"),
			URL:         v.GetString("DATASET_URL"),
			LoadTimeout: time.Duration(v.GetInt("DATASET_LOAD_TIMEOUT")) * time.Second,
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			Table:           v.GetString("DB_DATASET_TABLE"),
			DatasetName:     v.GetString("DB_DATASET_NAME"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
		},
		Redis: RedisConfig{
			Enabled:  v.GetBool("REDIS_ENABLED"),
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			ViewCacheTTL: time.Duration(v.GetInt("VIEW_CACHE_TTL")) * time.Second,
		},
		Map: MapConfig{
			TileURL:     v.GetString("MAP_TILE_URL"),
			Attribution: v.GetString("MAP_ATTRIBUTION"),
			MinZoom:     v.GetInt("MAP_MIN_ZOOM"),
			MaxZoom:     v.GetInt("MAP_MAX_ZOOM"),
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Worker: WorkerConfig{
			ReloadEnabled:  v.GetBool("WORKER_RELOAD_ENABLED"),
			ReloadInterval: time.Duration(v.GetInt("WORKER_RELOAD_INTERVAL")) * time.Second,
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Dataset.Source {
	case DatasetSourceFile:
		if c.Dataset.Path == "" {
			return fmt.Errorf("DATASET_PATH is required for source %q", c.Dataset.Source)
		}
	case DatasetSourceHTTP:
		if c.Dataset.URL == "" {
			return fmt.Errorf("DATASET_URL is required for source %q", c.Dataset.Source)
		}
	case DatasetSourcePostgres:
		if c.Database.Host == "" || c.Database.DBName == "" {
			return fmt.Errorf("DB_HOST and DB_NAME are required for source %q", c.Dataset.Source)
		}
	default:
		return fmt.Errorf("unknown DATASET_SOURCE %q", c.Dataset.Source)
	}

	if c.Worker.ReloadEnabled && c.Worker.ReloadInterval <= 0 {
		return fmt.Errorf("WORKER_RELOAD_INTERVAL must be positive")
	}

	return nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.DBName,
		c.Database.SSLMode,
	)
}

func (c *Config) GetRedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Redis.Host, c.Redis.Port)
}
