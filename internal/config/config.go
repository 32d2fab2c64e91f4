package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Cache     CacheConfig
	Log       LogConfig
	Reference ReferenceConfig
	Worker    WorkerConfig
}

type ServerConfig struct {
	Host string
	Port int
	Env  string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxConns        int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

type CacheConfig struct {
	SearchCacheTTL time.Duration
}

type LogConfig struct {
	Level string
}

// ReferenceConfig - пути к справочникам, загружаются один раз при старте
type ReferenceConfig struct {
	LocationsFile string
	RatesFile     string
}

type WorkerConfig struct {
	Enabled           bool
	ConsumerGroup     string
	StreamReadTimeout time.Duration
	BatchSize         int
	InputStream       string
	OutputStream      string
	FailedStream      string
	Persist           bool
}

var defaults = map[string]interface{}{
	"API_HOST":                   "0.0.0.0",
	"API_PORT":                   8080,
	"API_ENV":                    "development",
	"DB_PORT":                    5432,
	"DB_SSLMODE":                 "disable",
	"DB_MAX_CONNS":               10,
	"DB_MAX_IDLE_CONNS":          5,
	"DB_CONN_MAX_LIFETIME":       300,
	"DB_CONN_MAX_IDLE_TIME":      60,
	"REDIS_HOST":                 "localhost",
	"REDIS_PORT":                 6379,
	"SEARCH_CACHE_TTL":           3600,
	"LOG_LEVEL":                  "info",
	"LOCATIONS_FILE":             "data/optd_por_public.csv",
	"RATES_FILE":                 "data/eurofxref.csv",
	"WORKER_ENABLED":             true,
	"WORKER_CONSUMER_GROUP":      "search-enrichment-workers",
	"WORKER_STREAM_READ_TIMEOUT": 5000,
	"WORKER_BATCH_SIZE":          20,
	"WORKER_INPUT_STREAM":        "stream:search:aggregated",
	"WORKER_OUTPUT_STREAM":       "stream:search:enriched",
	"WORKER_FAILED_STREAM":       "stream:search:failed",
	"WORKER_PERSIST":             true,
}

// Load читает .env из рабочей директории; переменные окружения имеют приоритет
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile читает конфигурацию из указанного файла. Отсутствие файла не ошибка:
// тогда используются только переменные окружения и значения по умолчанию.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Host: v.GetString("API_HOST"),
			Port: v.GetInt("API_PORT"),
			Env:  v.GetString("API_ENV"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("DB_HOST"),
			Port:            v.GetInt("DB_PORT"),
			User:            v.GetString("DB_USER"),
			Password:        v.GetString("DB_PASSWORD"),
			DBName:          v.GetString("DB_NAME"),
			SSLMode:         v.GetString("DB_SSLMODE"),
			MaxConns:        v.GetInt("DB_MAX_CONNS"),
			MaxIdleConns:    v.GetInt("DB_MAX_IDLE_CONNS"),
			ConnMaxLifetime: time.Duration(v.GetInt("DB_CONN_MAX_LIFETIME")) * time.Second,
			ConnMaxIdleTime: time.Duration(v.GetInt("DB_CONN_MAX_IDLE_TIME")) * time.Second,
		},
		Redis: RedisConfig{
			Host:     v.GetString("REDIS_HOST"),
			Port:     v.GetInt("REDIS_PORT"),
			Password: v.GetString("REDIS_PASSWORD"),
			DB:       v.GetInt("REDIS_DB"),
		},
		Cache: CacheConfig{
			SearchCacheTTL: time.Duration(v.GetInt("SEARCH_CACHE_TTL")) * time.Second,
		},
		Log: LogConfig{
			Level: v.GetString("LOG_LEVEL"),
		},
		Reference: ReferenceConfig{
			LocationsFile: v.GetString("LOCATIONS_FILE"),
			RatesFile:     v.GetString("RATES_FILE"),
		},
		Worker: WorkerConfig{
			Enabled:           v.GetBool("WORKER_ENABLED"),
			ConsumerGroup:     v.GetString("WORKER_CONSUMER_GROUP"),
			StreamReadTimeout: time.Duration(v.GetInt("WORKER_STREAM_READ_TIMEOUT")) * time.Millisecond,
			BatchSize:         v.GetInt("WORKER_BATCH_SIZE"),
			InputStream:       v.GetString("WORKER_INPUT_STREAM"),
			OutputStream:      v.GetString("WORKER_OUTPUT_STREAM"),
			FailedStream:      v.GetString("WORKER_FAILED_STREAM"),
			Persist:           v.GetBool("WORKER_PERSIST"),
		},
	}

	if cfg.Worker.BatchSize <= 0 {
		cfg.Worker.BatchSize = 20
	}

	return cfg, nil
}

func (c *Config) GetServerAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// HasDatabase - задан ли Postgres; без него поиски только кешируются
func (c *Config) HasDatabase() bool {
	return c.Database.Host != "" && c.Database.DBName != ""
}

func (c *Config) GetDatabaseDSN() string {
	return c.Database.DSN()
}

func (c *Config) GetRedisAddr() string {
	return c.Redis.Addr()
}

// DSN - строка подключения в формате key=value для pgx и lib/pq
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host,
		c.Port,
		c.User,
		c.Password,
		c.DBName,
		c.SSLMode,
	)
}

func (c *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}
