package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Значения по умолчанию
const (
	DefaultBaseURL   = "https://api.corpus.swecha.org"
	DefaultDBPath    = "dialect_map.db"
	DefaultImagesDir = "uploaded_images"
	DefaultTimeout   = 30 * time.Second
)

// Config содержит настройки приложения, читаемые из переменных окружения
type Config struct {
	BaseURL    string        // базовый URL удаленного corpus API
	APIKey     string        // опциональный API ключ
	DBPath     string        // путь к файлу локальной SQLite базы
	ImagesDir  string        // каталог с файлами изображений
	Timeout    time.Duration // таймаут HTTP запросов
	LogLevel   string        // уровень логирования: debug, info, warn, error
}

// Load читает конфигурацию из окружения.
// Если рядом лежит .env файл — подхватываем его, отсутствие файла не ошибка.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		BaseURL:   getenv("CORPUS_API_BASE_URL", DefaultBaseURL),
		APIKey:    getenv("CORPUS_API_KEY", ""),
		DBPath:    getenv("DIALECTMAP_DB_PATH", DefaultDBPath),
		ImagesDir: getenv("DIALECTMAP_IMAGES_DIR", DefaultImagesDir),
		Timeout:   getduration("DIALECTMAP_HTTP_TIMEOUT_SECONDS", DefaultTimeout),
		LogLevel:  getenv("DIALECTMAP_LOG_LEVEL", "info"),
	}
}

// SlogLevel переводит строковый уровень в slog.Level.
// Неизвестные значения дают info.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getduration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			return time.Duration(secs) * time.Second
		}
	}
	return def
}
