package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/Freeeeeet/schedule_cli/internal/repository"
)

type Config struct {
	ScheduleFile string `mapstructure:"SCHEDULE_FILE"`
	Environment  string `mapstructure:"ENV"`
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err == nil {
		log.Println("✅ Loaded configuration from .env file")
	}

	// Читаем напрямую из переменных окружения (после godotenv.Load они там)
	cfg := &Config{
		ScheduleFile: os.Getenv("SCHEDULE_FILE"),
		Environment:  os.Getenv("ENV"),
	}

	// Устанавливаем дефолтные значения
	if cfg.ScheduleFile == "" {
		cfg.ScheduleFile = repository.DefaultScheduleFile
	}

	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	return cfg, nil
}
