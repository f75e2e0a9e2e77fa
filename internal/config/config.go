// Package config содержит функции для загрузки конфигурации приложения
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/hazadus/go-pulse/internal/library"
	"github.com/hazadus/go-pulse/internal/streaming"
	"github.com/hazadus/go-pulse/internal/theme"
	"github.com/hazadus/go-pulse/internal/visualizer"
)

// Значения по умолчанию
const (
	DefaultPath     = "~/.pulse"
	defaultMusicDir = "~/Music"
	defaultFPS      = 30
	defaultHeight   = 8
)

// VisualizerConfig настройки визуализатора волны
type VisualizerConfig struct {
	Samples int `yaml:"samples"` // Количество отсчетов на кадр
	FPS     int `yaml:"fps"`     // Частота перерисовки
	Height  int `yaml:"height"`  // Высота области в строках
}

// Config структура для хранения конфигурации приложения
type Config struct {
	AwsBucketName string                 `yaml:"aws_bucket_name"`
	AwsAccessKey  string                 `yaml:"aws_access_key"`
	AwsSecretKey  string                 `yaml:"aws_secret_key"`
	AwsRegion     string                 `yaml:"aws_region"`
	AwsEndpoint   string                 `yaml:"aws_endpoint"`
	MusicDir      string                 `yaml:"music_dir"`
	Themes        []theme.Theme          `yaml:"themes"`
	Playlists     []library.PlaylistSpec `yaml:"playlists"`
	Visualizer    VisualizerConfig       `yaml:"visualizer"`
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// LoadConfig загружает конфигурацию приложения из указанного файла.
// Если файла нет, используются значения по умолчанию.
func LoadConfig(filePath string) (*Config, error) {
	path, err := ExpandPath(filePath)
	if err != nil {
		return nil, err
	}

	config := &Config{}
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// Работаем без файла конфигурации
	case err != nil:
		return nil, fmt.Errorf("ошибка чтения конфигурации: %w", err)
	default:
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("ошибка разбора конфигурации: %w", err)
		}
	}

	config.applyEnv()
	config.applyDefaults()

	// Раскрываем тильду в путях
	if config.MusicDir, err = ExpandPath(config.MusicDir); err != nil {
		return nil, err
	}
	for i := range config.Playlists {
		for j, song := range config.Playlists[i].Songs {
			if song.File == "" || streaming.IsURL(song.File) {
				continue
			}
			if config.Playlists[i].Songs[j].File, err = ExpandPath(song.File); err != nil {
				return nil, err
			}
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// applyEnv переопределяет секреты из переменных окружения
func (c *Config) applyEnv() {
	if v := os.Getenv("PULSE_AWS_BUCKET_NAME"); v != "" {
		c.AwsBucketName = v
	}
	if v := os.Getenv("PULSE_AWS_ACCESS_KEY"); v != "" {
		c.AwsAccessKey = v
	}
	if v := os.Getenv("PULSE_AWS_SECRET_KEY"); v != "" {
		c.AwsSecretKey = v
	}
}

// applyDefaults устанавливает значения по умолчанию, если они не заданы
func (c *Config) applyDefaults() {
	if c.MusicDir == "" {
		c.MusicDir = defaultMusicDir
	}
	if len(c.Themes) == 0 {
		c.Themes = theme.Defaults()
	}
	if c.Visualizer.Samples == 0 {
		c.Visualizer.Samples = visualizer.DefaultSamples
	}
	if c.Visualizer.FPS == 0 {
		c.Visualizer.FPS = defaultFPS
	}
	if c.Visualizer.Height == 0 {
		c.Visualizer.Height = defaultHeight
	}
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	for i, t := range c.Themes {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("тема %d: %w", i+1, err)
		}
	}
	if c.Visualizer.Samples < 0 || c.Visualizer.FPS < 0 || c.Visualizer.Height < 0 {
		return errors.New("параметры визуализатора должны быть положительными")
	}
	for i, pl := range c.Playlists {
		if strings.TrimSpace(pl.Name) == "" {
			return fmt.Errorf("плейлист %d: %w", i+1, library.ErrInvalidName)
		}
	}
	return nil
}

// HasS3 возвращает true, если заданы параметры бакета
func (c *Config) HasS3() bool {
	return c.AwsBucketName != ""
}

// ExpandPath раскрывает ведущую тильду в пути
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
