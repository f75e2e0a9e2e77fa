package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/hazadus/go-pulse/internal/config"
	"github.com/hazadus/go-pulse/internal/library"
	"github.com/hazadus/go-pulse/internal/s3"
	"github.com/hazadus/go-pulse/internal/track"
)

// Application хранит состояние приложения, общее для всех команд
type Application struct {
	Config  *config.Config
	Library *library.Library
	Manager *track.Manager
}

// NewApplication создает приложение с демонстрационными и настроенными плейлистами
func NewApplication(cfg *config.Config) *Application {
	lib := library.NewDefault()
	lib.Preload(cfg.Playlists)

	return &Application{
		Config:  cfg,
		Library: lib,
		Manager: track.NewManager(lib),
	}
}

// loadConfig загружает конфигурацию и пересобирает библиотеку
func (app *Application) loadConfig(path string) error {
	cfg, err := config.LoadConfig(path)
	if err != nil {
		return fmt.Errorf("ошибка загрузки конфигурации: %w", err)
	}
	*app = *NewApplication(cfg)
	return nil
}

// newUploader создает клиент бакета из конфигурации
func (app *Application) newUploader() (*s3.Uploader, error) {
	if !app.Config.HasS3() {
		return nil, fmt.Errorf("бакет S3 не настроен: укажите aws_bucket_name в конфигурации")
	}

	uploader, err := s3.NewUploader(&s3.Config{
		Region:     app.Config.AwsRegion,
		AccessKey:  app.Config.AwsAccessKey,
		SecretKey:  app.Config.AwsSecretKey,
		Endpoint:   app.Config.AwsEndpoint,
		BucketName: app.Config.AwsBucketName,
	})
	if err != nil {
		return nil, fmt.Errorf("ошибка создания S3 клиента: %w", err)
	}
	return uploader, nil
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	app := NewApplication(config.Default())
	if err := app.createRootCommand(ctx).ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
