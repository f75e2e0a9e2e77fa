package main

import (
	"context"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/hazadus/go-pulse/internal/metadata"
	"github.com/hazadus/go-pulse/internal/upload"
	"github.com/hazadus/go-pulse/internal/utils"
)

// createPushCommand создает команду push с привязкой к экземпляру приложения
func (app *Application) createPushCommand(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "push [file path]",
		Short: "Upload an mp3 file to S3 storage",
		Long:  `Upload an mp3 file to the configured S3 bucket with progress tracking.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			// Создаем контекст с таймаутом для загрузки (10 минут)
			uploadCtx, cancel := context.WithTimeout(ctx, 10*time.Minute)
			defer cancel()
			return app.pushToS3(uploadCtx, args[0])
		},
	}
}

// pushToS3 загружает файл в S3 с отображением прогресса
func (app *Application) pushToS3(ctx context.Context, filePath string) error {
	s3Uploader, err := app.newUploader()
	if err != nil {
		return err
	}

	extractor := metadata.NewExtractor()
	pusher := upload.NewPusher(s3Uploader, extractor)

	// Получаем информацию о файле для отображения
	fileInfo, err := extractor.GetFileInfo(filePath)
	if err != nil {
		return fmt.Errorf("ошибка получения информации о файле: %w", err)
	}

	fmt.Printf("📤 Загружаем файл в S3:\n")
	fmt.Printf("   Файл: %s\n", filePath)
	fmt.Printf("   Размер: %s\n", humanize.Bytes(uint64(fileInfo.Size)))
	fmt.Printf("   Длительность: %s\n", utils.FormatDuration(fileInfo.Duration))
	fmt.Printf("   Бакет: %s\n", app.Config.AwsBucketName)
	fmt.Println()

	progressChan := make(chan int64)
	printed := make(chan struct{})

	go func() {
		defer close(printed)
		startTime := time.Now()

		for progress := range progressChan {
			if progress <= 0 || fileInfo.Size <= 0 {
				continue
			}
			elapsed := time.Since(startTime)
			percentage := float64(progress) / float64(fileInfo.Size) * 100

			speed := float64(progress) / elapsed.Seconds()

			var remainingTime time.Duration
			if speed > 0 {
				remainingTime = time.Duration(float64(fileInfo.Size-progress)/speed) * time.Second
			}

			fmt.Printf("\r📊 Прогресс: %.1f%% | Скорость: %s/s | Прошло: %s | Осталось: %s",
				percentage,
				humanize.Bytes(uint64(speed)),
				utils.FormatDuration(elapsed),
				utils.FormatDuration(remainingTime))
		}
	}()

	result, err := pusher.Push(ctx, filePath, func(bytesRead int64) {
		select {
		case progressChan <- bytesRead:
		case <-ctx.Done():
		}
	})

	close(progressChan)
	<-printed

	if ctx.Err() != nil {
		fmt.Printf("\n🚫 Загрузка отменена\n")
		return fmt.Errorf("операция отменена: %w", ctx.Err())
	}
	if err != nil {
		return fmt.Errorf("ошибка загрузки файла: %w", err)
	}

	fmt.Printf("\n✅ Файл успешно загружен в S3!\n")
	fmt.Printf("   Песня: %s\n", result.Item().Name)
	fmt.Printf("   URL: %s\n", result.URL)
	fmt.Printf("\n💡 Слушайте с помощью 'pulse tui --bucket' или 'pulse tui %s'\n", result.URL)
	return nil
}
