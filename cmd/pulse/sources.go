package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-pulse/internal/upload"
)

// sourceOptions определяет, куда и откуда добавлять песни перед запуском команды
type sourceOptions struct {
	playlist string
	bucket   bool
}

// bindSourceFlags добавляет общие флаги наполнения плейлиста
func bindSourceFlags(cmd *cobra.Command, opts *sourceOptions) {
	cmd.Flags().StringVarP(&opts.playlist, "playlist", "p", "", "плейлист для добавления песен (создается при отсутствии)")
	cmd.Flags().BoolVar(&opts.bucket, "bucket", false, "добавить все MP3 файлы из бакета S3")
}

// fillPlaylist выбирает плейлист и добавляет в него песни из путей и бакета
func (app *Application) fillPlaylist(ctx context.Context, opts sourceOptions, paths []string) error {
	if opts.playlist != "" {
		if _, _, err := app.Library.Create(opts.playlist); err != nil {
			return fmt.Errorf("ошибка создания плейлиста: %w", err)
		}
		if err := app.Library.Select(opts.playlist); err != nil {
			return err
		}
	}

	name := app.Library.ActiveName()

	items, err := upload.Collect(paths...)
	if err != nil {
		fmt.Printf("⚠️  Пропущены источники:\n%v\n", err)
	}
	if len(items) > 0 {
		added := app.Manager.AddSongs(items)
		fmt.Printf("📂 Добавлено песен в плейлист %q: %d\n", name, added)
	}

	if !opts.bucket {
		return nil
	}

	uploader, err := app.newUploader()
	if err != nil {
		return err
	}

	items, err = upload.CollectBucket(ctx, uploader)
	if err != nil {
		return err
	}
	added := app.Manager.AddSongs(items)
	fmt.Printf("☁️  Из бакета %s добавлено песен: %d\n", app.Config.AwsBucketName, added)

	return nil
}
