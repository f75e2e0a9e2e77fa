package main

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/hazadus/go-pulse/internal/s3"
)

// createBucketCommand создает команду bucket с подкомандами ls и rm
func (app *Application) createBucketCommand(ctx context.Context) *cobra.Command {
	bucketCmd := &cobra.Command{
		Use:   "bucket",
		Short: "Manage songs stored in the S3 bucket",
	}

	bucketCmd.AddCommand(&cobra.Command{
		Use:   "ls",
		Short: "List mp3 files in the bucket",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			uploader, err := app.newUploader()
			if err != nil {
				return err
			}
			objects, err := uploader.ListTracks(ctx)
			if err != nil {
				return err
			}
			printObjects(app.Config.AwsBucketName, objects)
			return nil
		},
	})

	bucketCmd.AddCommand(&cobra.Command{
		Use:   "rm [key]",
		Short: "Delete a file from the bucket",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			uploader, err := app.newUploader()
			if err != nil {
				return err
			}
			fmt.Printf("🗑️  Удаляем из бакета: %s\n", args[0])
			if err := uploader.DeleteFile(ctx, args[0]); err != nil {
				return err
			}
			fmt.Println("✅ Файл успешно удален из S3")
			return nil
		},
	})

	return bucketCmd
}

func printObjects(bucket string, objects []s3.Object) {
	if len(objects) == 0 {
		fmt.Printf("☁️  В бакете %s нет MP3 файлов. Загрузите их командой 'push'.\n", bucket)
		return
	}

	var total int64
	fmt.Printf("☁️  Бакет %s, файлов: %d\n\n", bucket, len(objects))
	for _, object := range objects {
		total += object.Size
		fmt.Printf("   %-50s %10s\n", object.Key, humanize.Bytes(uint64(object.Size)))
	}
	fmt.Printf("\n   Всего: %s\n", humanize.Bytes(uint64(total)))
}
