package upload

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hazadus/go-pulse/internal/metadata"
	"github.com/hazadus/go-pulse/internal/track"
)

// Uploader загружает содержимое в удаленное хранилище
type Uploader interface {
	UploadFile(ctx context.Context, reader io.Reader, key string) (string, error)
}

// Inspector извлекает теги и сведения о локальном файле
type Inspector interface {
	ExtractFromFile(filePath string) metadata.Tags
	GetFileInfo(filePath string) (*metadata.FileInfo, error)
}

// Result содержит результат загрузки
type Result struct {
	URL      string
	Tags     metadata.Tags
	FileInfo *metadata.FileInfo
}

// Item возвращает элемент плейлиста, указывающий на загруженный файл
func (r *Result) Item() track.Item {
	return track.Item{Name: r.Tags.String(), File: r.URL}
}

// Pusher загружает локальные песни в бакет
type Pusher struct {
	uploader  Uploader
	inspector Inspector
}

// NewPusher создает новый сервис загрузки
func NewPusher(uploader Uploader, inspector Inspector) *Pusher {
	return &Pusher{
		uploader:  uploader,
		inspector: inspector,
	}
}

// Push загружает файл, сообщая о прогрессе через progressCallback
func (p *Pusher) Push(ctx context.Context, filePath string, progressCallback func(int64)) (*Result, error) {
	if _, err := os.Stat(filePath); os.IsNotExist(err) {
		return nil, fmt.Errorf("файл не найден: %s", filePath)
	}
	if !IsAudioFile(filePath) {
		return nil, fmt.Errorf("поддерживаются только MP3 файлы: %s", filePath)
	}

	fileInfo, err := p.inspector.GetFileInfo(filePath)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения информации о файле: %w", err)
	}

	tags := p.inspector.ExtractFromFile(filePath)

	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer file.Close()

	var reader io.Reader = file
	if progressCallback != nil {
		reader = &ProgressReader{
			Reader:     file,
			Size:       fileInfo.Size,
			OnProgress: progressCallback,
		}
	}

	url, err := p.uploader.UploadFile(ctx, reader, filepath.Base(filePath))
	if err != nil {
		return nil, fmt.Errorf("ошибка загрузки в S3: %w", err)
	}

	return &Result{
		URL:      url,
		Tags:     tags,
		FileInfo: fileInfo,
	}, nil
}

// ProgressReader структура для отслеживания прогресса чтения
type ProgressReader struct {
	io.Reader
	Size       int64
	OnProgress func(int64)
	bytesRead  int64
}

func (pr *ProgressReader) Read(p []byte) (n int, err error) {
	n, err = pr.Reader.Read(p)
	pr.bytesRead += int64(n)
	if pr.OnProgress != nil {
		pr.OnProgress(pr.bytesRead)
	}
	return n, err
}
