// Package upload превращает файлы, директории, ссылки и содержимое бакета в песни плейлиста
package upload

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hazadus/go-pulse/internal/s3"
	"github.com/hazadus/go-pulse/internal/streaming"
	"github.com/hazadus/go-pulse/internal/track"
)

// ErrNothingToAdd возвращается, когда среди источников нет ни одной песни
var ErrNothingToAdd = errors.New("не найдено ни одного аудио файла")

// Lister перечисляет аудио файлы в удаленном хранилище
type Lister interface {
	ListTracks(ctx context.Context) ([]s3.Object, error)
}

// Collect собирает элементы для добавления в плейлист.
// Директории читаются без рекурсии, из них берутся только MP3 файлы.
// Ссылки http(s) передаются как есть. Ошибки отдельных путей
// объединяются и возвращаются вместе с найденными элементами.
func Collect(paths ...string) ([]track.Item, error) {
	var (
		items []track.Item
		errs  []error
	)

	for _, p := range paths {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		if streaming.IsURL(p) {
			items = append(items, track.Item{Name: streaming.NameFromURL(p), File: p})
			continue
		}

		found, err := collectPath(p)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		items = append(items, found...)
	}

	return items, errors.Join(errs...)
}

// collectPath обрабатывает локальный файл или директорию
func collectPath(p string) ([]track.Item, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return nil, fmt.Errorf("некорректный путь %s: %w", p, err)
	}

	stat, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("файл не найден: %s", p)
	}

	if !stat.IsDir() {
		return []track.Item{{Name: filepath.Base(abs), File: abs}}, nil
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, fmt.Errorf("ошибка чтения директории %s: %w", p, err)
	}

	var items []track.Item
	for _, entry := range entries {
		if entry.IsDir() || !IsAudioFile(entry.Name()) {
			continue
		}
		items = append(items, track.Item{
			Name: entry.Name(),
			File: filepath.Join(abs, entry.Name()),
		})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })

	return items, nil
}

// CollectBucket превращает содержимое бакета в элементы плейлиста
func CollectBucket(ctx context.Context, lister Lister) ([]track.Item, error) {
	objects, err := lister.ListTracks(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]track.Item, 0, len(objects))
	for _, object := range objects {
		items = append(items, track.Item{Name: filepath.Base(object.Key), File: object.URL})
	}
	return items, nil
}

// IsAudioFile сообщает, поддерживается ли файл плеером
func IsAudioFile(name string) bool {
	return strings.EqualFold(filepath.Ext(name), ".mp3")
}
