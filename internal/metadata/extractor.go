// Package metadata извлекает теги и сведения об аудио файлах песен
package metadata

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dhowden/tag"
	"github.com/gopxl/beep/mp3"

	"github.com/hazadus/go-pulse/internal/playlist"
	"github.com/hazadus/go-pulse/internal/streaming"
)

// UnknownArtist подставляется, когда исполнителя определить не удалось
const UnknownArtist = "Unknown Artist"

// Tags теги песни для отображения
type Tags struct {
	Artist string
	Title  string
	Album  string
}

// String возвращает строку "Исполнитель - Название"
func (t Tags) String() string {
	if t.Artist == "" {
		return t.Title
	}
	return t.Artist + " - " + t.Title
}

// FileInfo содержит размер и длительность файла
type FileInfo struct {
	Size     int64
	Duration time.Duration
}

// Extractor извлекает метаданные из аудио файлов
type Extractor struct{}

// NewExtractor создает новый экстрактор метаданных
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Describe возвращает теги для песни плейлиста.
// Для заглушек и ссылок файл не читается.
func (e *Extractor) Describe(song playlist.Song) Tags {
	switch {
	case song.IsPlaceholder():
		return Tags{Title: song.Name}
	case streaming.IsURL(song.File):
		return fromName(song.Name)
	}

	tags := e.ExtractFromFile(song.File)
	if tags.Title == "" {
		tags.Title = song.Name
	}
	return tags
}

// ExtractFromReader читает ID3 и другие поддерживаемые теги
func (e *Extractor) ExtractFromReader(reader io.ReadSeeker, source string) Tags {
	if _, err := reader.Seek(0, io.SeekStart); err != nil {
		return fromName(source)
	}

	metadata, err := tag.ReadFrom(reader)
	if err != nil {
		return fromName(source)
	}

	tags := Tags{
		Artist: metadata.Artist(),
		Title:  metadata.Title(),
		Album:  metadata.Album(),
	}
	if tags.Title == "" {
		fallback := fromName(source)
		tags.Title = fallback.Title
		if tags.Artist == "" {
			tags.Artist = fallback.Artist
		}
	}
	return tags
}

// ExtractFromFile извлекает теги из файла, при ошибке разбирает имя файла
func (e *Extractor) ExtractFromFile(filePath string) Tags {
	file, err := os.Open(filePath)
	if err != nil {
		return fromName(filePath)
	}
	defer file.Close()

	return e.ExtractFromReader(file, filePath)
}

// GetDuration получает длительность MP3 файла
func (e *Extractor) GetDuration(filePath string) (time.Duration, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return 0, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	defer file.Close()

	streamer, format, err := mp3.Decode(file)
	if err != nil {
		return 0, fmt.Errorf("ошибка декодирования MP3: %w", err)
	}
	defer streamer.Close()

	return format.SampleRate.D(streamer.Len()), nil
}

// GetFileInfo получает размер и длительность файла
func (e *Extractor) GetFileInfo(filePath string) (*FileInfo, error) {
	stat, err := os.Stat(filePath)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения информации о файле: %w", err)
	}

	duration, err := e.GetDuration(filePath)
	if err != nil {
		return nil, fmt.Errorf("ошибка получения длительности: %w", err)
	}

	return &FileInfo{
		Size:     stat.Size(),
		Duration: duration,
	}, nil
}

// fromName разбирает имя файла в формате "Artist - Title"
func fromName(source string) Tags {
	base := filepath.Base(source)
	name := strings.TrimSuffix(base, filepath.Ext(base))

	parts := strings.Split(name, " - ")
	if len(parts) >= 2 {
		return Tags{
			Artist: strings.TrimSpace(parts[0]),
			Title:  strings.TrimSpace(strings.Join(parts[1:], " - ")),
		}
	}

	return Tags{Artist: UnknownArtist, Title: name}
}
