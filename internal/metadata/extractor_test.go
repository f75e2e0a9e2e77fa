package metadata

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hazadus/go-pulse/internal/playlist"
)

// writeFile создает файл с заданным содержимым во временной директории
func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, content, 0644); err != nil {
		t.Fatalf("Ошибка создания тестового файла: %v", err)
	}
	return path
}

func TestExtractFromFileWithoutTags(t *testing.T) {
	path := writeFile(t, "Artist - Title.mp3", []byte("fake content"))

	tags := NewExtractor().ExtractFromFile(path)

	if tags.Artist != "Artist" {
		t.Errorf("Ожидался Artist: Artist, получено: %s", tags.Artist)
	}
	if tags.Title != "Title" {
		t.Errorf("Ожидался Title: Title, получено: %s", tags.Title)
	}
}

func TestExtractFromCorruptedFile(t *testing.T) {
	path := writeFile(t, "Unknown - Track.mp3", []byte{0x00, 0x01, 0x02, 0x03, 0xFF, 0xFE, 0xFD})

	tags := NewExtractor().ExtractFromFile(path)

	if tags.Artist != "Unknown" || tags.Title != "Track" {
		t.Errorf("Ожидались теги из имени файла, получено: %+v", tags)
	}
}

func TestFromName(t *testing.T) {
	tests := []struct {
		source   string
		expected Tags
	}{
		{"/path/to/Artist - Title.mp3", Tags{Artist: "Artist", Title: "Title"}},
		{"/path/to/SimpleTrack.mp3", Tags{Artist: UnknownArtist, Title: "SimpleTrack"}},
		{"/path/to/Artist - Album - Title.mp3", Tags{Artist: "Artist", Title: "Album - Title"}},
	}

	for _, test := range tests {
		if got := fromName(test.source); got != test.expected {
			t.Errorf("fromName(%s) = %+v; ожидалось %+v", test.source, got, test.expected)
		}
	}
}

func TestExtractFromReader(t *testing.T) {
	path := writeFile(t, "Test - Song.mp3", []byte("test content"))

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Ошибка открытия файла: %v", err)
	}
	defer file.Close()

	tags := NewExtractor().ExtractFromReader(file, path)
	if tags.Artist != "Test" || tags.Title != "Song" {
		t.Errorf("Ожидались теги Test - Song, получено: %+v", tags)
	}
}

func TestDescribe(t *testing.T) {
	extractor := NewExtractor()

	placeholder := extractor.Describe(playlist.Song{ID: "1", Name: "Tum Hi Ho"})
	if placeholder.Title != "Tum Hi Ho" || placeholder.Artist != "" {
		t.Errorf("Для заглушки ожидалось только название, получено: %+v", placeholder)
	}
	if placeholder.String() != "Tum Hi Ho" {
		t.Errorf("String() = %s; ожидалось Tum Hi Ho", placeholder.String())
	}

	remote := extractor.Describe(playlist.Song{
		ID:   "2",
		Name: "Band - Hit.mp3",
		File: "https://example.com/Band%20-%20Hit.mp3",
	})
	if remote.String() != "Band - Hit" {
		t.Errorf("Для ссылки ожидалось Band - Hit, получено: %s", remote.String())
	}

	path := writeFile(t, "local.mp3", []byte("no tags"))
	local := extractor.Describe(playlist.Song{ID: "3", Name: "local.mp3", File: path})
	if local.Title != "local" {
		t.Errorf("Ожидалось название из имени файла, получено: %+v", local)
	}
}

func TestGetFileInfo(t *testing.T) {
	path := writeFile(t, "test.mp3", []byte("test content for file info"))

	fileInfo, err := NewExtractor().GetFileInfo(path)
	if err == nil {
		t.Fatal("Ожидалась ошибка для некорректного MP3 файла")
	}
	if fileInfo != nil {
		t.Error("fileInfo должен быть nil при ошибке")
	}
	if !strings.Contains(err.Error(), "ошибка получения длительности") {
		t.Errorf("Неожиданное сообщение об ошибке: %v", err)
	}
}

func TestGetFileInfoNonExistentFile(t *testing.T) {
	_, err := NewExtractor().GetFileInfo("/non/existent/file.mp3")
	if err == nil {
		t.Fatal("Ожидалась ошибка для несуществующего файла")
	}
	if !strings.Contains(err.Error(), "ошибка получения информации о файле") {
		t.Errorf("Неожиданное сообщение об ошибке: %v", err)
	}
}

func TestGetDurationNonExistentFile(t *testing.T) {
	_, err := NewExtractor().GetDuration("/non/existent/file.mp3")
	if err == nil {
		t.Fatal("Ожидалась ошибка для несуществующего файла")
	}
	if !strings.Contains(err.Error(), "ошибка открытия файла") {
		t.Errorf("Неожиданное сообщение об ошибке: %v", err)
	}
}
