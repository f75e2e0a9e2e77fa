package upload

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hazadus/go-pulse/internal/s3"
)

// MockLister мок для списка файлов бакета
type MockLister struct {
	objects []s3.Object
	err     error
}

func (m *MockLister) ListTracks(ctx context.Context) ([]s3.Object, error) {
	return m.objects, m.err
}

// touch создает пустые файлы в директории
func touch(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatalf("Ошибка создания файла: %v", err)
		}
	}
}

func TestCollectDirectory(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "b.mp3", "a.MP3", "cover.jpg", "notes.txt")
	if err := os.Mkdir(filepath.Join(dir, "nested"), 0755); err != nil {
		t.Fatalf("Ошибка создания директории: %v", err)
	}
	touch(t, filepath.Join(dir, "nested"), "deep.mp3")

	items, err := Collect(dir)
	if err != nil {
		t.Fatalf("Неожиданная ошибка: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("Ожидалось 2 файла, получено %d: %+v", len(items), items)
	}
	if items[0].Name != "a.MP3" || items[1].Name != "b.mp3" {
		t.Errorf("Файлы должны быть отсортированы по имени: %+v", items)
	}
	if items[1].File != filepath.Join(dir, "b.mp3") {
		t.Errorf("Неверный путь файла: %s", items[1].File)
	}
}

func TestCollectFilesAndURLs(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "song.mp3")

	items, err := Collect(
		filepath.Join(dir, "song.mp3"),
		"  ",
		"https://example.com/music/Radio%20Mix.mp3",
	)
	if err != nil {
		t.Fatalf("Неожиданная ошибка: %v", err)
	}

	if len(items) != 2 {
		t.Fatalf("Ожидалось 2 элемента, получено %d", len(items))
	}
	if items[0].Name != "song.mp3" {
		t.Errorf("Ожидалось имя song.mp3, получено %s", items[0].Name)
	}
	if items[1].Name != "Radio Mix.mp3" || items[1].File != "https://example.com/music/Radio%20Mix.mp3" {
		t.Errorf("Ссылка должна передаваться как есть: %+v", items[1])
	}
}

func TestCollectReportsMissingPaths(t *testing.T) {
	dir := t.TempDir()
	touch(t, dir, "ok.mp3")

	items, err := Collect(filepath.Join(dir, "missing.mp3"), filepath.Join(dir, "ok.mp3"))
	if err == nil {
		t.Fatal("Ожидалась ошибка для отсутствующего файла")
	}
	if !strings.Contains(err.Error(), "файл не найден") {
		t.Errorf("Неожиданное сообщение об ошибке: %v", err)
	}
	if len(items) != 1 || items[0].Name != "ok.mp3" {
		t.Errorf("Найденные файлы должны возвращаться вместе с ошибкой: %+v", items)
	}
}

func TestCollectNothing(t *testing.T) {
	items, err := Collect()
	if err != nil || len(items) != 0 {
		t.Errorf("Пустой вызов должен вернуть пустой результат, получено %v, %v", items, err)
	}
}

func TestCollectBucket(t *testing.T) {
	lister := &MockLister{objects: []s3.Object{
		{Key: "album/one.mp3", URL: "https://s3.example.com/b/album/one.mp3"},
		{Key: "two.mp3", URL: "https://s3.example.com/b/two.mp3"},
	}}

	items, err := CollectBucket(context.Background(), lister)
	if err != nil {
		t.Fatalf("Неожиданная ошибка: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("Ожидалось 2 элемента, получено %d", len(items))
	}
	if items[0].Name != "one.mp3" || items[0].File != "https://s3.example.com/b/album/one.mp3" {
		t.Errorf("Неверный элемент: %+v", items[0])
	}
}

func TestCollectBucketError(t *testing.T) {
	listErr := errors.New("нет доступа")
	_, err := CollectBucket(context.Background(), &MockLister{err: listErr})
	if !errors.Is(err, listErr) {
		t.Errorf("Ожидалась ошибка бакета, получено %v", err)
	}
}

func TestIsAudioFile(t *testing.T) {
	tests := []struct {
		name     string
		expected bool
	}{
		{"song.mp3", true},
		{"SONG.MP3", true},
		{"song.wav", false},
		{"mp3", false},
	}

	for _, test := range tests {
		if got := IsAudioFile(test.name); got != test.expected {
			t.Errorf("IsAudioFile(%s) = %v; expected %v", test.name, got, test.expected)
		}
	}
}
