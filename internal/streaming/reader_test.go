package streaming

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIsURL(t *testing.T) {
	tests := []struct {
		source   string
		expected bool
	}{
		{"https://example.com/a.mp3", true},
		{"http://example.com/a.mp3", true},
		{"/home/user/Music/a.mp3", false},
		{"a.mp3", false},
		{"ftp://example.com/a.mp3", false},
		{"http-archive/a.mp3", false},
	}

	for _, test := range tests {
		if got := IsURL(test.source); got != test.expected {
			t.Errorf("IsURL(%s) = %v; expected %v", test.source, got, test.expected)
		}
	}
}

func TestNameFromURL(t *testing.T) {
	tests := []struct {
		url      string
		expected string
	}{
		{"https://example.com/music/song.mp3", "song.mp3"},
		{"https://example.com/music/song.mp3?token=abc", "song.mp3"},
		{"https://example.com/music/My%20Song.mp3", "My Song.mp3"},
		{"https://example.com/", "example.com"},
		{"https://example.com", "example.com"},
	}

	for _, test := range tests {
		if got := NameFromURL(test.url); got != test.expected {
			t.Errorf("NameFromURL(%s) = %s; expected %s", test.url, got, test.expected)
		}
	}
}

func TestNewReaderStreamsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Range") != "bytes=0-" {
			t.Errorf("Ожидался заголовок Range, получено %q", r.Header.Get("Range"))
		}
		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("ID3 fake audio"))
	}))
	defer server.Close()

	reader, err := NewReader(context.Background(), server.URL+"/song.mp3", 1024)
	if err != nil {
		t.Fatalf("Ошибка создания ридера: %v", err)
	}
	defer reader.Close()

	body, err := io.ReadAll(reader)
	if err != nil {
		t.Fatalf("Ошибка чтения: %v", err)
	}
	if string(body) != "ID3 fake audio" {
		t.Errorf("Неожиданное содержимое: %q", body)
	}
	if !reader.IsAudio() {
		t.Error("Ответ с audio/mpeg должен считаться аудио")
	}
}

func TestNewReaderHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.NotFound(w, nil)
	}))
	defer server.Close()

	_, err := NewReader(context.Background(), server.URL+"/missing.mp3", 1024)
	if err == nil {
		t.Fatal("Ожидалась ошибка для ответа 404")
	}
}
