// Package library содержит реестр плейлистов и выбор активного плейлиста
package library

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hazadus/go-pulse/internal/playlist"
)

// DefaultPlaylist имя плейлиста, который активен при старте
const DefaultPlaylist = "Default"

var (
	// ErrPlaylistNotFound возвращается при выборе несуществующего плейлиста
	ErrPlaylistNotFound = errors.New("плейлист не найден")
	// ErrInvalidName возвращается для пустого имени плейлиста
	ErrInvalidName = errors.New("имя плейлиста не может быть пустым")
)

// SongSpec описание песни для предзагрузки
type SongSpec struct {
	Name string `yaml:"name"`
	File string `yaml:"file"`
}

// PlaylistSpec описание плейлиста для предзагрузки
type PlaylistSpec struct {
	Name  string     `yaml:"name"`
	Songs []SongSpec `yaml:"songs"`
}

// demoPlaylists плейлисты-заглушки, доступные сразу после запуска
var demoPlaylists = []PlaylistSpec{
	{Name: DefaultPlaylist},
	{Name: "Bollywood", Songs: []SongSpec{{Name: "Tum Hi Ho"}, {Name: "Kal Ho Naa Ho"}}},
	{Name: "Lo-fi", Songs: []SongSpec{{Name: "Chill Vibes"}, {Name: "Dreamscape"}}},
	{Name: "Workout", Songs: []SongSpec{{Name: "Beast Mode"}, {Name: "Pump It Up"}}},
}

// Library отображение имени плейлиста в плейлист с активным именем.
// Активное имя всегда указывает на существующий ключ.
type Library struct {
	playlists map[string]*playlist.Playlist
	names     []string // Порядок создания, используется для переключения
	active    string
}

// New создает реестр с одним пустым активным плейлистом
func New(defaultName string) *Library {
	if strings.TrimSpace(defaultName) == "" {
		defaultName = DefaultPlaylist
	}
	lib := &Library{
		playlists: make(map[string]*playlist.Playlist),
	}
	lib.CreateIfAbsent(defaultName)
	lib.active = defaultName
	return lib
}

// NewDefault создает реестр с демонстрационными плейлистами
func NewDefault() *Library {
	lib := New(DefaultPlaylist)
	lib.Preload(demoPlaylists)
	return lib
}

// CreateIfAbsent создает пустой плейлист, только если имя еще не занято.
// Возвращает плейлист под этим именем и признак того, что он был создан.
func (l *Library) CreateIfAbsent(name string) (*playlist.Playlist, bool) {
	if pl, ok := l.playlists[name]; ok {
		return pl, false
	}
	if strings.TrimSpace(name) == "" {
		return nil, false
	}

	pl := playlist.New()
	l.playlists[name] = pl
	l.names = append(l.names, name)
	return pl, true
}

// Create создает новый плейлист и возвращает ошибку для пустого имени
func (l *Library) Create(name string) (*playlist.Playlist, bool, error) {
	if strings.TrimSpace(name) == "" {
		return nil, false, ErrInvalidName
	}
	pl, created := l.CreateIfAbsent(name)
	return pl, created, nil
}

// Select делает плейлист активным. Для неизвестного имени активный плейлист не меняется.
func (l *Library) Select(name string) error {
	if _, ok := l.playlists[name]; !ok {
		return fmt.Errorf("%w: %s", ErrPlaylistNotFound, name)
	}
	l.active = name
	return nil
}

// SelectNext переключает активный плейлист на следующий в порядке создания
func (l *Library) SelectNext() string {
	return l.shift(1)
}

// SelectPrev переключает активный плейлист на предыдущий в порядке создания
func (l *Library) SelectPrev() string {
	return l.shift(-1)
}

func (l *Library) shift(delta int) string {
	idx := l.indexOf(l.active)
	n := len(l.names)
	l.active = l.names[((idx+delta)%n+n)%n]
	return l.active
}

func (l *Library) indexOf(name string) int {
	for i, n := range l.names {
		if n == name {
			return i
		}
	}
	return 0
}

// Active возвращает активный плейлист
func (l *Library) Active() *playlist.Playlist {
	return l.playlists[l.active]
}

// ActiveName возвращает имя активного плейлиста
func (l *Library) ActiveName() string {
	return l.active
}

// Get возвращает плейлист по имени
func (l *Library) Get(name string) (*playlist.Playlist, bool) {
	pl, ok := l.playlists[name]
	return pl, ok
}

// Names возвращает имена плейлистов в порядке создания
func (l *Library) Names() []string {
	result := make([]string, len(l.names))
	copy(result, l.names)
	return result
}

// Preload создает плейлисты из описаний и добавляет в них песни.
// Существующие плейлисты не пересоздаются, песни дописываются в конец.
func (l *Library) Preload(specs []PlaylistSpec) {
	for _, spec := range specs {
		pl, _ := l.CreateIfAbsent(spec.Name)
		if pl == nil {
			continue
		}
		for _, song := range spec.Songs {
			pl.Add(song.Name, song.File)
		}
	}
}
