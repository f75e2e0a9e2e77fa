// Package track содержит логику навигации по песням активного плейлиста
package track

import (
	"errors"
	"math/rand/v2"

	"github.com/hazadus/go-pulse/internal/library"
	"github.com/hazadus/go-pulse/internal/playlist"
)

// ErrPlaceholder возвращается для песни без воспроизводимого файла
var ErrPlaceholder = errors.New("это только заглушка, загрузите файлы для воспроизведения")

// Direction направление перемещения курсора
type Direction int

const (
	// Next к следующей песне
	Next Direction = iota
	// Previous к предыдущей песне
	Previous
)

// Item пара (имя, ссылка на файл) от источника загрузки
type Item struct {
	Name string
	File string
}

// Manager управляет курсором воспроизведения активного плейлиста
type Manager struct {
	lib *library.Library
	rnd *rand.Rand
}

// NewManager создает новый экземпляр Manager
func NewManager(lib *library.Library) *Manager {
	return &Manager{
		lib: lib,
		rnd: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// NewManagerWithRand создает Manager с заданным источником случайных чисел
func NewManagerWithRand(lib *library.Library, rnd *rand.Rand) *Manager {
	return &Manager{
		lib: lib,
		rnd: rnd,
	}
}

// Library возвращает реестр, с которым работает менеджер
func (m *Manager) Library() *library.Library {
	return m.lib
}

// ListSongs возвращает список песен активного плейлиста
func (m *Manager) ListSongs() []playlist.Song {
	return m.lib.Active().Songs()
}

// Current возвращает песню под курсором активного плейлиста
func (m *Manager) Current() (playlist.Song, bool) {
	return m.lib.Active().Current()
}

// Advance сдвигает курсор в указанном направлении.
// На границе списка или в пустом плейлисте ничего не меняется.
func (m *Manager) Advance(dir Direction) (playlist.Song, bool) {
	pl := m.lib.Active()
	if dir == Previous {
		return pl.MovePrev()
	}
	return pl.MoveNext()
}

// RandomPick выбирает случайную песню активного плейлиста и ставит на нее курсор.
// Текущая песня не исключается из выбора.
func (m *Manager) RandomPick() (playlist.Song, bool) {
	pl := m.lib.Active()
	songs := pl.Songs()
	if len(songs) == 0 {
		return playlist.Song{}, false
	}

	song := songs[m.rnd.IntN(len(songs))]
	if _, err := pl.SetCurrent(song.ID); err != nil {
		return playlist.Song{}, false
	}
	return song, true
}

// Select ставит курсор на песню по ее дескриптору
func (m *Manager) Select(id string) (playlist.Song, error) {
	return m.lib.Active().SetCurrent(id)
}

// Remove удаляет первую песню с указанным именем из активного плейлиста
func (m *Manager) Remove(name string) bool {
	return m.lib.Active().RemoveByName(name)
}

// RemoveByID удаляет из активного плейлиста именно эту песню, даже если имя повторяется
func (m *Manager) RemoveByID(id string) (playlist.Song, bool) {
	active := m.lib.Active()
	song, ok := active.Lookup(id)
	if !ok {
		return playlist.Song{}, false
	}
	active.RemoveByID(id)
	return song, true
}

// AddSongs добавляет песни в активный плейлист в порядке поступления
func (m *Manager) AddSongs(items []Item) int {
	return AddTo(m.lib.Active(), items)
}

// AddTo добавляет песни в указанный плейлист и возвращает их количество
func AddTo(pl *playlist.Playlist, items []Item) int {
	for _, item := range items {
		pl.Add(item.Name, item.File)
	}
	return len(items)
}

// Playable проверяет, что у песни есть файл для воспроизведения
func Playable(song playlist.Song) error {
	if song.IsPlaceholder() {
		return ErrPlaceholder
	}
	return nil
}
