// Package playlist содержит двусвязный список песен с курсором воспроизведения
package playlist

import (
	"errors"

	"github.com/google/uuid"
)

// ErrInvalidReference возвращается, когда дескриптор песни не принадлежит плейлисту
var ErrInvalidReference = errors.New("песня не принадлежит плейлисту")

// Song представляет снимок песни, который отдается наружу вместо узла списка
type Song struct {
	ID   string // Непрозрачный дескриптор песни внутри плейлиста
	Name string // Отображаемое имя, не обязательно уникальное
	File string // Путь к файлу или URL; пусто для заглушки
}

// IsPlaceholder возвращает true, если у песни нет воспроизводимого содержимого
func (s Song) IsPlaceholder() bool {
	return s.File == ""
}

// node узел двусвязного списка
type node struct {
	song Song
	prev *node
	next *node
}

// Playlist упорядоченная двусвязная последовательность песен с курсором current.
// index содержит ровно те узлы, что достижимы от head.
type Playlist struct {
	head    *node
	tail    *node
	current *node
	size    int
	index   map[string]*node
}

// New создает пустой плейлист
func New() *Playlist {
	return &Playlist{index: make(map[string]*node)}
}

// Add добавляет песню в конец списка и возвращает ее снимок.
// Если список был пуст, новая песня становится head, tail и current.
func (p *Playlist) Add(name, file string) Song {
	n := &node{
		song: Song{ID: uuid.NewString(), Name: name, File: file},
	}
	p.index[n.song.ID] = n

	if p.head == nil {
		p.head = n
		p.tail = n
		p.current = n
	} else {
		p.tail.next = n
		n.prev = p.tail
		p.tail = n
	}
	p.size++

	return n.song
}

// RemoveByName удаляет первую (от head к tail) песню с точно совпадающим именем.
// Возвращает false, если такой песни нет.
func (p *Playlist) RemoveByName(name string) bool {
	for n := p.head; n != nil; n = n.next {
		if n.song.Name == name {
			p.unlink(n)
			return true
		}
	}
	return false
}

// RemoveByID удаляет песню по дескриптору
func (p *Playlist) RemoveByID(id string) bool {
	n := p.find(id)
	if n == nil {
		return false
	}
	p.unlink(n)
	return true
}

// unlink вырезает узел и переносит курсор: сначала вперед, затем назад
func (p *Playlist) unlink(n *node) {
	if n.prev != nil {
		n.prev.next = n.next
	} else {
		p.head = n.next
	}

	if n.next != nil {
		n.next.prev = n.prev
	} else {
		p.tail = n.prev
	}

	if p.current == n {
		switch {
		case n.next != nil:
			p.current = n.next
		case n.prev != nil:
			p.current = n.prev
		default:
			p.current = nil
		}
	}

	n.prev = nil
	n.next = nil
	delete(p.index, n.song.ID)
	p.size--
}

// Songs возвращает упорядоченный снимок всех песен от head к tail
func (p *Playlist) Songs() []Song {
	songs := make([]Song, 0, p.size)
	for n := p.head; n != nil; n = n.next {
		songs = append(songs, n.song)
	}
	return songs
}

// SetCurrent переставляет курсор на песню с указанным дескриптором.
// Чужой или неизвестный дескриптор не меняет курсор и возвращает ErrInvalidReference.
func (p *Playlist) SetCurrent(id string) (Song, error) {
	n := p.find(id)
	if n == nil {
		return Song{}, ErrInvalidReference
	}
	p.current = n
	return n.song, nil
}

// MoveNext сдвигает курсор на следующую песню, если она есть
func (p *Playlist) MoveNext() (Song, bool) {
	if p.current == nil || p.current.next == nil {
		return Song{}, false
	}
	p.current = p.current.next
	return p.current.song, true
}

// MovePrev сдвигает курсор на предыдущую песню, если она есть
func (p *Playlist) MovePrev() (Song, bool) {
	if p.current == nil || p.current.prev == nil {
		return Song{}, false
	}
	p.current = p.current.prev
	return p.current.song, true
}

// Current возвращает песню под курсором
func (p *Playlist) Current() (Song, bool) {
	if p.current == nil {
		return Song{}, false
	}
	return p.current.song, true
}

// Head возвращает первую песню
func (p *Playlist) Head() (Song, bool) {
	if p.head == nil {
		return Song{}, false
	}
	return p.head.song, true
}

// Tail возвращает последнюю песню
func (p *Playlist) Tail() (Song, bool) {
	if p.tail == nil {
		return Song{}, false
	}
	return p.tail.song, true
}

// Lookup ищет песню по дескриптору
func (p *Playlist) Lookup(id string) (Song, bool) {
	n := p.find(id)
	if n == nil {
		return Song{}, false
	}
	return n.song, true
}

// Len возвращает количество песен
func (p *Playlist) Len() int {
	return p.size
}

// IsEmpty возвращает true для пустого плейлиста
func (p *Playlist) IsEmpty() bool {
	return p.head == nil
}

// find возвращает узел этого плейлиста по дескриптору за O(1)
func (p *Playlist) find(id string) *node {
	return p.index[id]
}
