// Package tracklist содержит модель экрана списка песен активного плейлиста
package tracklist

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-pulse/internal/playlist"
	"github.com/hazadus/go-pulse/internal/theme"
	"github.com/hazadus/go-pulse/internal/track"
	"github.com/hazadus/go-pulse/internal/tui/control"
	"github.com/hazadus/go-pulse/internal/tui/prompt"
	"github.com/hazadus/go-pulse/internal/utils"
)

const nameWidth = 60

// PlaySongMsg отправляется при выборе песни для воспроизведения
type PlaySongMsg struct {
	ID string
}

// ResumeMsg отправляется для продолжения воспроизведения
type ResumeMsg struct{}

// RemoveSongMsg отправляется при удалении песни
type RemoveSongMsg struct {
	Name string
}

// RemoveRowMsg отправляется при удалении выделенной строки по ее дескриптору
type RemoveRowMsg struct {
	ID string
}

// SwitchPlaylistMsg отправляется при переключении плейлиста
type SwitchPlaylistMsg struct {
	Forward bool
}

// songItem реализует интерфейс list.Item для песни
type songItem struct {
	song playlist.Song
}

func (i songItem) FilterValue() string {
	return i.song.Name
}

// songDelegate отображает элементы списка с отметками курсора и воспроизведения
type songDelegate struct {
	styles    *theme.Styles
	currentID string
	playingID string
}

func (d songDelegate) Height() int                             { return 1 }
func (d songDelegate) Spacing() int                            { return 0 }
func (d songDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d songDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	i, ok := listItem.(songItem)
	if !ok {
		return
	}

	marker := "  "
	switch i.song.ID {
	case d.playingID:
		marker = "▶ "
	case d.currentID:
		marker = "• "
	}

	kind := "🎵"
	if i.song.IsPlaceholder() {
		kind = "💤"
	}

	str := fmt.Sprintf("%s%s %s", marker, kind, utils.TruncateString(i.song.Name, nameWidth))

	if index == m.Index() {
		fmt.Fprint(w, d.styles.Selected.Render("> "+str))
		return
	}
	fmt.Fprint(w, d.styles.Item.Render(str))
}

// Model представляет модель экрана списка песен
type Model struct {
	list         list.Model
	trackManager *track.Manager
	styles       *theme.Styles
	playingID    string
	quitting     bool
}

// NewModel создает новую модель списка песен
func NewModel(trackManager *track.Manager, styles *theme.Styles) *Model {
	l := list.New(nil, songDelegate{styles: styles}, 0, 0)
	l.SetShowStatusBar(false)
	l.SetShowTitle(true)
	l.SetFilteringEnabled(true)
	l.SetStatusBarItemName("песня", "песни")
	l.KeyMap.Quit = key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "выход"))
	l.KeyMap.NextPage = key.NewBinding(key.WithKeys("right", "pgdown"), key.WithHelp("→/pgdn", "след. страница"))
	l.KeyMap.PrevPage = key.NewBinding(key.WithKeys("left", "pgup"), key.WithHelp("←/pgup", "пред. страница"))

	m := &Model{
		list:         l,
		trackManager: trackManager,
		styles:       styles,
	}
	m.applyStyles()
	m.RefreshData()
	return m
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return nil
}

// SetStyles применяет стили новой темы
func (m *Model) SetStyles(styles *theme.Styles) {
	m.styles = styles
	m.applyStyles()
	m.RefreshData()
}

// SetPlaying отмечает песню, загруженную в плеер
func (m *Model) SetPlaying(id string) {
	m.playingID = id
	m.RefreshData()
}

func (m *Model) applyStyles() {
	m.list.Styles.Title = m.styles.Title
	m.list.Styles.HelpStyle = m.styles.Muted.PaddingLeft(4)
	m.list.Styles.PaginationStyle = m.styles.Muted.PaddingLeft(4)
	m.list.Styles.NoItems = m.styles.Muted.PaddingLeft(4)
}

// RefreshData перечитывает активный плейлист без пересоздания модели
func (m *Model) RefreshData() {
	lib := m.trackManager.Library()
	songs := m.trackManager.ListSongs()

	items := make([]list.Item, len(songs))
	for i, s := range songs {
		items[i] = songItem{song: s}
	}

	delegate := songDelegate{styles: m.styles, playingID: m.playingID}
	if current, ok := m.trackManager.Current(); ok {
		delegate.currentID = current.ID
	}

	m.list.Title = fmt.Sprintf("🎶 %s (%d)", lib.ActiveName(), len(songs))
	m.list.SetDelegate(delegate)
	m.list.SetItems(items)
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height - 4) // Оставляем место для справки и уведомлений
		return m, nil

	case tea.KeyMsg:
		// Во время фильтрации все клавиши принадлежат строке поиска
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			return m, tea.Quit

		case "enter":
			if item, ok := m.list.SelectedItem().(songItem); ok {
				return m, control.Send(PlaySongMsg{ID: item.song.ID})
			}
			return m, nil

		case " ":
			return m, control.Send(ResumeMsg{})

		case "d", "delete":
			if item, ok := m.list.SelectedItem().(songItem); ok {
				return m, control.Send(RemoveSongMsg{Name: item.song.Name})
			}
			return m, nil

		case "x":
			if item, ok := m.list.SelectedItem().(songItem); ok {
				return m, control.Send(RemoveRowMsg{ID: item.song.ID})
			}
			return m, nil

		case "tab":
			return m, control.Send(SwitchPlaylistMsg{Forward: true})

		case "shift+tab":
			return m, control.Send(SwitchPlaylistMsg{Forward: false})

		case "c":
			return m, control.Send(prompt.OpenMsg{Kind: prompt.CreatePlaylist})

		case "a":
			return m, control.Send(prompt.OpenMsg{Kind: prompt.AddFiles})
		}

		if cmd := control.HandleKey(msg.String()); cmd != nil {
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// View отображает модель
func (m *Model) View() string {
	if m.quitting {
		return m.styles.Muted.Margin(1, 0, 2, 4).Render("До свидания!")
	}

	extraHelp := m.styles.Muted.PaddingLeft(4).Render(
		"Enter: играть • Пробел: продолжить • d: удалить по имени • x: удалить строку • Tab: плейлист • c: новый плейлист • a: добавить\n" +
			"n/p: след./пред. • s: случайная • t: тема • q: выход",
	)
	return m.list.View() + "\n" + extraHelp
}
