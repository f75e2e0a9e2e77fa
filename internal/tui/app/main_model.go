// Package app содержит основную логику TUI приложения
package app

import (
	"errors"
	"fmt"
	"unicode"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-pulse/internal/metadata"
	"github.com/hazadus/go-pulse/internal/player"
	"github.com/hazadus/go-pulse/internal/playlist"
	"github.com/hazadus/go-pulse/internal/theme"
	"github.com/hazadus/go-pulse/internal/track"
	"github.com/hazadus/go-pulse/internal/tui/control"
	tuiPlayer "github.com/hazadus/go-pulse/internal/tui/player"
	"github.com/hazadus/go-pulse/internal/tui/prompt"
	"github.com/hazadus/go-pulse/internal/tui/tracklist"
	"github.com/hazadus/go-pulse/internal/upload"
)

// ScreenType определяет тип текущего экрана
type ScreenType int

// Константы для типов экранов
const (
	// TracklistScreen - экран списка песен
	TracklistScreen ScreenType = iota
	// PlayerScreen - экран плеера
	PlayerScreen
	// PromptScreen - экран ввода
	PromptScreen
)

// Options параметры главной модели
type Options struct {
	MusicDir   string
	Visualizer tuiPlayer.VisualizerOptions
}

// MainModel представляет главную модель TUI
type MainModel struct {
	trackManager   *track.Manager
	themes         *theme.Cycler
	extractor      *metadata.Extractor
	options        Options
	currentScreen  ScreenType
	previousScreen ScreenType
	tracklistModel *tracklist.Model
	playerModel    *tuiPlayer.Model
	promptModel    *prompt.Model
	globalPlayer   *player.Player // Глобальный плеер для переиспользования
	notice         control.NoticeMsg
	width          int
	height         int
}

// NewMainModel создает новую главную модель
func NewMainModel(trackManager *track.Manager, themes *theme.Cycler, options Options) *MainModel {
	return &MainModel{
		trackManager:   trackManager,
		themes:         themes,
		extractor:      metadata.NewExtractor(),
		options:        options,
		currentScreen:  TracklistScreen,
		tracklistModel: tracklist.NewModel(trackManager, themes.Styles()),
		globalPlayer:   player.NewPlayer(),
	}
}

// Init инициализирует модель
func (m *MainModel) Init() tea.Cmd {
	return tea.Batch(
		m.tracklistModel.Init(),
		tuiPlayer.ListenForProgress(m.globalPlayer),
		tuiPlayer.Tick(m.options.Visualizer.FPS),
	)
}

// Update обрабатывает сообщения
func (m *MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.globalPlayer.Stop()
			return m, tea.Quit
		}
		m.notice = control.NoticeMsg{}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, m.broadcast(msg)

	case control.NoticeMsg:
		m.notice = msg
		return m, nil

	case tracklist.PlaySongMsg:
		song, err := m.trackManager.Select(msg.ID)
		if err != nil {
			return m, m.showError(err)
		}
		return m, m.play(song)

	case tracklist.ResumeMsg:
		return m, m.resume()

	case tracklist.RemoveSongMsg:
		if m.trackManager.Remove(msg.Name) {
			m.tracklistModel.RefreshData()
			return m, control.Send(control.NoticeMsg{Text: "🗑️ Удалено: " + msg.Name})
		}
		return m, nil

	case tracklist.RemoveRowMsg:
		if song, ok := m.trackManager.RemoveByID(msg.ID); ok {
			m.tracklistModel.RefreshData()
			return m, control.Send(control.NoticeMsg{Text: "🗑️ Удалено: " + song.Name})
		}
		return m, nil

	case tracklist.SwitchPlaylistMsg:
		lib := m.trackManager.Library()
		if msg.Forward {
			lib.SelectNext()
		} else {
			lib.SelectPrev()
		}
		m.tracklistModel.RefreshData()
		return m, nil

	case control.AdvanceMsg:
		song, ok := m.trackManager.Advance(msg.Direction)
		if !ok {
			return m, nil
		}
		return m, m.play(song)

	case control.ShuffleMsg:
		song, ok := m.trackManager.RandomPick()
		if !ok {
			return m, nil
		}
		return m, m.play(song)

	case control.ToggleThemeMsg:
		m.themes.Next()
		m.applyTheme()
		return m, nil

	case prompt.OpenMsg:
		initial := ""
		if msg.Kind == prompt.AddFiles {
			initial = m.options.MusicDir
		}
		m.promptModel = prompt.NewModel(msg.Kind, initial, m.themes.Styles())
		m.previousScreen = m.currentScreen
		m.currentScreen = PromptScreen
		return m, tea.Batch(m.promptModel.Init(), m.sizeCmd())

	case prompt.CancelMsg:
		m.closePrompt()
		return m, nil

	case prompt.SubmitMsg:
		m.closePrompt()
		return m, m.submit(msg)

	case tuiPlayer.GoBackMsg:
		m.globalPlayer.Stop()
		m.currentScreen = TracklistScreen
		m.playerModel = nil
		m.tracklistModel.SetPlaying("")
		return m, nil

	case tuiPlayer.PlaybackStartedMsg:
		if m.playerModel != nil && m.playerModel.Song().ID == msg.ID {
			m.tracklistModel.SetPlaying(msg.ID)
		}
		return m, m.toPlayer(msg)

	case tuiPlayer.PlaybackErrorMsg:
		return m, m.toPlayer(msg)

	case tuiPlayer.PlaybackFinishedMsg:
		if m.playerModel != nil && m.playerModel.Song().ID == msg.ID {
			m.tracklistModel.SetPlaying("")
		}
		cmd := m.toPlayer(msg)
		return m, tea.Batch(cmd, tuiPlayer.ListenForProgress(m.globalPlayer))

	case tuiPlayer.ProgressMsg:
		// Продолжаем слушать плеер при любом активном экране
		cmd := m.toPlayer(msg)
		return m, tea.Batch(cmd, tuiPlayer.ListenForProgress(m.globalPlayer))

	case tuiPlayer.VizTickMsg:
		cmd := m.toPlayer(msg)
		return m, tea.Batch(cmd, tuiPlayer.Tick(m.options.Visualizer.FPS))
	}

	return m, m.toActive(msg)
}

// play ставит песню на экран плеера или сообщает, что это заглушка
func (m *MainModel) play(song playlist.Song) tea.Cmd {
	m.tracklistModel.RefreshData()

	if err := track.Playable(song); err != nil {
		return control.Send(control.NoticeMsg{Text: "ℹ️ " + capitalize(err.Error())})
	}

	m.playerModel = tuiPlayer.NewModel(
		song,
		m.extractor.Describe(song),
		m.globalPlayer,
		m.themes.Styles(),
		m.options.Visualizer,
	)
	m.currentScreen = PlayerScreen
	return tea.Batch(m.playerModel.Init(), m.sizeCmd())
}

// resume продолжает загруженную песню или запускает песню под курсором
func (m *MainModel) resume() tea.Cmd {
	if m.playerModel != nil && m.globalPlayer.CurrentSong() != nil {
		if !m.globalPlayer.IsPlaying() {
			m.globalPlayer.Pause()
		}
		m.currentScreen = PlayerScreen
		m.playerModel.SyncStatus()
		return nil
	}

	song, ok := m.trackManager.Current()
	if !ok {
		return nil
	}
	return m.play(song)
}

// submit обрабатывает подтвержденный ввод
func (m *MainModel) submit(msg prompt.SubmitMsg) tea.Cmd {
	switch msg.Kind {
	case prompt.CreatePlaylist:
		lib := m.trackManager.Library()
		_, created, err := lib.Create(msg.Value)
		if err != nil {
			return m.showError(err)
		}
		if !created {
			return control.Send(control.NoticeMsg{Text: fmt.Sprintf("Плейлист %q уже существует", msg.Value)})
		}
		if err := lib.Select(msg.Value); err != nil {
			return m.showError(err)
		}
		m.tracklistModel.RefreshData()
		return control.Send(control.NoticeMsg{Text: "✅ Создан плейлист " + msg.Value})

	case prompt.AddFiles:
		items, err := upload.Collect(msg.Value)
		added := m.trackManager.AddSongs(items)
		m.tracklistModel.RefreshData()

		switch {
		case err != nil:
			return m.showError(err)
		case added == 0:
			return m.showError(upload.ErrNothingToAdd)
		}
		return control.Send(control.NoticeMsg{Text: fmt.Sprintf("✅ Добавлено песен: %d", added)})
	}
	return nil
}

func (m *MainModel) closePrompt() {
	m.promptModel = nil
	m.currentScreen = m.previousScreen
	if m.currentScreen == PlayerScreen && m.playerModel == nil {
		m.currentScreen = TracklistScreen
	}
}

func (m *MainModel) showError(err error) tea.Cmd {
	var text string
	switch {
	case errors.Is(err, upload.ErrNothingToAdd):
		text = "⚠️ " + capitalize(err.Error())
	default:
		text = "❌ " + capitalize(err.Error())
	}
	return control.Send(control.NoticeMsg{Text: text, IsError: true})
}

// applyTheme передает новые стили всем экранам
func (m *MainModel) applyTheme() {
	styles := m.themes.Styles()
	m.tracklistModel.SetStyles(styles)
	if m.playerModel != nil {
		m.playerModel.SetStyles(styles)
	}
	if m.promptModel != nil {
		m.promptModel.SetStyles(styles)
	}
}

// toActive передает сообщение активному экрану
func (m *MainModel) toActive(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch m.currentScreen {
	case TracklistScreen:
		m.tracklistModel, cmd = m.tracklistModel.Update(msg)
	case PlayerScreen:
		cmd = m.toPlayer(msg)
	case PromptScreen:
		if m.promptModel != nil {
			m.promptModel, cmd = m.promptModel.Update(msg)
		}
	}
	return cmd
}

// toPlayer передает сообщение экрану плеера, если он существует
func (m *MainModel) toPlayer(msg tea.Msg) tea.Cmd {
	if m.playerModel == nil {
		return nil
	}
	updatedModel, cmd := m.playerModel.Update(msg)
	if playerModel, ok := updatedModel.(*tuiPlayer.Model); ok {
		m.playerModel = playerModel
	}
	return cmd
}

// broadcast передает размеры окна всем экранам
func (m *MainModel) broadcast(msg tea.WindowSizeMsg) tea.Cmd {
	var cmds []tea.Cmd
	var cmd tea.Cmd

	m.tracklistModel, cmd = m.tracklistModel.Update(msg)
	cmds = append(cmds, cmd)
	cmds = append(cmds, m.toPlayer(msg))
	if m.promptModel != nil {
		m.promptModel, cmd = m.promptModel.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// sizeCmd повторяет последний размер окна для только что созданного экрана
func (m *MainModel) sizeCmd() tea.Cmd {
	if m.width == 0 {
		return nil
	}
	return control.Send(tea.WindowSizeMsg{Width: m.width, Height: m.height})
}

// View отображает интерфейс
func (m *MainModel) View() string {
	var view string
	switch m.currentScreen {
	case TracklistScreen:
		view = m.tracklistModel.View()

	case PlayerScreen:
		if m.playerModel == nil {
			return "Ошибка: модель плеера не инициализирована"
		}
		view = m.playerModel.View()

	case PromptScreen:
		if m.promptModel == nil {
			return "Ошибка: модель ввода не инициализирована"
		}
		view = m.promptModel.View()

	default:
		return "Неизвестный экран"
	}

	styles := m.themes.Styles()
	if m.notice.Text != "" {
		style := styles.Notice
		if m.notice.IsError {
			style = styles.Error
		}
		view += "\n\n" + style.Render(m.notice.Text)
	}

	if m.width > 0 && m.height > 0 {
		return styles.Base.Width(m.width).Height(m.height).Render(view)
	}
	return view
}

// Notice возвращает текущее уведомление строки состояния
func (m *MainModel) Notice() control.NoticeMsg {
	return m.notice
}

// Screen возвращает активный экран
func (m *MainModel) Screen() ScreenType {
	return m.currentScreen
}

// Close закрывает ресурсы главной модели
func (m *MainModel) Close() {
	if m.globalPlayer != nil {
		m.globalPlayer.Close()
	}
}

// capitalize делает первую букву сообщения заглавной
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
