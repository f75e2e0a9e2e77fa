// Package player содержит модель экрана воспроизведения для TUI
package player

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-pulse/internal/metadata"
	"github.com/hazadus/go-pulse/internal/player"
	"github.com/hazadus/go-pulse/internal/playlist"
	"github.com/hazadus/go-pulse/internal/theme"
	"github.com/hazadus/go-pulse/internal/tui/control"
	"github.com/hazadus/go-pulse/internal/utils"
	"github.com/hazadus/go-pulse/internal/visualizer"
)

const defaultWaveWidth = 60

// GoBackMsg отправляется для возврата к списку песен
type GoBackMsg struct{}

// ProgressMsg содержит обновления прогресса воспроизведения
type ProgressMsg struct {
	Status player.Status
}

// PlaybackFinishedMsg отправляется, когда песня доиграла до конца
type PlaybackFinishedMsg struct {
	ID string
}

// PlaybackStartedMsg отправляется после успешного запуска песни
type PlaybackStartedMsg struct {
	ID string
}

// PlaybackErrorMsg отправляется при ошибке воспроизведения
type PlaybackErrorMsg struct {
	ID    string
	Error error
}

// VizTickMsg кадр визуализатора
type VizTickMsg time.Time

// VisualizerOptions параметры панели визуализатора
type VisualizerOptions struct {
	Samples int
	FPS     int
	Height  int
}

// Model представляет модель экрана воспроизведения
type Model struct {
	song        playlist.Song
	tags        metadata.Tags
	player      *player.Player
	progressBar progress.Model
	waveform    *visualizer.Waveform
	viz         VisualizerOptions
	styles      *theme.Styles
	status      player.Status
	isPlaying   bool
	finished    bool
	error       error
	width       int
	height      int
}

// NewModel создает модель экрана для песни с использованием общего плеера
func NewModel(song playlist.Song, tags metadata.Tags, existingPlayer *player.Player, styles *theme.Styles, viz VisualizerOptions) *Model {
	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 40

	return &Model{
		song:        song,
		tags:        tags,
		player:      existingPlayer,
		progressBar: prog,
		waveform:    visualizer.NewWaveform(),
		viz:         viz,
		styles:      styles,
	}
}

// Song возвращает песню экрана
func (m *Model) Song() playlist.Song {
	return m.song
}

// SetStyles применяет стили новой темы
func (m *Model) SetStyles(styles *theme.Styles) {
	m.styles = styles
}

// SyncStatus перечитывает состояние паузы из плеера
func (m *Model) SyncStatus() {
	m.isPlaying = m.player.IsPlaying()
	if !m.isPlaying {
		m.waveform.Clear()
	}
}

// Init запускает воспроизведение
func (m *Model) Init() tea.Cmd {
	return m.startPlayback()
}

// Tick планирует следующий кадр визуализатора
func Tick(fps int) tea.Cmd {
	if fps <= 0 {
		fps = 30
	}
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg {
		return VizTickMsg(t)
	})
}

// ListenForProgress ждет следующего события от плеера
func ListenForProgress(p *player.Player) tea.Cmd {
	return func() tea.Msg {
		select {
		case status := <-p.Progress():
			return ProgressMsg{Status: status}
		case id := <-p.Done():
			return PlaybackFinishedMsg{ID: id}
		}
	}
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.progressBar.Width = min(60, msg.Width-10)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc":
			return m, control.Send(GoBackMsg{})

		case " ":
			if m.error != nil || m.finished {
				return m, nil
			}
			m.player.Pause()
			m.SyncStatus()
			return m, nil
		}
		return m, control.HandleKey(msg.String())

	case PlaybackStartedMsg:
		if msg.ID == m.song.ID {
			m.isPlaying = true
			m.finished = false
		}
		return m, nil

	case ProgressMsg:
		if m.finished {
			return m, nil
		}
		m.status = msg.Status
		m.isPlaying = msg.Status.IsPlaying

		var percent float64
		if msg.Status.Total > 0 {
			percent = float64(msg.Status.Current) / float64(msg.Status.Total)
		}
		return m, m.progressBar.SetPercent(percent)

	case PlaybackFinishedMsg:
		if msg.ID != m.song.ID {
			return m, nil
		}
		m.isPlaying = false
		m.finished = true
		m.waveform.Clear()
		return m, m.progressBar.SetPercent(1)

	case PlaybackErrorMsg:
		if msg.ID != m.song.ID {
			return m, nil
		}
		m.error = msg.Error
		m.isPlaying = false
		m.waveform.Clear()
		return m, nil

	case VizTickMsg:
		m.refreshWaveform()
		return m, nil

	case progress.FrameMsg:
		progressModel, cmd := m.progressBar.Update(msg)
		m.progressBar = progressModel.(progress.Model)
		return m, cmd
	}

	return m, nil
}

// refreshWaveform перерисовывает волну по последним отсчетам плеера
func (m *Model) refreshWaveform() {
	if !m.isPlaying {
		m.waveform.Clear()
		return
	}

	width := defaultWaveWidth
	if m.width > 0 {
		width = max(10, m.width-4)
	}
	m.waveform.Update(m.player.Samples(m.viz.Samples), width, m.viz.Height)
}

// View отображает модель
func (m *Model) View() string {
	if m.error != nil {
		return fmt.Sprintf(
			"%s\n\n%s\n\n%s",
			m.styles.Title.Render("❌ Ошибка воспроизведения"),
			m.styles.Error.Render(m.error.Error()),
			m.styles.Muted.Render("n/p: след./пред. • q/esc: назад к списку"),
		)
	}

	title := m.styles.Title.Render("🎵 Сейчас играет: " + m.song.Name)

	album := m.tags.Album
	if album == "" {
		album = "—"
	}
	trackInfo := m.styles.Muted.Render(fmt.Sprintf(
		"🎤 %s\n🎵 %s\n💿 %s",
		m.tags.Artist,
		m.tags.Title,
		album,
	))

	statusText := m.styles.Playing.Render(formatStatus(m.isPlaying, m.finished))

	timeText := fmt.Sprintf(
		"%s / %s",
		utils.FormatDuration(m.status.Current),
		utils.FormatDuration(m.status.Total),
	)

	controls := m.styles.Muted.Render(
		"Пробел: пауза/воспроизведение • n/p: след./пред. • s: случайная • t: тема • q/esc: назад",
	)

	return fmt.Sprintf(
		"%s\n\n%s\n\n%s\n\n%s\n%s\n\n%s\n\n%s",
		title,
		trackInfo,
		statusText,
		m.progressBar.View(),
		timeText,
		m.waveform.View(),
		controls,
	)
}

// startPlayback запускает воспроизведение песни
func (m *Model) startPlayback() tea.Cmd {
	song := m.song
	p := m.player
	return func() tea.Msg {
		if err := p.Play(song); err != nil {
			return PlaybackErrorMsg{ID: song.ID, Error: err}
		}
		return PlaybackStartedMsg{ID: song.ID}
	}
}

func formatStatus(isPlaying, finished bool) string {
	switch {
	case finished:
		return "⏹️ Завершено"
	case isPlaying:
		return "▶️ Воспроизведение"
	default:
		return "⏸️ Пауза"
	}
}
