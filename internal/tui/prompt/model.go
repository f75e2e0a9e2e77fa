// Package prompt содержит экран ввода одной строки для TUI
package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-pulse/internal/theme"
)

// Kind определяет, что именно запрашивает экран
type Kind int

const (
	// CreatePlaylist имя нового плейлиста
	CreatePlaylist Kind = iota
	// AddFiles путь к файлу, директории или ссылка
	AddFiles
)

// OpenMsg просит открыть экран ввода
type OpenMsg struct {
	Kind Kind
}

// SubmitMsg отправляется при подтверждении ввода
type SubmitMsg struct {
	Kind  Kind
	Value string
}

// CancelMsg отправляется при отмене ввода
type CancelMsg struct{}

// Model представляет модель экрана ввода
type Model struct {
	kind   Kind
	input  textinput.Model
	styles *theme.Styles
	err    string
}

// NewModel создает экран ввода. initial подставляется в поле заранее.
func NewModel(kind Kind, initial string, styles *theme.Styles) *Model {
	input := textinput.New()
	input.Prompt = "› "
	input.CharLimit = 512
	input.Width = 60
	input.SetValue(initial)
	input.Focus()

	switch kind {
	case CreatePlaylist:
		input.Placeholder = "Введите имя плейлиста"
	case AddFiles:
		input.Placeholder = "Путь к файлу, директории или ссылка"
	}

	m := &Model{kind: kind, input: input}
	m.SetStyles(styles)
	return m
}

// Kind возвращает тип запроса
func (m *Model) Kind() Kind {
	return m.kind
}

// Value возвращает текущее значение поля
func (m *Model) Value() string {
	return m.input.Value()
}

// SetStyles применяет стили темы
func (m *Model) SetStyles(styles *theme.Styles) {
	m.styles = styles
	m.input.PromptStyle = styles.Playing
	m.input.TextStyle = styles.Base
}

// Init инициализирует модель
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update обрабатывает сообщения и обновляет модель
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return m, func() tea.Msg {
				return CancelMsg{}
			}

		case "enter":
			value := strings.TrimSpace(m.input.Value())
			if value == "" {
				m.err = "Значение не может быть пустым"
				return m, nil
			}
			return m, func() tea.Msg {
				return SubmitMsg{Kind: m.kind, Value: value}
			}
		}

	case tea.WindowSizeMsg:
		m.input.Width = max(10, msg.Width-10)
		return m, nil
	}

	m.err = ""
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View отображает модель
func (m *Model) View() string {
	var b strings.Builder

	title := "➕ Новый плейлист"
	if m.kind == AddFiles {
		title = "📂 Добавить песни"
	}
	b.WriteString(m.styles.Title.Render(title))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")

	if m.err != "" {
		b.WriteString(m.styles.Error.Render(m.err))
		b.WriteString("\n\n")
	}

	b.WriteString(m.styles.Muted.Render("Enter: подтвердить • Esc: отмена"))
	return b.String()
}
