// Package control содержит сообщения, общие для всех экранов TUI
package control

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-pulse/internal/track"
)

// AdvanceMsg просит перейти к соседней песне
type AdvanceMsg struct {
	Direction track.Direction
}

// ShuffleMsg просит включить случайную песню
type ShuffleMsg struct{}

// ToggleThemeMsg просит переключить тему
type ToggleThemeMsg struct{}

// NoticeMsg выводит уведомление в строке состояния
type NoticeMsg struct {
	Text    string
	IsError bool
}

// Send оборачивает сообщение в команду
func Send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return msg
	}
}

// HandleKey переводит общие клавиши управления в сообщения.
// Возвращает nil, если клавиша не относится к управлению.
func HandleKey(key string) tea.Cmd {
	switch key {
	case "n":
		return Send(AdvanceMsg{Direction: track.Next})
	case "p":
		return Send(AdvanceMsg{Direction: track.Previous})
	case "s":
		return Send(ShuffleMsg{})
	case "t":
		return Send(ToggleThemeMsg{})
	}
	return nil
}
