// Package tui содержит компоненты для текстового пользовательского интерфейса
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-pulse/internal/theme"
	"github.com/hazadus/go-pulse/internal/track"
	"github.com/hazadus/go-pulse/internal/tui/app"
)

// App представляет основное TUI приложение
type App struct {
	trackManager *track.Manager
	themes       *theme.Cycler
	options      app.Options
}

// NewApp создает новый экземпляр TUI приложения
func NewApp(trackManager *track.Manager, themes *theme.Cycler, options app.Options) *App {
	return &App{
		trackManager: trackManager,
		themes:       themes,
		options:      options,
	}
}

// Model создает главную модель Bubble Tea
func (tuiApp *App) Model() *app.MainModel {
	return app.NewMainModel(tuiApp.trackManager, tuiApp.themes, tuiApp.options)
}

// Run запускает TUI приложение
func (tuiApp *App) Run() error {
	model := tuiApp.Model()

	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()

	// Закрываем плеер после завершения программы
	model.Close()

	return err
}
