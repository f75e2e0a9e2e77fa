package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/hazadus/go-pulse/internal/theme"
)

// createThemesCommand создает команду themes с привязкой к экземпляру приложения
func (app *Application) createThemesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "Show configured color themes",
		Long:  `Display the color themes cycled by the 't' key in the TUI.`,
		Run: func(_ *cobra.Command, _ []string) {
			app.listThemes()
		},
	}
}

func (app *Application) listThemes() {
	cycler := theme.NewCycler(app.Config.Themes)
	fmt.Printf("🌈 Тем: %d\n\n", cycler.Len())

	for i := 0; i < cycler.Len(); i++ {
		t := cycler.Current()
		sample := lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Text)).
			Background(lipgloss.Color(t.Background)).
			Render(" Aa ")
		accent := lipgloss.NewStyle().
			Background(lipgloss.Color(t.Accent)).
			Render("  ")

		fmt.Printf("%d. фон %s • текст %s • акцент %s %s%s\n",
			i+1, t.Background, t.Text, t.Accent, sample, accent)
		cycler.Next()
	}
}
