package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-pulse/internal/theme"
	"github.com/hazadus/go-pulse/internal/tui"
	tuiapp "github.com/hazadus/go-pulse/internal/tui/app"
	tuiPlayer "github.com/hazadus/go-pulse/internal/tui/player"
)

// createTUICommand создает команду tui с привязкой к экземпляру приложения
func (app *Application) createTUICommand(ctx context.Context) *cobra.Command {
	var opts sourceOptions

	cmd := &cobra.Command{
		Use:   "tui [files, directories or URLs...]",
		Short: "Launch TUI (Terminal User Interface)",
		Long: `Launch interactive terminal user interface for managing playlists and playing songs.
Given files, directories and URLs are added to the selected playlist first.`,
		RunE: func(_ *cobra.Command, args []string) error {
			if err := app.fillPlaylist(ctx, opts, args); err != nil {
				return err
			}
			return app.launchTUI()
		},
	}
	bindSourceFlags(cmd, &opts)

	return cmd
}

// newTUI собирает TUI приложение из конфигурации
func (app *Application) newTUI() *tui.App {
	viz := app.Config.Visualizer
	return tui.NewApp(app.Manager, theme.NewCycler(app.Config.Themes), tuiapp.Options{
		MusicDir: app.Config.MusicDir,
		Visualizer: tuiPlayer.VisualizerOptions{
			Samples: viz.Samples,
			FPS:     viz.FPS,
			Height:  viz.Height,
		},
	})
}

func (app *Application) launchTUI() error {
	return app.newTUI().Run()
}
