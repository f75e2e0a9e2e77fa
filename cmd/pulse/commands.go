package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/hazadus/go-pulse/internal/config"
)

// createRootCommand создает корневую команду с настроенными подкомандами
func (app *Application) createRootCommand(ctx context.Context) *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "pulse",
		Short: "Terminal playlist manager with a pulse visualizer",
		Long: `Pulse manages named playlists of local files, URLs and S3 objects,
plays them in the terminal and draws the waveform of the playing song.`,
		SilenceUsage: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return app.loadConfig(configPath)
		},
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath, "путь к файлу конфигурации")

	// Добавляем команды, передавая в них экземпляр приложения и контекст
	rootCmd.AddCommand(app.createTUICommand(ctx))
	rootCmd.AddCommand(app.createListCommand(ctx))
	rootCmd.AddCommand(app.createThemesCommand())
	rootCmd.AddCommand(app.createPushCommand(ctx))
	rootCmd.AddCommand(app.createBucketCommand(ctx))

	return rootCmd
}
