package main

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/hazadus/go-pulse/internal/metadata"
	"github.com/hazadus/go-pulse/internal/playlist"
	"github.com/hazadus/go-pulse/internal/streaming"
	"github.com/hazadus/go-pulse/internal/utils"
)

// createListCommand создает команду list с привязкой к экземпляру приложения
func (app *Application) createListCommand(ctx context.Context) *cobra.Command {
	var (
		opts    sourceOptions
		details bool
	)

	cmd := &cobra.Command{
		Use:   "list [files, directories or URLs...]",
		Short: "List all playlists and their songs",
		Long:  `Display every playlist with its songs. Given sources are added to the selected playlist first.`,
		RunE: func(_ *cobra.Command, args []string) error {
			if err := app.fillPlaylist(ctx, opts, args); err != nil {
				return err
			}
			app.listPlaylists(details)
			return nil
		},
	}
	bindSourceFlags(cmd, &opts)
	cmd.Flags().BoolVarP(&details, "details", "d", false, "показать размер и длительность локальных файлов")

	return cmd
}

func (app *Application) listPlaylists(details bool) {
	names := app.Library.Names()
	fmt.Printf("📚 Плейлистов: %d\n", len(names))

	extractor := metadata.NewExtractor()
	for _, name := range names {
		pl, _ := app.Library.Get(name)

		marker := " "
		if name == app.Library.ActiveName() {
			marker = "▶"
		}
		fmt.Printf("\n%s %s (%d)\n", marker, name, pl.Len())

		if pl.IsEmpty() {
			fmt.Println("   Плейлист пуст")
			continue
		}

		current, hasCurrent := pl.Current()
		for i, song := range pl.Songs() {
			cursor := " "
			if hasCurrent && song.ID == current.ID {
				cursor = "•"
			}
			fmt.Printf(" %s %3d. %-40s %s\n",
				cursor, i+1, utils.TruncateString(song.Name, 40), describeSource(extractor, song, details))
		}
	}

	fmt.Println()
	fmt.Println("💡 Используйте 'pulse tui' для воспроизведения")
}

// describeSource возвращает описание источника песни для вывода
func describeSource(extractor *metadata.Extractor, song playlist.Song, details bool) string {
	switch {
	case song.IsPlaceholder():
		return "💤 заглушка"
	case streaming.IsURL(song.File):
		return "🌐 " + song.File
	case !details:
		return "📁 " + song.File
	}

	info, err := extractor.GetFileInfo(song.File)
	if err != nil {
		return "📁 " + song.File + " (N/A)"
	}
	return fmt.Sprintf("📁 %s (%s, %s)", song.File, humanize.Bytes(uint64(info.Size)), utils.FormatDuration(info.Duration))
}
