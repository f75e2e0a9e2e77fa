// Package visualizer рисует волновую форму звука в терминале
package visualizer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	// DefaultSamples количество отсчетов на кадр
	DefaultSamples = 1024
	// StrokeColor цвет линии волны
	StrokeColor = "#00ffff"

	point     = '•'
	connector = '│'
	blank     = ' '
)

// Waveform хранит последний кадр волновой формы
type Waveform struct {
	lines []string
	style lipgloss.Style
}

// NewWaveform создает пустую волновую форму
func NewWaveform() *Waveform {
	return &Waveform{
		style: lipgloss.NewStyle().Foreground(lipgloss.Color(StrokeColor)),
	}
}

// ToBytes переводит отсчеты [-1, 1] в беззнаковые байты, где 128 соответствует тишине
func ToBytes(samples []float64) []uint8 {
	data := make([]uint8, len(samples))
	for i, s := range samples {
		v := 128 + s*128
		switch {
		case v < 0:
			v = 0
		case v > 255:
			v = 255
		}
		data[i] = uint8(v)
	}
	return data
}

// Update перерисовывает кадр по отсчетам для области width x height
func (w *Waveform) Update(samples []float64, width, height int) {
	if width <= 0 || height <= 0 || len(samples) == 0 {
		w.Clear()
		return
	}

	grid := make([][]rune, height)
	for y := range grid {
		grid[y] = []rune(strings.Repeat(string(blank), width))
	}

	data := ToBytes(samples)
	prevY := -1
	for x := 0; x < width; x++ {
		i := x * len(data) / width
		v := float64(data[i]) / 128.0
		y := clampRow(int(v*float64(height)/2), height)

		if prevY >= 0 {
			connect(grid, x, prevY, y)
		}
		grid[y][x] = point
		prevY = y
	}

	// Линия заканчивается на середине области
	center := clampRow(height/2, height)
	connect(grid, width-1, prevY, center)
	if grid[center][width-1] == blank {
		grid[center][width-1] = point
	}

	w.lines = make([]string, height)
	for y, row := range grid {
		w.lines[y] = string(row)
	}
}

// connect заполняет столбец x между строками from и to вертикальной линией
func connect(grid [][]rune, x, from, to int) {
	if from > to {
		from, to = to, from
	}
	for y := from + 1; y < to; y++ {
		if grid[y][x] == blank {
			grid[y][x] = connector
		}
	}
}

func clampRow(y, height int) int {
	if y < 0 {
		return 0
	}
	if y >= height {
		return height - 1
	}
	return y
}

// Clear очищает кадр
func (w *Waveform) Clear() {
	w.lines = nil
}

// Lines возвращает строки кадра без стилей
func (w *Waveform) Lines() []string {
	return w.lines
}

// View возвращает кадр, окрашенный цветом линии
func (w *Waveform) View() string {
	if len(w.lines) == 0 {
		return ""
	}
	return w.style.Render(strings.Join(w.lines, "\n"))
}
