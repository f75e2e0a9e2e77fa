package visualizer

import (
	"strings"
	"testing"
)

func TestToBytes(t *testing.T) {
	tests := []struct {
		sample   float64
		expected uint8
	}{
		{0, 128},
		{-1, 0},
		{1, 255},
		{0.5, 192},
		{-0.5, 64},
		{2, 255},
		{-3, 0},
	}

	for _, test := range tests {
		got := ToBytes([]float64{test.sample})[0]
		if got != test.expected {
			t.Errorf("ToBytes(%v) = %d; expected %d", test.sample, got, test.expected)
		}
	}
}

func TestSilenceDrawsCenterLine(t *testing.T) {
	w := NewWaveform()
	w.Update(make([]float64, DefaultSamples), 10, 8)

	lines := w.Lines()
	if len(lines) != 8 {
		t.Fatalf("Ожидалось 8 строк, получено %d", len(lines))
	}
	for y, line := range lines {
		var expected string
		if y == 4 {
			expected = strings.Repeat("•", 10)
		} else {
			expected = strings.Repeat(" ", 10)
		}
		if line != expected {
			t.Errorf("Строка %d = %q; expected %q", y, line, expected)
		}
	}
}

func TestUpdateConnectsPoints(t *testing.T) {
	w := NewWaveform()
	// Первая половина у нижней границы, вторая у верхней
	samples := []float64{1, 1, -1, -1}
	w.Update(samples, 4, 6)

	lines := w.Lines()
	column := func(x int) string {
		var b strings.Builder
		for _, line := range lines {
			b.WriteRune([]rune(line)[x])
		}
		return b.String()
	}

	if got := column(0); got != "     •" {
		t.Errorf("Столбец 0 = %q", got)
	}
	if got := column(2); got != "•││││ " {
		t.Errorf("Столбец 2 должен соединять точки, получено %q", got)
	}
	// Последний столбец опускается к середине
	if got := column(3); got != "•││•  " {
		t.Errorf("Столбец 3 = %q", got)
	}
}

func TestUpdateWithEmptyInputClears(t *testing.T) {
	w := NewWaveform()
	w.Update(make([]float64, 16), 4, 4)
	if w.View() == "" {
		t.Fatal("Ожидался непустой кадр")
	}

	w.Update(nil, 4, 4)
	if w.View() != "" || w.Lines() != nil {
		t.Error("Пустые отсчеты должны очищать кадр")
	}

	w.Update(make([]float64, 16), 4, 4)
	w.Update(make([]float64, 16), 0, 4)
	if w.View() != "" {
		t.Error("Нулевая ширина должна очищать кадр")
	}
}

func TestClear(t *testing.T) {
	w := NewWaveform()
	w.Update(make([]float64, 16), 8, 4)

	w.Clear()

	if w.View() != "" {
		t.Error("После Clear кадр должен быть пустым")
	}
}
