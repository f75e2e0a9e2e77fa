package player

import (
	"sync"

	"github.com/gopxl/beep"
)

// tap пропускает звук без изменений и запоминает последние отсчеты для визуализации.
// Stream вызывается из горутины динамиков, Snapshot из интерфейса.
type tap struct {
	streamer beep.Streamer
	mutex    sync.Mutex
	ring     []float64
	pos      int
	filled   bool
}

func newTap(streamer beep.Streamer, size int) *tap {
	return &tap{
		streamer: streamer,
		ring:     make([]float64, size),
	}
}

// Stream реализует beep.Streamer
func (t *tap) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = t.streamer.Stream(samples)

	t.mutex.Lock()
	for i := 0; i < n; i++ {
		t.ring[t.pos] = (samples[i][0] + samples[i][1]) / 2
		t.pos++
		if t.pos == len(t.ring) {
			t.pos = 0
			t.filled = true
		}
	}
	t.mutex.Unlock()

	return n, ok
}

// Err реализует beep.Streamer
func (t *tap) Err() error {
	return t.streamer.Err()
}

// Snapshot возвращает последние n моно-отсчетов от старых к новым.
// Недостающие отсчеты дополняются тишиной в начале.
func (t *tap) Snapshot(n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n > len(t.ring) {
		n = len(t.ring)
	}

	t.mutex.Lock()
	defer t.mutex.Unlock()

	result := make([]float64, n)
	available := t.pos
	if t.filled {
		available = len(t.ring)
	}
	if available > n {
		available = n
	}

	offset := n - available
	start := t.pos - available
	if start < 0 {
		start += len(t.ring)
	}
	for i := 0; i < available; i++ {
		result[offset+i] = t.ring[(start+i)%len(t.ring)]
	}
	return result
}
