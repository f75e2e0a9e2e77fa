// Package player содержит компоненты для управления воспроизведением аудио
package player

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/mp3"
	"github.com/gopxl/beep/speaker"

	"github.com/hazadus/go-pulse/internal/playlist"
	"github.com/hazadus/go-pulse/internal/streaming"
)

// ErrNoFile возвращается при попытке воспроизвести заглушку
var ErrNoFile = errors.New("у песни нет файла для воспроизведения")

// tapSize размер буфера отсчетов для визуализатора
const tapSize = 4096

// Status представляет текущий статус плеера
type Status struct {
	Current   time.Duration // Текущая позиция
	Total     time.Duration // Общая продолжительность
	IsPlaying bool          // Воспроизводится ли песня
}

// Player управляет воспроизведением песен
type Player struct {
	// Каналы для обратной связи
	progressChan chan Status
	doneChan     chan string

	// Внутреннее состояние
	ctx         context.Context
	cancel      context.CancelFunc
	mutex       sync.RWMutex
	sampleRate  beep.SampleRate
	isPaused    bool
	currentSong *playlist.Song

	// Компоненты для воспроизведения
	streamer beep.StreamSeekCloser
	ctrl     *beep.Ctrl
	tap      *tap
}

// NewPlayer создает новый экземпляр плеера
func NewPlayer() *Player {
	ctx, cancel := context.WithCancel(context.Background())
	return &Player{
		progressChan: make(chan Status, 1),
		doneChan:     make(chan string, 1),
		ctx:          ctx,
		cancel:       cancel,
	}
}

// Progress возвращает канал для получения обновлений прогресса
func (p *Player) Progress() <-chan Status {
	return p.progressChan
}

// Done возвращает канал, в который приходит дескриптор доигранной песни
func (p *Player) Done() <-chan string {
	return p.doneChan
}

// Play начинает воспроизведение песни из локального файла или по URL
func (p *Player) Play(song playlist.Song) error {
	if song.IsPlaceholder() {
		return ErrNoFile
	}

	p.mutex.Lock()
	defer p.mutex.Unlock()

	// Останавливаем текущее воспроизведение, если есть
	p.stopInternal()

	// Сигнал о конце предыдущей песни больше не актуален
	select {
	case <-p.doneChan:
	default:
	}

	source, err := p.open(song.File)
	if err != nil {
		return err
	}

	// Декодируем MP3
	streamer, format, err := mp3.Decode(source)
	if err != nil {
		source.Close()
		return fmt.Errorf("ошибка декодирования MP3: %w", err)
	}

	// Инициализируем speaker (только один раз)
	if p.sampleRate == 0 {
		err = speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/5))
		if err != nil {
			streamer.Close()
			return fmt.Errorf("ошибка инициализации динамиков: %w", err)
		}
		p.sampleRate = format.SampleRate
	}

	// Песни с другой частотой дискретизации приводим к частоте динамиков
	var output beep.Streamer = streamer
	if format.SampleRate != p.sampleRate {
		output = beep.Resample(4, format.SampleRate, p.sampleRate, streamer)
	}

	p.streamer = streamer
	p.tap = newTap(output, tapSize)
	p.ctrl = &beep.Ctrl{
		Streamer: p.tap,
		Paused:   false,
	}
	p.isPaused = false
	p.currentSong = &song

	// Запускаем воспроизведение
	// Колбэк выполняется под блокировкой динамиков, а Stop и Pause берут сначала мьютекс плеера
	speaker.Play(beep.Seq(p.ctrl, beep.Callback(func() {
		go p.finish(song.ID, streamer)
	})))

	// Запускаем мониторинг прогресса в отдельной горутине
	go p.monitorProgress(format, p.streamer)

	return nil
}

// finish освобождает доигранную песню и сообщает о ее завершении.
// Если за это время была запущена другая песня, ничего не делает.
func (p *Player) finish(id string, streamer beep.StreamSeekCloser) {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.streamer != streamer {
		return
	}

	// Последовательность уже отыграна, динамики отпустят ее сами
	p.ctrl = nil
	p.stopInternal()

	select {
	case p.doneChan <- id:
	default:
	}
}

// open открывает источник звука: URL читается потоково, остальное считается путем к файлу
func (p *Player) open(file string) (io.ReadCloser, error) {
	if streaming.IsURL(file) {
		const bufferSize = 256 * 1024 // 256KB буфер
		reader, err := streaming.NewReader(p.ctx, file, bufferSize)
		if err != nil {
			return nil, fmt.Errorf("ошибка создания потокового ридера: %w", err)
		}
		if !reader.IsAudio() {
			reader.Close()
			return nil, fmt.Errorf("по ссылке %s находится не аудио", file)
		}
		return reader, nil
	}

	f, err := os.Open(file)
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	return f, nil
}

// Pause приостанавливает или возобновляет воспроизведение
func (p *Player) Pause() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.ctrl != nil {
		speaker.Lock()
		p.isPaused = !p.isPaused
		p.ctrl.Paused = p.isPaused
		speaker.Unlock()
	}
}

// Stop останавливает воспроизведение
func (p *Player) Stop() {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.stopInternal()
}

// stopInternal внутренний метод остановки (должен вызываться под мьютексом)
func (p *Player) stopInternal() {
	if p.ctrl != nil {
		speaker.Clear()
		p.ctrl = nil
	}

	// Закрытие декодера закрывает и источник
	if p.streamer != nil {
		p.streamer.Close()
		p.streamer = nil
	}

	p.tap = nil
	p.currentSong = nil
	p.isPaused = false
}

// Close закрывает плеер и освобождает ресурсы
func (p *Player) Close() error {
	p.cancel()
	p.Stop()
	return nil
}

// IsPlaying возвращает true, если песня воспроизводится
func (p *Player) IsPlaying() bool {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return p.ctrl != nil && !p.isPaused
}

// CurrentSong возвращает песню, которая сейчас загружена в плеер
func (p *Player) CurrentSong() *playlist.Song {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return p.currentSong
}

// Samples возвращает последние n отсчетов воспроизводимого звука.
// Если ничего не играет, возвращает nil.
func (p *Player) Samples(n int) []float64 {
	p.mutex.RLock()
	t := p.tap
	p.mutex.RUnlock()

	if t == nil {
		return nil
	}
	return t.Snapshot(n)
}

// monitorProgress мониторит прогресс воспроизведения и отправляет обновления
func (p *Player) monitorProgress(format beep.Format, streamer beep.StreamSeekCloser) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			p.mutex.RLock()

			// Песня сменилась или остановлена
			if p.streamer != streamer || p.ctrl == nil {
				p.mutex.RUnlock()
				return
			}

			speaker.Lock()
			currentPos := format.SampleRate.D(streamer.Position())
			totalLen := format.SampleRate.D(streamer.Len())
			currentPauseState := p.isPaused
			speaker.Unlock()

			p.mutex.RUnlock()

			status := Status{
				Current:   currentPos,
				Total:     totalLen,
				IsPlaying: !currentPauseState,
			}

			select {
			case p.progressChan <- status:
			default:
				// Если канал заблокирован, пропускаем обновление
			}
		}
	}
}
