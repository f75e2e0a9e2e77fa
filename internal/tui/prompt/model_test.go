package prompt

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hazadus/go-pulse/internal/theme"
)

func newTestModel(kind Kind, initial string) *Model {
	return NewModel(kind, initial, theme.NewCycler(nil).Styles())
}

func TestSubmit(t *testing.T) {
	model := newTestModel(CreatePlaylist, "  Road trip ")

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("Ожидалась команда после Enter")
	}

	msg, ok := cmd().(SubmitMsg)
	if !ok {
		t.Fatalf("Ожидалось SubmitMsg, получено %T", cmd())
	}
	if msg.Kind != CreatePlaylist || msg.Value != "Road trip" {
		t.Errorf("Неверное сообщение: %+v", msg)
	}
}

func TestSubmitEmpty(t *testing.T) {
	model := newTestModel(AddFiles, "   ")

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Error("Пустое значение не должно отправляться")
	}
	if !strings.Contains(model.View(), "не может быть пустым") {
		t.Error("Ожидалось сообщение об ошибке в представлении")
	}
}

func TestCancel(t *testing.T) {
	model := newTestModel(AddFiles, "/music")

	_, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("Ожидалась команда после Esc")
	}
	if _, ok := cmd().(CancelMsg); !ok {
		t.Errorf("Ожидалось CancelMsg, получено %T", cmd())
	}
}

func TestTyping(t *testing.T) {
	model := newTestModel(CreatePlaylist, "")

	model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("Jazz")})
	if model.Value() != "Jazz" {
		t.Errorf("Ожидалось значение Jazz, получено %q", model.Value())
	}
	if model.Kind() != CreatePlaylist {
		t.Error("Тип запроса не должен меняться")
	}
	if !strings.Contains(model.View(), "Новый плейлист") {
		t.Error("Ожидался заголовок нового плейлиста")
	}
}
