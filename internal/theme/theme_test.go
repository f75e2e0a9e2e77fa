package theme

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestCyclerWraps(t *testing.T) {
	c := NewCycler(nil)

	if c.Len() != 3 {
		t.Fatalf("Ожидалось 3 встроенные темы, получено %d", c.Len())
	}
	if c.Current().Background != "#0d1b2a" {
		t.Errorf("Первая тема: неожиданный фон %s", c.Current().Background)
	}

	expected := []string{"#ffedd5", "#e0f7fa", "#0d1b2a", "#ffedd5"}
	for i, bg := range expected {
		got := c.Next()
		if got.Background != bg {
			t.Errorf("Шаг %d: ожидался фон %s, получено %s", i, bg, got.Background)
		}
		if c.Current() != got {
			t.Errorf("Шаг %d: Current() не совпадает с результатом Next()", i)
		}
	}
	if c.Index() != 1 {
		t.Errorf("Ожидался индекс 1, получено %d", c.Index())
	}
}

func TestCyclerCustomThemes(t *testing.T) {
	themes := []Theme{{Background: "#000000", Text: "#ffffff", Accent: "#ff0000"}}
	c := NewCycler(themes)

	themes[0].Background = "#111111"
	if c.Current().Background != "#000000" {
		t.Error("Переключатель должен хранить собственную копию списка тем")
	}

	if c.Next() != c.Current() || c.Index() != 0 {
		t.Error("Единственная тема должна переключаться сама на себя")
	}
}

func TestStylesRebuiltAfterNext(t *testing.T) {
	c := NewCycler(nil)

	first := c.Styles()
	if c.Styles() != first {
		t.Error("Стили должны кэшироваться до переключения темы")
	}

	c.Next()
	second := c.Styles()
	if second == first {
		t.Error("После переключения темы стили должны пересобираться")
	}
	if second.Playing.GetForeground() != lipgloss.Color(c.Current().Accent) {
		t.Errorf("Стиль Playing должен использовать акцентный цвет %s", c.Current().Accent)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		theme Theme
		valid bool
	}{
		{Theme{Background: "#0d1b2a", Text: "#f8f9fa", Accent: "#1e6091"}, true},
		{Theme{Background: "#0D1B2A", Text: "#F8F9FA", Accent: "#1E6091"}, true},
		{Theme{Background: "0d1b2a", Text: "#f8f9fa", Accent: "#1e6091"}, false},
		{Theme{Background: "#0d1b2a", Text: "#fff", Accent: "#1e6091"}, false},
		{Theme{Background: "#0d1b2a", Text: "#f8f9fa", Accent: ""}, false},
	}

	for _, test := range tests {
		err := test.theme.Validate()
		if (err == nil) != test.valid {
			t.Errorf("Validate(%v) = %v, ожидалась валидность %v", test.theme, err, test.valid)
		}
	}
}

func TestBlend(t *testing.T) {
	if got := Blend("#000000", "#ffffff", 0); got != lipgloss.Color("#000000") {
		t.Errorf("Blend с долей 0 должен вернуть первый цвет, получено %s", got)
	}
	if got := Blend("#000000", "#ffffff", 1); got != lipgloss.Color("#ffffff") {
		t.Errorf("Blend с долей 1 должен вернуть второй цвет, получено %s", got)
	}
	if got := Blend("black", "#ffffff", 0.5); got != lipgloss.Color("black") {
		t.Errorf("Для некорректного цвета ожидался исходный цвет, получено %s", got)
	}

	mid := string(Blend("#0d1b2a", "#f8f9fa", 0.5))
	if mid == "#0d1b2a" || mid == "#f8f9fa" || !hexColor.MatchString(mid) {
		t.Errorf("Ожидался промежуточный цвет #rrggbb, получено %s", mid)
	}
}

func TestMutedStyleBlendsTextWithBackground(t *testing.T) {
	c := NewCycler(nil)
	muted := c.Styles().Muted.GetForeground()
	if muted == lipgloss.Color(c.Current().Text) || muted == lipgloss.Color(c.Current().Background) {
		t.Errorf("Приглушенный цвет должен отличаться от текста и фона, получено %v", muted)
	}
}
