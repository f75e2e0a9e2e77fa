// Package theme содержит набор цветовых тем и их циклическое переключение
package theme

import (
	"fmt"
	"regexp"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// mutedBlend доля фона в приглушенном цвете текста
const mutedBlend = 0.45

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// Theme тройка цветов: фон, текст, акцент
type Theme struct {
	Background string `yaml:"background"`
	Text       string `yaml:"text"`
	Accent     string `yaml:"accent"`
}

// Validate проверяет, что все цвета заданы в формате #rrggbb
func (t Theme) Validate() error {
	for _, c := range []string{t.Background, t.Text, t.Accent} {
		if !hexColor.MatchString(c) {
			return fmt.Errorf("неверный цвет темы: %q", c)
		}
	}
	return nil
}

// Defaults возвращает встроенные темы
func Defaults() []Theme {
	return []Theme{
		{Background: "#0d1b2a", Text: "#f8f9fa", Accent: "#1e6091"},
		{Background: "#ffedd5", Text: "#4b2e2e", Accent: "#ff5722"},
		{Background: "#e0f7fa", Text: "#004d40", Accent: "#009688"},
	}
}

// Styles набор готовых стилей lipgloss для текущей темы
type Styles struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Item     lipgloss.Style
	Selected lipgloss.Style
	Playing  lipgloss.Style
	Muted    lipgloss.Style
	Notice   lipgloss.Style
	Error    lipgloss.Style
}

// Cycler переключает темы по кругу
type Cycler struct {
	themes []Theme
	index  int
	styles *Styles
}

// NewCycler создает переключатель. Пустой список заменяется встроенными темами.
func NewCycler(themes []Theme) *Cycler {
	if len(themes) == 0 {
		themes = Defaults()
	}
	list := make([]Theme, len(themes))
	copy(list, themes)
	return &Cycler{themes: list}
}

// Next переключает на следующую тему и возвращает ее
func (c *Cycler) Next() Theme {
	c.index = (c.index + 1) % len(c.themes)
	c.styles = nil
	return c.themes[c.index]
}

// Current возвращает активную тему
func (c *Cycler) Current() Theme {
	return c.themes[c.index]
}

// Index возвращает номер активной темы
func (c *Cycler) Index() int {
	return c.index
}

// Len возвращает количество тем
func (c *Cycler) Len() int {
	return len(c.themes)
}

// Styles возвращает стили активной темы, пересобирая их после переключения
func (c *Cycler) Styles() *Styles {
	if c.styles == nil {
		c.styles = build(c.Current())
	}
	return c.styles
}

func build(t Theme) *Styles {
	bg := lipgloss.Color(t.Background)
	fg := lipgloss.Color(t.Text)
	accent := lipgloss.Color(t.Accent)

	base := lipgloss.NewStyle().Foreground(fg).Background(bg)

	return &Styles{
		Base:     base,
		Title:    lipgloss.NewStyle().Foreground(bg).Background(accent).Bold(true).Padding(0, 1),
		Item:     lipgloss.NewStyle().Foreground(fg).PaddingLeft(4),
		Selected: lipgloss.NewStyle().Foreground(accent).Bold(true).PaddingLeft(2),
		Playing:  lipgloss.NewStyle().Foreground(accent).Bold(true),
		Muted:    lipgloss.NewStyle().Foreground(Blend(t.Text, t.Background, mutedBlend)),
		Notice:   lipgloss.NewStyle().Foreground(accent).Italic(true),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5555")).Bold(true),
	}
}

// Blend смешивает два цвета #rrggbb в пространстве HCL.
// При некорректном цвете возвращается первый цвет без изменений.
func Blend(from, to string, ratio float64) lipgloss.Color {
	c1, err := colorful.Hex(from)
	if err != nil {
		return lipgloss.Color(from)
	}
	c2, err := colorful.Hex(to)
	if err != nil {
		return lipgloss.Color(from)
	}
	return lipgloss.Color(c1.BlendHcl(c2, ratio).Clamped().Hex())
}
