package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/promocal/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Palette is one set of theme colors.
type Palette struct {
	Green  lipgloss.Color
	Yellow lipgloss.Color
	Red    lipgloss.Color
	Blue   lipgloss.Color
	Purple lipgloss.Color
	Dim    lipgloss.Color
	Fg     lipgloss.Color
	Header lipgloss.Color
}

// Gruvbox-inspired palettes.
var (
	DarkPalette = Palette{
		Green:  lipgloss.Color("#8ec07c"),
		Yellow: lipgloss.Color("#fabd2f"),
		Red:    lipgloss.Color("#fb4934"),
		Blue:   lipgloss.Color("#83a598"),
		Purple: lipgloss.Color("#d3869b"),
		Dim:    lipgloss.Color("#928374"),
		Fg:     lipgloss.Color("#ebdbb2"),
		Header: lipgloss.Color("#fe8019"),
	}
	LightPalette = Palette{
		Green:  lipgloss.Color("#427b58"),
		Yellow: lipgloss.Color("#b57614"),
		Red:    lipgloss.Color("#9d0006"),
		Blue:   lipgloss.Color("#076678"),
		Purple: lipgloss.Color("#8f3f71"),
		Dim:    lipgloss.Color("#7c6f64"),
		Fg:     lipgloss.Color("#3c3836"),
		Header: lipgloss.Color("#af3a03"),
	}
)

// Active colors. Reassigned by ApplyTheme.
var (
	ColorGreen  lipgloss.Color
	ColorYellow lipgloss.Color
	ColorRed    lipgloss.Color
	ColorBlue   lipgloss.Color
	ColorPurple lipgloss.Color
	ColorDim    lipgloss.Color
	ColorFg     lipgloss.Color
	ColorHeader lipgloss.Color
)

// Predefined lipgloss styles. Reassigned by ApplyTheme.
var (
	StyleGreen  lipgloss.Style
	StyleYellow lipgloss.Style
	StyleRed    lipgloss.Style
	StyleBlue   lipgloss.Style
	StylePurple lipgloss.Style
	StyleDim    lipgloss.Style
	StyleFg     lipgloss.Style
	StyleHeader lipgloss.Style
	StyleBold   lipgloss.Style
)

var activeTheme domain.Theme

func init() {
	ApplyTheme(domain.ThemeLight)
}

// ApplyTheme switches every exported color and style to the theme's palette.
// It is the presentation-wide theme flag; call it from the UI goroutine.
func ApplyTheme(theme domain.Theme) {
	p := LightPalette
	if theme == domain.ThemeDark {
		p = DarkPalette
	}
	activeTheme = theme

	ColorGreen, ColorYellow, ColorRed = p.Green, p.Yellow, p.Red
	ColorBlue, ColorPurple, ColorDim = p.Blue, p.Purple, p.Dim
	ColorFg, ColorHeader = p.Fg, p.Header

	StyleGreen = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
}

// ActiveTheme returns the theme last passed to ApplyTheme.
func ActiveTheme() domain.Theme {
	return activeTheme
}

// QuarterStyle colors each quarter differently.
func QuarterStyle(q domain.Quarter) lipgloss.Style {
	switch q {
	case domain.Q1:
		return StyleBlue
	case domain.Q2:
		return StyleGreen
	case domain.Q3:
		return StyleYellow
	case domain.Q4:
		return StylePurple
	default:
		return StyleDim
	}
}

// QuarterBadge renders a quarter label such as "[Q3]".
func QuarterBadge(q domain.Quarter) string {
	return QuarterStyle(q).Bold(true).Render("[" + string(q) + "]")
}

// ActivityStyle maps an activity level to urgency coloring.
func ActivityStyle(level int) lipgloss.Style {
	switch {
	case level >= 5:
		return StyleRed
	case level >= 4:
		return StyleYellow
	case level >= 3:
		return StyleGreen
	default:
		return StyleBlue
	}
}

// Header renders a section header with the header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
