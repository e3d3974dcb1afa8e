package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/neon-pulse/internal/core"
)

// footerRows is the number of terminal rows below the playfield.
const footerRows = 2

// colorCodes maps core.Color to ANSI 256 codes.
var colorCodes = map[core.Color]string{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorNeonPink:      "199",
	core.ColorNeonGreen:     "118",
	core.ColorDim:           "238",
}

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = buildColorStyles()

func buildColorStyles() map[core.Color]lipgloss.Style {
	styles := map[core.Color]lipgloss.Style{
		core.ColorDefault: lipgloss.NewStyle(),
	}
	for c, code := range colorCodes {
		styles[c] = lipgloss.NewStyle().Foreground(lipgloss.Color(code))
	}
	return styles
}

func styleFor(c core.Color) lipgloss.Style {
	if s, ok := colorStyles[c]; ok {
		return s
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}

// HUDFooter renders pulse charge and running effects below the playfield.
type HUDFooter struct {
	pulseBar  progress.Model
	effectBar progress.Model
	label     lipgloss.Style
	warn      lipgloss.Style
}

// NewHUDFooter creates a footer sized for the given terminal width.
func NewHUDFooter(width int) HUDFooter {
	f := HUDFooter{
		pulseBar: progress.New(
			progress.WithSolidFill(colorCodes[core.ColorBrightCyan]),
			progress.WithoutPercentage(),
		),
		effectBar: progress.New(
			progress.WithSolidFill(colorCodes[core.ColorNeonPink]),
			progress.WithoutPercentage(),
		),
		label: lipgloss.NewStyle().Bold(true),
		warn:  lipgloss.NewStyle().Foreground(lipgloss.Color(colorCodes[core.ColorBrightRed])).Blink(true),
	}
	f.SetWidth(width)
	return f
}

// SetWidth resizes the bars to fit width.
func (f *HUDFooter) SetWidth(width int) {
	f.pulseBar.Width = max(width/3, 10)
	f.effectBar.Width = max(width/8, 6)
}

// View renders exactly footerRows lines.
func (f HUDFooter) View(info core.HUDInfo) string {
	pulseStyle := styleFor(info.PulseColor)
	if info.PulseReady {
		pulseStyle = pulseStyle.Bold(true)
	}
	pulseLine := fmt.Sprintf(" %s %s %s",
		f.label.Render("PULSE"),
		f.pulseBar.ViewAs(info.PulseProgress),
		pulseStyle.Render(info.PulseStatus),
	)

	parts := make([]string, 0, len(info.Effects))
	for _, eff := range info.Effects {
		name := styleFor(eff.Color).Render(fmt.Sprintf("%c %s", eff.Glyph, eff.Name))
		if eff.AboutToExpire {
			name = f.warn.Render(fmt.Sprintf("%c %s", eff.Glyph, eff.Name))
		}
		parts = append(parts, name+" "+f.effectBar.ViewAs(eff.Progress))
	}
	effectLine := " " + strings.Join(parts, "   ")
	if len(parts) == 0 {
		effectLine = styleFor(core.ColorGray).Render(" no active effects")
	}

	return pulseLine + "\n" + effectLine
}
