package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-antfarm/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:          lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorBrightBlue:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorBrightWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// nestStyle is applied to the nest floor so ants and dropped items stand out
// against it.
var nestStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("22")).Faint(true)

// nestFloor is the glyph the background paints inside the nest.
const nestFloor = '·'

// styleFor picks the style for a run of cells.
func styleFor(c core.Color, r rune) lipgloss.Style {
	if c == core.ColorGreen && r == nestFloor {
		return nestStyle
	}
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Adjacent cells sharing a style are written as one run.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		renderRow(&sb, s, y)
	}
	return sb.String()
}

func renderRow(sb *strings.Builder, s *core.Screen, y int) {
	var run strings.Builder
	x := 0
	for x < s.Width() {
		first := s.GetCell(x, y)
		floor := first.Rune == nestFloor
		run.Reset()

		for x < s.Width() {
			cell := s.GetCell(x, y)
			if cell.Color != first.Color || (cell.Rune == nestFloor) != floor {
				break
			}
			run.WriteRune(cell.Rune)
			x++
		}
		sb.WriteString(styleFor(first.Color, first.Rune).Render(run.String()))
	}
}

// RenderHUD renders the one-line colony status shown under the world.
func RenderHUD(title string, st core.SimState, speed float64, paused bool) string {
	status := fmt.Sprintf(" %s  t=%.1fs  x%.1f  entities %d  delivered %d  kills %d",
		title, st.Elapsed, speed, st.Entities, st.Delivered, st.Kills)
	if st.SpidersEscaped > 0 {
		status += fmt.Sprintf("  escaped %d", st.SpidersEscaped)
	}

	line := hudStyle.Render(status)
	if paused {
		line += "  " + pausedStyle.Render("PAUSED")
	}
	return line
}
