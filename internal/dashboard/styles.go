package dashboard

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	colorRed    = lipgloss.Color("#FF5555")
	colorYellow = lipgloss.Color("#F1FA8C")
	colorGreen  = lipgloss.Color("#50FA7B")
	colorCyan   = lipgloss.Color("#8BE9FD")
	colorOrange = lipgloss.Color("#FFB86C")
	colorWhite  = lipgloss.Color("#F8F8F2")
	colorGray   = lipgloss.Color("#6272A4")

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	dimStyle   = lipgloss.NewStyle().Foreground(colorGray)
	valueStyle = lipgloss.NewStyle().Foreground(colorWhite)
	boldStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorWhite)
	okStyle    = lipgloss.NewStyle().Foreground(colorGreen)
	warnStyle  = lipgloss.NewStyle().Foreground(colorYellow)
	critStyle  = lipgloss.NewStyle().Foreground(colorRed).Bold(true)
	infoStyle  = lipgloss.NewStyle().Foreground(colorCyan)
	appStyle   = lipgloss.NewStyle().Foreground(colorOrange)
)

func scoreStyle(score int) lipgloss.Style {
	switch {
	case score >= 8:
		return okStyle
	case score >= 5:
		return warnStyle
	default:
		return critStyle
	}
}

func statusStyle(status string) lipgloss.Style {
	switch strings.ToLower(status) {
	case "good", "excellent":
		return okStyle
	case "warning", "fair":
		return warnStyle
	default:
		return critStyle
	}
}

func severityStyle(severity string) lipgloss.Style {
	switch severity {
	case "critical":
		return critStyle
	case "warning":
		return warnStyle
	default:
		return infoStyle
	}
}

func pctStyle(pct float64) lipgloss.Style {
	switch {
	case pct >= 90:
		return critStyle
	case pct >= 75:
		return warnStyle
	default:
		return okStyle
	}
}

// bar renders a filled/empty percentage bar of the given width.
func bar(pct float64, width int) string {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	filled := int(pct / 100 * float64(width))
	if filled > width {
		filled = width
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

// styledPad pads a styled string to the given visual width using spaces.
// Unlike fmt.Sprintf("%-Xs"), this accounts for ANSI escape codes.
func styledPad(styled string, width int) string {
	visW := lipgloss.Width(styled)
	if visW >= width {
		return styled
	}
	return styled + strings.Repeat(" ", width-visW)
}

// boxTop renders the top border of a panel with an embedded title.
func boxTop(title string, innerW int) string {
	head := "╭─ "
	tail := innerW - lipgloss.Width(title) - 1
	if tail < 0 {
		tail = 0
	}
	return dimStyle.Render(head) + titleStyle.Render(title) + " " + dimStyle.Render(strings.Repeat("─", tail)+"╮")
}

func boxBot(innerW int) string {
	return dimStyle.Render("╰" + strings.Repeat("─", innerW+2) + "╯")
}

// boxRow renders one content line inside a panel, padded to innerW.
func boxRow(content string, innerW int) string {
	visW := lipgloss.Width(content)
	pad := innerW - visW
	if pad < 0 {
		pad = 0
	}
	return dimStyle.Render("│") + " " + content + strings.Repeat(" ", pad) + " " + dimStyle.Render("│")
}
