// Package styles provides shared lipgloss styles for CLI output and prompts.
package styles

import (
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// Tokyo Night color palette.
var (
	ColorGreen  = lipgloss.Color("#9ece6a")
	ColorYellow = lipgloss.Color("#e0af68")
	ColorBlue   = lipgloss.Color("#7aa2f7")
	ColorGray   = lipgloss.Color("#565f89")
	ColorWhite  = lipgloss.Color("#c0caf5")
)

// Banner ASCII art shown above the interactive menu.
const Banner = `
 ╔═╗╦  ╦╔═╗╔═╗╔╦╗╔═╗╔═╗╦ ╦
 ║  ║  ║╠═╝╚═╗ ║ ╠═╣╚═╗╠═╣
 ╚═╝╩═╝╩╩  ╚═╝ ╩ ╩ ╩╚═╝╩ ╩`

// BannerStyle styles the ASCII art banner.
var BannerStyle = lipgloss.NewStyle().
	Foreground(ColorBlue).
	Bold(true)

// TableBorderStyle styles table borders.
var TableBorderStyle = lipgloss.NewStyle().
	Foreground(ColorGray)

// TableHeaderStyle styles table header cells.
var TableHeaderStyle = lipgloss.NewStyle().
	Foreground(ColorBlue).
	Bold(true).
	Padding(0, 1)

// TableCellStyle styles regular table cells.
var TableCellStyle = lipgloss.NewStyle().
	Foreground(ColorWhite).
	Padding(0, 1)

// TableHistoryStyle styles the history column so group boundaries stand out.
var TableHistoryStyle = TableCellStyle.
	Foreground(ColorGreen)

// FormTheme returns the huh theme used by every prompt.
func FormTheme() *huh.Theme {
	t := huh.ThemeCharm()
	t.Focused.Title = t.Focused.Title.Foreground(ColorBlue)
	t.Focused.SelectSelector = t.Focused.SelectSelector.Foreground(ColorGreen)
	t.Focused.SelectedOption = t.Focused.SelectedOption.Foreground(ColorGreen)
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.Foreground(ColorYellow)
	return t
}
