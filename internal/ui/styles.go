package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/palemoky/baralho/internal/card"
)

const maxHistory = 8

// Lipgloss Styles
var (
	docStyle       = lipgloss.NewStyle().Margin(1, 2)
	redStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#CD0000")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	blackStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("#FFFFFF")).Bold(true)
	grayStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	titleStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true).Render
	boxStyle       = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	promptStyle    = lipgloss.NewStyle().MarginTop(1)
	errorStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	tabStyle       = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("245"))
	activeTabStyle = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("228")).Bold(true).Underline(true)
)

// cardStyle 按花色颜色渲染
func cardStyle(c card.Card) lipgloss.Style {
	if c.Suit.IsRed() {
		return redStyle
	}
	return blackStyle
}

// renderCard renders a card compactly, e.g. "Q♠".
func renderCard(c card.Card) string {
	return cardStyle(c).Render(c.Rank.String() + c.Suit.Symbol())
}
