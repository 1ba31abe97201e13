package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var bannerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("229")).
	Background(lipgloss.Color("57"))

// Banner is the header line above the game screen. It implements
// engine.Display.
type Banner struct {
	text string
}

// NewBanner creates an empty banner.
func NewBanner() *Banner {
	return &Banner{}
}

// Show replaces the banner text.
func (b *Banner) Show(text string) {
	b.text = text
}

// Text returns the current banner text.
func (b *Banner) Text() string {
	return b.text
}

// View renders the banner centered over width cells.
func (b *Banner) View(width int) string {
	return bannerStyle.Width(width).Align(lipgloss.Center).Render(b.text)
}
