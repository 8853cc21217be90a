package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/reclaim/models"
)

var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	okStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	selectedStyle   = lipgloss.NewStyle().Reverse(true)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)
	bannerStyle     = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("9")).Padding(0, 1)
)

var statusColors = map[models.AccountStatus]lipgloss.Color{
	models.StatusSafe:        "10",
	models.StatusUnderReview: "11",
	models.StatusCompromised: "9",
	models.StatusRecovering:  "12",
	models.StatusRecovered:   "14",
}

func statusBadge(s models.AccountStatus) string {
	return lipgloss.NewStyle().Bold(true).Foreground(statusColors[s]).Render(string(s))
}
