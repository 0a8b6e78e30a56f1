package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Core palette
	Green       = lipgloss.Color("#00FF41")
	BrightGreen = lipgloss.Color("#39FF14")
	DarkGreen   = lipgloss.Color("#008F11")
	DimGreen    = lipgloss.Color("#003B00")
	Cyan        = lipgloss.Color("#00D4AA")
	MidGray     = lipgloss.Color("#3a3a4e")
	White       = lipgloss.Color("#e0e0e0")
	Amber       = lipgloss.Color("#FFD700")

	// User messages
	UserLabelStyle = lipgloss.NewStyle().
			Foreground(BrightGreen).
			Bold(true)

	UserMsgStyle = lipgloss.NewStyle().
			Foreground(Green)

	// Bot messages
	BotLabelStyle = lipgloss.NewStyle().
			Foreground(Cyan).
			Bold(true)

	BotMsgStyle = lipgloss.NewStyle().
			Foreground(White)

	// System notices
	SystemMsgStyle = lipgloss.NewStyle().
			Foreground(MidGray).
			Italic(true)

	// Knowledge file changed on disk
	WarningStyle = lipgloss.NewStyle().
			Foreground(Amber)

	// Failed saves
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF4136")).
			Bold(true)

	// Input
	InputBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DarkGreen).
			Padding(0, 1)

	// Banner
	BannerStyle = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	// Help text
	HelpStyle = lipgloss.NewStyle().
			Foreground(DimGreen)
)

const Banner = `
   ██████╗██╗  ██╗ █████╗ ████████╗██████╗  ██████╗ ████████╗
  ██╔════╝██║  ██║██╔══██╗╚══██╔══╝██╔══██╗██╔═══██╗╚══██╔══╝
  ██║     ███████║███████║   ██║   ██████╔╝██║   ██║   ██║
  ██║     ██╔══██║██╔══██║   ██║   ██╔══██╗██║   ██║   ██║
  ╚██████╗██║  ██║██║  ██║   ██║   ██████╔╝╚██████╔╝   ██║
   ╚═════╝╚═╝  ╚═╝╚═╝  ╚═╝   ╚═╝   ╚═════╝  ╚═════╝    ╚═╝
`
