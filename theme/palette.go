package theme

import "github.com/charmbracelet/lipgloss"

// Neural Black colour palette 🧠
// Shared theme colours for consistent branding across the toolkit CLI,
// high-contrast against a deep matte black background.
var (
	// Core signal colours
	MintGreen = lipgloss.Color("#00FF88") // Electric mint - success, alignment, intelligence
	CoolCyan  = lipgloss.Color("#00AEEF") // Cool cyan - system, context, thought
	Gold      = lipgloss.Color("#FFD166") // Gold - drift, caution
	NeonRed   = lipgloss.Color("#FF5555") // Neon red - failure or interruption

	// Text colours
	SoftWhite = lipgloss.Color("#E0E0E0") // Soft white body text
	MutedGray = lipgloss.Color("#7B7F8B") // Muted gray for secondary info
	Purple    = lipgloss.Color("#B26FFF") // Educational or persona commentary

	// Accent colours
	RoseRed    = lipgloss.Color("#FF4C6A") // Removal highlight in diff output
	BorderGray = lipgloss.Color("#3A3A3A") // Table borders and separators
	MatteBlack = lipgloss.Color("#0B0C10") // Deep matte black background
)
