package theme

import "github.com/charmbracelet/bubbles/progress"

// NewProgressBar returns a progress bar in the Neural Black gradient:
// cool cyan pulse fading into electric mint. Percentage rendering is
// left to the caller so it can be styled with "progress.percentage".
func NewProgressBar(width int) progress.Model {
	return progress.New(
		progress.WithGradient(string(CoolCyan), string(MintGreen)),
		progress.WithWidth(width),
		progress.WithoutPercentage(),
	)
}
