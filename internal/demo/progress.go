package demo

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/toolkit-cli/neuralblack/theme"
)

// progressQuitMsg is sent once the bar has sat at 100% long enough to read
type progressQuitMsg struct{}

type tickMsg time.Time

// progressModel animates the themed progress bar to completion.
type progressModel struct {
	bar     progress.Model
	percent float64
	start   time.Time
}

func newProgressModel() progressModel {
	return progressModel{
		bar:   theme.NewProgressBar(40),
		start: time.Now(),
	}
}

// Init starts the tick loop
func (m progressModel) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(50*time.Millisecond, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update handles messages
func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.bar.Width = min(msg.Width-20, 50)
		return m, nil

	case tickMsg:
		m.percent += 0.02
		if m.percent >= 1.0 {
			m.percent = 1.0
			return m, tea.Tick(500*time.Millisecond, func(time.Time) tea.Msg {
				return progressQuitMsg{}
			})
		}
		return m, tick()

	case progressQuitMsg:
		return m, tea.Quit

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	return m, nil
}

// View renders the bar with the progress.* styles from the theme
func (m progressModel) View() string {
	var s strings.Builder

	s.WriteString(theme.Style("progress.description").Render("Demonstrating progress styling"))
	s.WriteString("\n")
	s.WriteString(m.bar.ViewAs(m.percent))
	s.WriteString(theme.Style("progress.percentage").Render(fmt.Sprintf("  %d%%", int(m.percent*100))))
	s.WriteString("\n")
	s.WriteString(theme.Style("progress.elapsed").Render("Elapsed: " + formatDuration(time.Since(m.start))))
	s.WriteString("\n")

	return s.String()
}

// RunProgress animates the progress showcase and blocks until it
// completes or is interrupted.
func RunProgress() error {
	_, err := tea.NewProgram(newProgressModel()).Run()
	return err
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}
