package console

import (
	"fmt"
	"os"

	"github.com/toolkit-cli/neuralblack/theme"
)

// PrintStatus writes message prefixed with the status icon, styled by
// the status kind. The icon and style lookups are independent and each
// degrades on a miss: an unknown kind renders with no icon and no
// styling rather than failing.
func (c *Console) PrintStatus(message, status string) error {
	return c.Print(fmt.Sprintf("%s %s", theme.Icon(status), message), status)
}

// PrintSection writes a section title preceded by a blank line, then
// the body styled as context when one is given.
func (c *Console) PrintSection(title, body string) error {
	if err := c.Print("\n"+title, "title"); err != nil {
		return err
	}
	if body == "" {
		return nil
	}
	return c.Print(body, "context")
}

// PrintStatus writes a status line through a fresh stdout console.
func PrintStatus(message, status string) error {
	return New().PrintStatus(message, status)
}

// PrintSection writes a section header through a fresh stdout console.
func PrintSection(title, body string) error {
	return New().PrintSection(title, body)
}

// Convenience wrappers for the common status kinds. Error goes to
// stderr so it survives piped stdout.

func Success(message string) error { return PrintStatus(message, "success") }
func Warning(message string) error { return PrintStatus(message, "warning") }
func Info(message string) error    { return PrintStatus(message, "info") }

func Error(message string) error {
	return New(WithOutput(os.Stderr)).PrintStatus(message, "error")
}
