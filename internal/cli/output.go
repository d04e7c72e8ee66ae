package cli

import (
	"fmt"

	"github.com/toolkit-cli/neuralblack/theme"
)

// PrintVersion prints version information
func PrintVersion(version string) {
	fmt.Println(theme.Style("title").Render("Neural Black 🧠"))
	fmt.Printf("%s %s\n", theme.Style("subtitle").Render("Version:"), theme.Style("strong").Render(version))
	fmt.Println()
}
