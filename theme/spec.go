package theme

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// ansiNames maps the standard terminal colour names to their ANSI
// palette indices, so specs like "black on #00FF88" can name the base
// colours without hardcoding hex values.
var ansiNames = map[string]string{
	"black":   "0",
	"red":     "1",
	"green":   "2",
	"yellow":  "3",
	"blue":    "4",
	"magenta": "5",
	"cyan":    "6",
	"white":   "7",

	"bright_black":   "8",
	"bright_red":     "9",
	"bright_green":   "10",
	"bright_yellow":  "11",
	"bright_blue":    "12",
	"bright_magenta": "13",
	"bright_cyan":    "14",
	"bright_white":   "15",
}

// ParseSpec compiles a style spec into a lipgloss style. Tokens are
// whitespace separated: "bold", "dim", "italic", "underline",
// "reverse" and "strike" set attributes, "on" marks the colour that
// follows as the background, and colour tokens are "#RRGGBB" hex or a
// named ANSI colour. An empty spec compiles to a neutral style.
func ParseSpec(spec string) (lipgloss.Style, error) {
	style := lipgloss.NewStyle()
	background := false
	for _, token := range strings.Fields(spec) {
		switch token {
		case "bold":
			style = style.Bold(true)
		case "dim":
			style = style.Faint(true)
		case "italic":
			style = style.Italic(true)
		case "underline":
			style = style.Underline(true)
		case "reverse":
			style = style.Reverse(true)
		case "strike":
			style = style.Strikethrough(true)
		case "on":
			background = true
		default:
			colour, err := parseColor(token)
			if err != nil {
				return lipgloss.Style{}, fmt.Errorf("style spec %q: %w", spec, err)
			}
			if background {
				style = style.Background(colour)
				background = false
			} else {
				style = style.Foreground(colour)
			}
		}
	}
	return style, nil
}

// MustSpec is ParseSpec for the static tables, which tests prove valid.
func MustSpec(spec string) lipgloss.Style {
	style, err := ParseSpec(spec)
	if err != nil {
		panic(err)
	}
	return style
}

func parseColor(token string) (lipgloss.Color, error) {
	if strings.HasPrefix(token, "#") {
		// Length check first: Sscanf inside colorful.Hex tolerates
		// truncated sequences like "#12345".
		if len(token) != 7 && len(token) != 4 {
			return "", fmt.Errorf("invalid hex colour %q", token)
		}
		if _, err := colorful.Hex(token); err != nil {
			return "", fmt.Errorf("invalid hex colour %q: %w", token, err)
		}
		return lipgloss.Color(token), nil
	}
	if index, ok := ansiNames[token]; ok {
		return lipgloss.Color(index), nil
	}
	return "", fmt.Errorf("unknown colour %q", token)
}
