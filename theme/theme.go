// Package theme defines the Neural Black theme for toolkit CLI output:
// a table of semantic style names, the status icon set, and the
// progress bar styling. The tables are built once at load time and are
// never mutated.
package theme

import "github.com/charmbracelet/lipgloss"

// Styles maps semantic style names to style specs. A spec is a short
// string of attribute keywords and colour tokens, e.g. "bold #00FF88"
// or "black on #FF4C6A". The group headings are organisational only.
var Styles = map[string]string{
	// Status indicators
	"success": "bold " + string(MintGreen),
	"warning": "bold " + string(Gold),
	"error":   "bold " + string(NeonRed),
	"info":    "bold " + string(CoolCyan),

	// Contextual elements
	"context":     string(CoolCyan),
	"comment":     "dim " + string(MutedGray),
	"meta":        "italic " + string(MutedGray),
	"educational": string(Purple),

	// Diff output
	"diff.add":     "black on " + string(MintGreen),
	"diff.remove":  "black on " + string(RoseRed),
	"diff.context": string(SoftWhite),

	// UI elements
	"prompt":   "bold " + string(CoolCyan),
	"title":    "bold " + string(CoolCyan),
	"subtitle": string(MutedGray),
	"file":     string(CoolCyan),
	"path":     string(MintGreen),

	// Code syntax
	"code.keyword":  string(CoolCyan),
	"code.function": string(MintGreen),
	"code.string":   string(Gold),
	"code.number":   string(Purple),
	"code.comment":  string(MutedGray),
	"code.type":     string(CoolCyan),
	"code.operator": string(MintGreen),

	// Progress and status
	"progress.description": string(SoftWhite),
	"progress.percentage":  string(MintGreen),
	"progress.download":    string(CoolCyan),
	"progress.remaining":   string(MutedGray),

	// Tables
	"table.header": "bold " + string(CoolCyan),
	"table.border": string(BorderGray),
	"table.cell":   string(SoftWhite),

	// Special elements
	"link":      "underline " + string(MintGreen),
	"highlight": "reverse " + string(MintGreen),
	"emphasis":  string(Gold),
	"strong":    "bold " + string(MintGreen),
}

// StatusIcons maps status kinds to display glyphs. Several kinds share
// a glyph (warning and drift, info and learning).
var StatusIcons = map[string]string{
	"success":  "✅",
	"warning":  "⚠️",
	"error":    "❌",
	"info":     "💡",
	"context":  "🧩",
	"learning": "💡",
	"drift":    "⚠️",
	"ship":     "🚀",
	"thought":  "🧠",
	"lambda":   "λ", // Prompt symbol
}

// ProgressBarStyles maps progress bar elements to style specs, same
// syntax as Styles. Consumed by NewProgressBar and the progress UI.
var ProgressBarStyles = map[string]string{
	"bar.complete":     string(MintGreen),
	"bar.finished":     string(MintGreen),
	"bar.pulse":        string(CoolCyan),
	"progress.elapsed": string(MutedGray),
}

var compiled = compileTables()

func compileTables() map[string]lipgloss.Style {
	m := make(map[string]lipgloss.Style, len(Styles)+len(ProgressBarStyles))
	for name, spec := range Styles {
		m[name] = MustSpec(spec)
	}
	for name, spec := range ProgressBarStyles {
		m[name] = MustSpec(spec)
	}
	return m
}

// Style returns the compiled style for a semantic name. Unknown names
// resolve to a neutral unstyled style, so callers may pass arbitrary
// status kinds without guarding the lookup.
func Style(name string) lipgloss.Style {
	if s, ok := compiled[name]; ok {
		return s
	}
	return lipgloss.NewStyle()
}

// Spec returns the raw style spec for a semantic name. The ok result
// is false for unknown names; callers that want missing styles to be
// fatal should check it.
func Spec(name string) (string, bool) {
	s, ok := Styles[name]
	return s, ok
}

// Icon returns the glyph for a status kind, or the empty string when
// the kind has no icon. It never fails.
func Icon(status string) string {
	return StatusIcons[status]
}
