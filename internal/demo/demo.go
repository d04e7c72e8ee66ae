// Package demo holds the theme demonstration sequences run by the
// neuralblack binary.
package demo

import "github.com/toolkit-cli/neuralblack/console"

// demoLines is the fixed demonstration sequence: status kinds, a diff
// sample, and a code sample.
var demoLines = []struct {
	text  string
	style string
}{
	{"\n🧠 Neural Black Theme Demo\n", "title"},

	{"✅ Phase 3 Complete", "success"},
	{"⚠️ Spec alignment drift detected", "warning"},
	{"❌ Test failed with 3 errors", "error"},
	{"💡 Context refresh recommended", "info"},

	{"\nDiff Example:", "subtitle"},
	{"- Old value removed", "diff.remove"},
	{"+ New value added", "diff.add"},

	{"\nCode Example:", "subtitle"},
	{"func processData(items []string) map[string]any {", "code.function"},
	{"\t// Process the items", "code.comment"},
	{"\treturn map[string]any{\"status\": \"success\"}", "code.keyword"},

	{"\n🚀 Theme loaded successfully\n", "success"},
}

// Run prints the theme demonstration through c. The sequence takes no
// input; the first write failure aborts it.
func Run(c *console.Console) error {
	for _, line := range demoLines {
		if err := c.Print(line.text, line.style); err != nil {
			return err
		}
	}
	return nil
}
