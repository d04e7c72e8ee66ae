package console

import (
	"bytes"
	"testing"
)

func testConsole(t *testing.T) (*Console, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return New(WithOutput(&buf), WithColor(false)), &buf
}

// TestPrintStatus_ComposesIconAndMessage verifies the "{icon} {message}"
// composition for a known status kind.
func TestPrintStatus_ComposesIconAndMessage(t *testing.T) {
	c, buf := testConsole(t)

	if err := c.PrintStatus("Phase 3 Complete", "success"); err != nil {
		t.Fatalf("PrintStatus returned error: %v", err)
	}
	if got := buf.String(); got != "✅ Phase 3 Complete\n" {
		t.Errorf("output = %q, want %q", got, "✅ Phase 3 Complete\n")
	}
}

// TestPrintStatus_UnknownKindKeepsLeadingSpace pins the degraded form:
// no icon, leading space preserved, no error, even though the kind is
// not a style key either.
func TestPrintStatus_UnknownKindKeepsLeadingSpace(t *testing.T) {
	c, buf := testConsole(t)

	if err := c.PrintStatus("Unknown thing", "nonexistent_status"); err != nil {
		t.Fatalf("PrintStatus returned error: %v", err)
	}
	if got := buf.String(); got != " Unknown thing\n" {
		t.Errorf("output = %q, want %q", got, " Unknown thing\n")
	}
}

// TestPrintSection_TitleOnly checks the blank line, the title line, and
// that an empty body writes nothing further.
func TestPrintSection_TitleOnly(t *testing.T) {
	c, buf := testConsole(t)

	if err := c.PrintSection("Title", ""); err != nil {
		t.Fatalf("PrintSection returned error: %v", err)
	}
	if got := buf.String(); got != "\nTitle\n" {
		t.Errorf("output = %q, want %q", got, "\nTitle\n")
	}
}

// TestPrintSection_WithBody checks the body follows on its own line.
func TestPrintSection_WithBody(t *testing.T) {
	c, buf := testConsole(t)

	if err := c.PrintSection("Title", "Body text"); err != nil {
		t.Fatalf("PrintSection returned error: %v", err)
	}
	if got := buf.String(); got != "\nTitle\nBody text\n" {
		t.Errorf("output = %q, want %q", got, "\nTitle\nBody text\n")
	}
}
