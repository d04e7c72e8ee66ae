package demo

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/toolkit-cli/neuralblack/console"
)

// TestRun_WritesFullSequence replays the demonstration into a plain
// buffer and checks the sequence is intact from banner to sign-off.
func TestRun_WritesFullSequence(t *testing.T) {
	var buf bytes.Buffer
	c := console.New(console.WithOutput(&buf), console.WithColor(false))

	if err := Run(c); err != nil {
		t.Fatalf("Run returned error: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "\n🧠 Neural Black Theme Demo\n") {
		t.Errorf("demo does not open with the banner: %q", firstLines(out, 2))
	}
	if !strings.HasSuffix(out, "\n🚀 Theme loaded successfully\n\n") {
		t.Errorf("demo does not close with the sign-off: %q", out[max(0, len(out)-40):])
	}

	for _, want := range []string{
		"✅ Phase 3 Complete\n",
		"⚠️ Spec alignment drift detected\n",
		"❌ Test failed with 3 errors\n",
		"💡 Context refresh recommended\n",
		"\nDiff Example:\n",
		"- Old value removed\n",
		"+ New value added\n",
		"\nCode Example:\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("demo output missing %q", want)
		}
	}
}

// TestRun_StopsOnWriteFailure checks a broken stream aborts the
// sequence with the stream's error.
func TestRun_StopsOnWriteFailure(t *testing.T) {
	c := console.New(console.WithOutput(failingWriter{}), console.WithColor(false))
	if err := Run(c); err == nil {
		t.Error("Run returned nil error on a failing stream")
	}
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("broken stream")
}

// TestFormatDuration covers the ms/seconds switchover used by the
// progress showcase.
func TestFormatDuration(t *testing.T) {
	testCases := []struct {
		d    time.Duration
		want string
	}{
		{d: 0, want: "0ms"},
		{d: 500 * time.Millisecond, want: "500ms"},
		{d: time.Second, want: "1.0s"},
		{d: 2500 * time.Millisecond, want: "2.5s"},
	}

	for _, tc := range testCases {
		if got := formatDuration(tc.d); got != tc.want {
			t.Errorf("formatDuration(%v) = %q, want %q", tc.d, got, tc.want)
		}
	}
}

func firstLines(s string, n int) string {
	lines := strings.SplitN(s, "\n", n+1)
	if len(lines) > n {
		lines = lines[:n]
	}
	return strings.Join(lines, "\n")
}
