package logging

import (
	"bytes"
	"strings"
	"testing"
)

func TestVerboseControlsDebugRecords(t *testing.T) {
	t.Parallel()
	var quiet, loud bytes.Buffer
	New(&quiet, false).Debug("hidden", "page_id", "p1")
	New(&loud, true).Debug("shown", "page_id", "p1")
	if quiet.Len() != 0 {
		t.Fatalf("expected no debug output without verbose, got %q", quiet.String())
	}
	if !strings.Contains(loud.String(), "shown") || !strings.Contains(loud.String(), "page_id=p1") {
		t.Fatalf("expected debug record with attrs, got %q", loud.String())
	}
}

func TestOrDiscard(t *testing.T) {
	t.Parallel()
	if OrDiscard(nil) == nil {
		t.Fatalf("expected discard logger for nil")
	}
	l := New(nil, false)
	if OrDiscard(l) != l {
		t.Fatalf("expected same logger back")
	}
}
